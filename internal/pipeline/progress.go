package pipeline

import (
	"fmt"
	"io"
)

// printer writes the human-readable progress lines of a run.
type printer struct {
	w io.Writer
}

func (p printer) section(verb string, n int) {
	fmt.Fprintf(p.w, "%s %d files:\n", verb, n)
}

func (p printer) item(path string) {
	fmt.Fprintf(p.w, "  %s\n", path)
}

func (p printer) pair(src, dst string) {
	fmt.Fprintf(p.w, "  %s -> %s\n", src, dst)
}

func (p printer) result(v any) {
	fmt.Fprintf(p.w, "    %v\n", v)
}
