package convert

import (
	"fmt"
	"os"
	"strings"
)

// DefaultBlocklist holds path fragments of pages copied without any rewriting.
var DefaultBlocklist = []string{
	"_Sidebar.md",
}

const (
	metadataMarker = "<!-- Metadata:"
	commentEnd     = "-->"
)

// MarkdownConverter rewrites a documentation page into a wiki page.
type MarkdownConverter struct {
	Blocklist []string
}

// NewMarkdownConverter returns a converter using DefaultBlocklist.
func NewMarkdownConverter() *MarkdownConverter {
	return &MarkdownConverter{Blocklist: DefaultBlocklist}
}

// Blocked reports whether path contains a blocklisted fragment.
func (c *MarkdownConverter) Blocked(path string) bool {
	for _, b := range c.Blocklist {
		if strings.Contains(path, b) {
			return true
		}
	}
	return false
}

// Convert writes the wiki form of src to dst. Blocklisted pages are written
// byte for byte. The parent directory of dst must already exist.
func (c *MarkdownConverter) Convert(src, dst string) (Action, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read page: %w", err)
	}

	action := ActionConvert
	out := data
	if c.Blocked(src) {
		action = ActionCopy
	} else {
		out = Transform(data)
	}

	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return "", fmt.Errorf("write page: %w", err)
	}
	return action, nil
}

// Transform rewrites every line of a page and drops the first line.
func Transform(data []byte) []byte {
	lines := SplitLines(data)
	if len(lines) <= 1 {
		return []byte{}
	}

	var sb strings.Builder
	sb.Grow(len(data))
	for _, line := range lines[1:] {
		sb.WriteString(RewriteLine(line))
	}
	return []byte(sb.String())
}

// RewriteLine applies the first matching rule to a single line:
//
//	foo.md)          -> foo)
//	foo.md#bar       -> foo#bar   (lines without "http" only)
//	# H <!-- Metadata: ... -->   -> # H
func RewriteLine(line string) string {
	switch {
	case line == "":
		return line
	case strings.Contains(line, ".md)"):
		return strings.ReplaceAll(line, ".md)", ")")
	case strings.Contains(line, ".md#") && !strings.Contains(line, "http"):
		return strings.ReplaceAll(line, ".md#", "#")
	case strings.HasPrefix(line, "#") && strings.Contains(line, metadataMarker) && strings.Contains(line, commentEnd):
		cut := strings.Index(line, " "+metadataMarker)
		if cut < 0 {
			cut = strings.Index(line, metadataMarker)
		}
		return line[:cut] + "\n"
	}
	return line
}
