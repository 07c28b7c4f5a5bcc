package convert

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNeedsPatch(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/wiki/_Footer.md", true},
		{"/wiki/Old_Footer.md", true},
		{"/wiki/Home.md", false},
		{"/_Footer.md/Home.md", false},
	}
	for _, tt := range tests {
		if got := NeedsPatch(tt.path); got != tt.want {
			t.Errorf("NeedsPatch(%q): expected %v, got %v", tt.path, tt.want, got)
		}
	}
}

func TestPatchFooter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "_Footer.md")
	in := "[Credits](https://github.com/dvorka/mindforger/blob/master/CREDITS) | [License](https://github.com/dvorka/mindforger/blob/master/LICENSE)\n"
	want := "[Credits](https://github.com/dvorka/mindforger/blob/master/CREDITS.md) | [License](https://github.com/dvorka/mindforger/blob/master/LICENSE)\n"
	if err := os.WriteFile(path, []byte(in), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := PatchFooter(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPatchFooter_MissingFile(t *testing.T) {
	if err := PatchFooter(filepath.Join(t.TempDir(), "_Footer.md")); err == nil {
		t.Error("expected error for missing footer")
	}
}
