package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRewriteLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"page link", "See [x](guide.md)", "See [x](guide)"},
		{"every page link", "[a](a.md) and [b](b.md)\n", "[a](a) and [b](b)\n"},
		{"anchor link", "[y](page.md#section)", "[y](page#section)"},
		{"anchor link with url left alone", "[z](http://example.com/page.md#section)", "[z](http://example.com/page.md#section)"},
		{"page link wins over anchor link", "[a](a.md) and [b](b.md#x)", "[a](a) and [b](b.md#x)"},
		{"page link rewritten even with url", "[z](http://example.com/page.md)", "[z](http://example.com/page)"},
		{"heading metadata", "# Title <!-- Metadata: foo=bar -->", "# Title\n"},
		{"heading metadata with newline", "## Sub <!-- Metadata: a=b; c=d -->\r\n", "## Sub\n"},
		{"heading metadata without space", "#<!-- Metadata: x -->\n", "#\n"},
		{"link wins over metadata", "# T <!-- Metadata: x --> [a](a.md)\n", "# T <!-- Metadata: x --> [a](a)\n"},
		{"metadata outside heading", "text <!-- Metadata: x -->\n", "text <!-- Metadata: x -->\n"},
		{"unterminated metadata", "# T <!-- Metadata: x\n", "# T <!-- Metadata: x\n"},
		{"plain line", "Nothing to do here.\n", "Nothing to do here.\n"},
		{"empty line", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RewriteLine(tt.in); got != tt.want {
				t.Errorf("RewriteLine(%q): expected %q, got %q", tt.in, tt.want, got)
			}
		})
	}
}

func TestTransform_DropsFirstLine(t *testing.T) {
	input := "# Front <!-- Metadata: x -->\n# Guide\n\nRead [more](more.md).\nJump to [it](ref.md#top).\n"
	want := "# Guide\n\nRead [more](more).\nJump to [it](ref#top).\n"

	got := string(Transform([]byte(input)))
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	in := strings.Count(input, "\n")
	out := strings.Count(got, "\n")
	if out != in-1 {
		t.Errorf("expected %d lines, got %d", in-1, out)
	}
}

func TestTransform_PreservesLineEndings(t *testing.T) {
	input := "front\r\n[x](a.md)\r\nold mac\rlast"
	want := "[x](a)\r\nold mac\rlast"
	if got := string(Transform([]byte(input))); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTransform_ShortInput(t *testing.T) {
	for _, in := range []string{"", "only line\n", "only line"} {
		if got := Transform([]byte(in)); len(got) != 0 {
			t.Errorf("Transform(%q): expected empty output, got %q", in, got)
		}
	}
}

func TestMarkdownConverter_Convert(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Guide.md")
	dst := filepath.Join(dir, "out.md")
	if err := os.WriteFile(src, []byte("title line\nSee [x](x.md)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	action, err := NewMarkdownConverter().Convert(src, dst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action != ActionConvert {
		t.Errorf("expected action %q, got %q", ActionConvert, action)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "See [x](x)\n" {
		t.Errorf("expected %q, got %q", "See [x](x)\n", got)
	}
}

func TestMarkdownConverter_BlocklistedCopiedVerbatim(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "_Sidebar.md")
	dst := filepath.Join(dir, "out.md")
	content := "* [Home](Home.md)\n* [Guide](Guide.md#top)\n# H <!-- Metadata: x -->\n"
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	action, err := NewMarkdownConverter().Convert(src, dst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action != ActionCopy {
		t.Errorf("expected action %q, got %q", ActionCopy, action)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("expected verbatim copy %q, got %q", content, got)
	}
}

func TestMarkdownConverter_OverwritesDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.md")
	dst := filepath.Join(dir, "b.md")
	if err := os.WriteFile(src, []byte("x\ny\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dst, []byte("a much longer previous content\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMarkdownConverter().Convert(src, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "y\n" {
		t.Errorf("expected %q, got %q", "y\n", got)
	}
}

func TestMarkdownConverter_MissingDestinationDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.md")
	if err := os.WriteFile(src, []byte("x\ny\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewMarkdownConverter().Convert(src, filepath.Join(dir, "missing", "a.md"))
	if err == nil {
		t.Fatal("expected error for missing destination directory")
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"Home.md", false},
		{"shot.png", false},
		{"PHOTO.JPG", false},
		{"notes.txt", true},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("ForFile(%q): expected error=%v, got %v", tt.filename, tt.wantErr, err)
		}
		if IsSupportedExtension(tt.filename) == tt.wantErr {
			t.Errorf("IsSupportedExtension(%q): expected %v", tt.filename, !tt.wantErr)
		}
	}
}
