package convert

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FooterMarker identifies wiki pages that get the footer patch.
const FooterMarker = "_Footer.md"

// The generic link rewrite strips ".md" from the credits link, which has to
// keep pointing at the file in the source repository.
var (
	creditsLink        = []byte("master/CREDITS")
	creditsLinkPatched = []byte("master/CREDITS.md")
)

// NeedsPatch reports whether the wiki page at path is a patch target.
func NeedsPatch(path string) bool {
	return strings.Contains(filepath.Base(path), FooterMarker)
}

// PatchFooter restores the credits link in an already written wiki page.
func PatchFooter(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read footer: %w", err)
	}
	data = bytes.ReplaceAll(data, creditsLink, creditsLinkPatched)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}
	return nil
}
