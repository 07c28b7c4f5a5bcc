package doctree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AnchorDir is the subdirectory of a documentation repository that holds
// every convertible page and image.
const AnchorDir = "memory"

// ImageExtensions lists the image types picked up next to the pages, in
// collection order.
var ImageExtensions = []string{".png", ".jpg"}

// ErrNoAnchor is returned when the source root has no anchor directory.
var ErrNoAnchor = errors.New("documentation root has no memory directory")

// DocTree is the set of files found in one documentation repository.
type DocTree struct {
	Root   string   // Source repository root
	Anchor string   // Resolved <Root>/memory, the rewrite pivot
	Pages  []string // Markdown files directly under Anchor
	Images []string // Image files directly under Anchor
}

// Collect lists the pages and images under root's anchor directory.
// The listing is not recursive.
func Collect(root string) (*DocTree, error) {
	anchor := filepath.Join(root, AnchorDir)
	info, err := os.Stat(anchor)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoAnchor, anchor)
	}

	pages, err := glob(anchor, ".md")
	if err != nil {
		return nil, err
	}

	var images []string
	for _, ext := range ImageExtensions {
		matches, err := glob(anchor, ext)
		if err != nil {
			return nil, err
		}
		images = append(images, matches...)
	}

	return &DocTree{
		Root:   root,
		Anchor: anchor,
		Pages:  pages,
		Images: images,
	}, nil
}

// Mirror maps a path under the anchor to the same relative path under destRoot.
func (t *DocTree) Mirror(path, destRoot string) (string, error) {
	rel, err := filepath.Rel(t.Anchor, path)
	if err != nil {
		return "", fmt.Errorf("mirror %s: %w", path, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("mirror %s: outside %s", path, t.Anchor)
	}
	return filepath.Join(destRoot, rel), nil
}

// glob returns the regular files in anchor ending in ext, in lexical order.
// Hidden files are skipped, like a shell "*" pattern would.
func glob(anchor, ext string) ([]string, error) {
	entries, err := os.ReadDir(anchor)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", anchor, err)
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ext) {
			continue
		}
		out = append(out, filepath.Join(anchor, name))
	}
	return out, nil
}
