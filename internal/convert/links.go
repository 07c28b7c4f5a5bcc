package convert

import (
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// LinkTargets returns the destinations of all links and images in a page,
// in document order.
func LinkTargets(src []byte) []string {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var targets []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			targets = append(targets, string(node.Destination))
		case *ast.Image:
			targets = append(targets, string(node.Destination))
		}
		return ast.WalkContinue, nil
	})
	return targets
}

// IsInternal reports whether a link target points inside the wiki:
// no scheme and not a bare in-page anchor.
func IsInternal(target string) bool {
	if target == "" || strings.HasPrefix(target, "#") {
		return false
	}
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

// CountInternal counts the internal link targets of a page.
func CountInternal(src []byte) int {
	n := 0
	for _, t := range LinkTargets(src) {
		if IsInternal(t) {
			n++
		}
	}
	return n
}
