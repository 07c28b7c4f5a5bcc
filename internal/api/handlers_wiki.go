package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/doc2wiki/internal/convert"
)

const (
	homePage    = "Home"
	sidebarPage = "_Sidebar"
	footerPage  = "_Footer"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
{{if .Sidebar}}<nav>{{.Sidebar}}</nav>
{{end}}<main>{{.Body}}</main>
{{if .Footer}}<footer>{{.Footer}}</footer>
{{end}}</body>
</html>
`))

type pageView struct {
	Title   string
	Body    template.HTML
	Sidebar template.HTML
	Footer  template.HTML
}

// handleHome renders Home.md, or lists the pages when the wiki has none.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(s.pagePath(homePage)); err == nil {
		s.renderPage(w, homePage)
		return
	}
	s.handleListPages(w, r)
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := ListPages(s.wiki)
	if err != nil {
		jsonError(w, "failed to list pages: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"pages": pages})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := sanitizePageName(chi.URLParam(r, "page"))
	if name == "" {
		jsonError(w, "invalid page name", http.StatusBadRequest)
		return
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext != ".md" && convert.IsSupportedExtension(name) {
		path := filepath.Join(s.wiki, name)
		if _, err := os.Stat(path); err != nil {
			jsonError(w, "file not found", http.StatusNotFound)
			return
		}
		http.ServeFile(w, r, path)
		return
	}

	s.renderPage(w, strings.TrimSuffix(name, ".md"))
}

func (s *Server) renderPage(w http.ResponseWriter, name string) {
	body, err := s.render(name)
	if errors.Is(err, fs.ErrNotExist) {
		jsonError(w, "page not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.log.Error("render failed", "page", name, "error", err)
		jsonError(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	view := pageView{Title: name, Body: body}
	// Sidebar and footer are optional.
	if sidebar, err := s.render(sidebarPage); err == nil {
		view.Sidebar = sidebar
	}
	if footer, err := s.render(footerPage); err == nil {
		view.Footer = footer
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		s.log.Error("template failed", "page", name, "error", err)
		jsonError(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// render converts a wiki page to HTML.
func (s *Server) render(name string) (template.HTML, error) {
	src, err := os.ReadFile(s.pagePath(name))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := s.md.Convert(src, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (s *Server) pagePath(name string) string {
	return filepath.Join(s.wiki, name+".md")
}

// ListPages returns the names of the wiki's regular pages, without the
// .md extension and without the "_"-prefixed special pages.
func ListPages(wiki string) ([]string, error) {
	entries, err := os.ReadDir(wiki)
	if err != nil {
		return nil, err
	}
	pages := []string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".md") || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
			continue
		}
		pages = append(pages, strings.TrimSuffix(name, ".md"))
	}
	sort.Strings(pages)
	return pages, nil
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizePageName(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "." || name == "/" || strings.Contains(name, "..") {
		return ""
	}
	return name
}
