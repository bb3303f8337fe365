package http

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
)

// ViewEngine renders html/template files from a filesystem.
type ViewEngine struct {
	fsys  fs.FS
	ext   string
	funcs template.FuncMap

	mu    sync.RWMutex
	cache map[string]*template.Template
}

// NewViewEngine creates a ViewEngine over fsys (e.g. an embed.FS or
// os.DirFS("./views")). ext is the file extension (e.g. ".html").
func NewViewEngine(fsys fs.FS, ext string, funcs template.FuncMap) *ViewEngine {
	return &ViewEngine{
		fsys:  fsys,
		ext:   ext,
		funcs: funcs,
		cache: make(map[string]*template.Template),
	}
}

// View renders a template with data and the given status.
//
//	engine.View(w, http.StatusOK, "form", data)
func (ve *ViewEngine) View(w http.ResponseWriter, status int, name string, data any) {
	tmpl, err := ve.lookup(name)
	if err != nil {
		http.Error(w, "Template not found: "+name, http.StatusInternalServerError)
		return
	}
	// Buffered: a failed render writes only the error.
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		http.Error(w, "Template render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (ve *ViewEngine) lookup(name string) (*template.Template, error) {
	ve.mu.RLock()
	tmpl, ok := ve.cache[name]
	ve.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	file := name + ve.ext
	tmpl, err := template.New(file).Funcs(ve.funcs).ParseFS(ve.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", name, err)
	}

	ve.mu.Lock()
	ve.cache[name] = tmpl
	ve.mu.Unlock()
	return tmpl, nil
}
