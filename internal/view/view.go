package view

import (
	"bytes"
	"crypto/sha1"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"sync"
	"time"

	"github.com/diewo77/smash-board/internal/i18n"
	"github.com/diewo77/smash-board/internal/middleware"
)

//go:embed templates static
var files embed.FS

var (
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}

	assetHashes sync.Map // rel path -> short sha1

	partials = []string{
		"templates/partials/header.html",
		"templates/partials/card.html",
		"templates/partials/modal.html",
	}
)

// Funcs returns the standard func map including i18n and simple helpers.
// A nil request yields the defaults, which is what templates are parsed with.
func Funcs(r *http.Request) template.FuncMap {
	lang, theme := i18n.DefaultLang, "system"
	if r != nil {
		lang = middleware.LangFrom(r)
		theme = middleware.ThemeFrom(r)
	}
	return template.FuncMap{
		"t":     func(code string) string { return i18n.T(lang, code) },
		"lang":  func() string { return lang },
		"theme": func() string { return theme },
		"asset": func(rel string) string { return resolveAsset(rel) },
	}
}

// resolveAsset returns /static/<rel>?v=<hash> for cache busting.
func resolveAsset(rel string) string {
	if h, ok := assetHashes.Load(rel); ok {
		return "/static/" + rel + "?v=" + h.(string)
	}
	b, err := files.ReadFile(path.Join("static", rel))
	if err != nil {
		return "/static/" + rel
	}
	sum := sha1.Sum(b)
	h := fmt.Sprintf("%x", sum[:8])
	assetHashes.Store(rel, h)
	return "/static/" + rel + "?v=" + h
}

// StaticHandler serves the embedded static directory. Mount it under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// ResetForTests clears the template cache.
func ResetForTests() {
	tplCache.Lock()
	tplCache.m = map[string]*template.Template{}
	tplCache.Unlock()
}

func parse(name string) (*template.Template, error) {
	tplCache.RLock()
	t, ok := tplCache.m[name]
	tplCache.RUnlock()
	if ok {
		return t, nil
	}
	patterns := append([]string{"templates/layout.html", path.Join("templates", name)}, partials...)
	t, err := template.New("layout.html").Funcs(Funcs(nil)).ParseFS(files, patterns...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	tplCache.Lock()
	tplCache.m[name] = t
	tplCache.Unlock()
	return t, nil
}

// Render executes the named page inside layout.html with request-bound funcs.
// name should be the filename (e.g., "index.html").
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	base, err := parse(name)
	if err != nil {
		return err
	}
	// clone so per-request funcs (lang, theme) never leak into the cache
	t, err := base.Clone()
	if err != nil {
		return err
	}
	t.Funcs(Funcs(r))

	if data == nil {
		data = map[string]any{}
	}
	if _, exists := data["Year"]; !exists {
		data["Year"] = time.Now().Year()
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = buf.WriteTo(w)
	return err
}
