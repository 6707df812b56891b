package api

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ZaEvab55555/Advanced-Calculator/pkg/calc"
	"github.com/ZaEvab55555/Advanced-Calculator/web"
)

// Web UI template data types

// WebIndexData is the data for the index page template.
type WebIndexData struct {
	Version string
	Panel   WebPanelData
	History WebHistoryData
	ModeBar WebModeBarData
}

// WebPanelData is the data for the entry/answer panel partial.
type WebPanelData struct {
	Entry  string
	Answer string
	Error  bool
}

// WebHistoryData is the data for the history panel partial. OOB renders the
// fragment as an htmx out-of-band swap alongside another fragment.
type WebHistoryData struct {
	Entries []calc.HistoryEntry
	OOB     bool
}

// WebModeBarData is the data for the mode bar partial.
type WebModeBarData struct {
	FractionLabel string
	PiLabel       string
	AngleLabel    string
}

func (s *Server) handleWebRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/web/", http.StatusFound)
}

func (s *Server) handleWebAssets(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/web")
	if path == "" || path == "/" {
		s.renderIndex(w, r)
		return
	}

	// Serve static files
	if strings.HasPrefix(path, "/static/") {
		s.serveStaticFile(w, r, path)
		return
	}

	if path == "/docs" {
		s.renderDocs(w, r)
		return
	}

	http.NotFound(w, r)
}

func (s *Server) serveStaticFile(w http.ResponseWriter, r *http.Request, path string) {
	// Remove leading slash for fs.Sub
	fsPath := strings.TrimPrefix(path, "/")

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	// Determine content type
	ext := filepath.Ext(path)
	switch ext {
	case ".css":
		w.Header().Set("Content-Type", "text/css")
	case ".js":
		w.Header().Set("Content-Type", "application/javascript")
	case ".svg":
		w.Header().Set("Content-Type", "image/svg+xml")
	}

	fileName := strings.TrimPrefix(fsPath, "static/")
	data, err := fs.ReadFile(staticFS, fileName)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Write(data)
}

func (s *Server) renderIndex(w http.ResponseWriter, r *http.Request) {
	tmpl, err := s.parseTemplates("index.html", "panel.html", "entry.html", "history.html", "modebar.html")
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	data := WebIndexData{
		Version: version,
		Panel:   WebPanelData{},
		History: WebHistoryData{Entries: s.session.History()},
		ModeBar: s.modeBarData(),
	}

	w.Header().Set("Content-Type", "text/html")
	if err := tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		http.Error(w, "Template execution error: "+err.Error(), http.StatusInternalServerError)
	}
}

// handleWebEvaluate evaluates the entry expression and returns the panel
// partial, with the updated history attached as an out-of-band swap.
func (s *Server) handleWebEvaluate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderPanel(w, WebPanelData{Answer: "Invalid form data", Error: true})
		return
	}

	expression := r.FormValue("expression")
	if strings.TrimSpace(expression) == "" {
		s.renderPanel(w, WebPanelData{Answer: "Enter an expression", Error: true})
		return
	}

	result, err := s.session.Evaluate(expression)
	if err != nil {
		s.renderPanel(w, WebPanelData{Entry: expression, Answer: err.Error(), Error: true})
		return
	}

	tmpl, err := s.parseTemplates("panel.html", "entry.html", "history.html")
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	// the entry takes the result so the user can keep calculating with it
	panel := WebPanelData{Entry: result.Display, Answer: result.Display}
	if err := tmpl.ExecuteTemplate(w, "panel.html", panel); err != nil {
		http.Error(w, "Template execution error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	history := WebHistoryData{Entries: s.session.History(), OOB: true}
	if err := tmpl.ExecuteTemplate(w, "history.html", history); err != nil {
		http.Error(w, "Template execution error: "+err.Error(), http.StatusInternalServerError)
	}
}

// handleWebAction rewrites the entry box through a display action. Errors
// surface in the answer box via an out-of-band swap; the entry is returned
// unchanged.
func (s *Server) handleWebAction(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")

	if err := r.ParseForm(); err != nil {
		s.renderEntry(w, "")
		return
	}
	value := r.FormValue("expression")

	display, err := s.dispatchAction(action, value)
	if err != nil {
		w.Header().Set("Content-Type", "text/html")
		s.writeEntry(w, value)
		fmt.Fprintf(w, `<div id="answer" class="answer answer-error" hx-swap-oob="true">%s</div>`,
			template.HTMLEscapeString(err.Error()))
		return
	}

	s.renderEntry(w, display)
}

func (s *Server) handleWebModeToggle(w http.ResponseWriter, r *http.Request) {
	switch mode := chi.URLParam(r, "mode"); mode {
	case "fraction":
		s.session.ToggleFractionMode()
	case "pi":
		s.session.TogglePiMode()
	case "angle":
		s.session.ToggleAngleMode()
	}

	s.renderModeBar(w)
}

func (s *Server) handleWebHistoryDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// A stale id means the entry is already gone; render the current list
	if _, err := s.session.DeleteHistory(id); err != nil && err != calc.ErrEntryNotFound {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.renderHistory(w, WebHistoryData{Entries: s.session.History()})
}

func (s *Server) handleWebHistoryClear(w http.ResponseWriter, r *http.Request) {
	s.session.ClearHistory()
	s.renderHistory(w, WebHistoryData{})
}

// Partial rendering helpers

func (s *Server) parseTemplates(files ...string) (*template.Template, error) {
	patterns := make([]string, 0, len(files))
	for _, f := range files {
		patterns = append(patterns, "templates/"+f)
	}
	return template.ParseFS(web.Templates, patterns...)
}

func (s *Server) renderPanel(w http.ResponseWriter, data WebPanelData) {
	tmpl, err := s.parseTemplates("panel.html", "entry.html")
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if err := tmpl.ExecuteTemplate(w, "panel.html", data); err != nil {
		http.Error(w, "Template execution error: "+err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) renderEntry(w http.ResponseWriter, value string) {
	w.Header().Set("Content-Type", "text/html")
	s.writeEntry(w, value)
}

func (s *Server) writeEntry(w http.ResponseWriter, value string) {
	tmpl, err := s.parseTemplates("entry.html")
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := tmpl.ExecuteTemplate(w, "entry.html", WebPanelData{Entry: value}); err != nil {
		http.Error(w, "Template execution error: "+err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) renderHistory(w http.ResponseWriter, data WebHistoryData) {
	tmpl, err := s.parseTemplates("history.html")
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if err := tmpl.ExecuteTemplate(w, "history.html", data); err != nil {
		http.Error(w, "Template execution error: "+err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) renderModeBar(w http.ResponseWriter) {
	tmpl, err := s.parseTemplates("modebar.html")
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if err := tmpl.ExecuteTemplate(w, "modebar.html", s.modeBarData()); err != nil {
		http.Error(w, "Template execution error: "+err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) modeBarData() WebModeBarData {
	m := s.session.Modes()
	return WebModeBarData{
		FractionLabel: m.FractionLabel(),
		PiLabel:       m.PiLabel(),
		AngleLabel:    m.AngleLabel(),
	}
}

func (s *Server) renderDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>API Docs - advcalc</title>
    <link rel="stylesheet" href="/web/static/styles.css">
</head>
<body>
    <header class="header">
        <h1><a href="/" style="color: inherit;">advcalc</a></h1>
        <nav>
            <a href="/">Calculator</a>
            <a href="/web/docs" class="active">API Docs</a>
        </nav>
    </header>
    <main class="container">
        <div class="card">
            <h2 class="card-title">API Documentation</h2>`))
	fmt.Fprintf(w, `
            <p>All endpoints are served from <code>%s</code>.</p>`, s.cfg.URL())
	w.Write([]byte(`
            <table style="width: 100%; border-collapse: collapse; margin-top: 1rem;">
                <thead>
                    <tr style="border-bottom: 1px solid var(--border-color);">
                        <th style="text-align: left; padding: 0.75rem;">Method</th>
                        <th style="text-align: left; padding: 0.75rem;">Endpoint</th>
                        <th style="text-align: left; padding: 0.75rem;">Description</th>
                    </tr>
                </thead>
                <tbody>
                    <tr style="border-bottom: 1px solid var(--border-color);">
                        <td style="padding: 0.75rem;"><code style="color: var(--success-color);">GET</code></td>
                        <td style="padding: 0.75rem;"><code>/health</code></td>
                        <td style="padding: 0.75rem;">Health check</td>
                    </tr>
                    <tr style="border-bottom: 1px solid var(--border-color);">
                        <td style="padding: 0.75rem;"><code style="color: var(--success-color);">GET</code></td>
                        <td style="padding: 0.75rem;"><code>/version</code></td>
                        <td style="padding: 0.75rem;">Service version</td>
                    </tr>
                    <tr style="border-bottom: 1px solid var(--border-color);">
                        <td style="padding: 0.75rem;"><code style="color: var(--warning-color);">POST</code></td>
                        <td style="padding: 0.75rem;"><code>/evaluate</code></td>
                        <td style="padding: 0.75rem;">Evaluate an expression (body: <code>{"expression": "2^10"}</code>)</td>
                    </tr>
                    <tr style="border-bottom: 1px solid var(--border-color);">
                        <td style="padding: 0.75rem;"><code style="color: var(--warning-color);">POST</code></td>
                        <td style="padding: 0.75rem;"><code>/actions/{action}</code></td>
                        <td style="padding: 0.75rem;">Rewrite a displayed value: scientific, square, reciprocal, factorize, totient, primecount, floor, ceil, deg-to-rad, rad-to-deg (body: <code>{"value": "24"}</code>)</td>
                    </tr>
                    <tr style="border-bottom: 1px solid var(--border-color);">
                        <td style="padding: 0.75rem;"><code style="color: var(--success-color);">GET</code></td>
                        <td style="padding: 0.75rem;"><code>/modes</code></td>
                        <td style="padding: 0.75rem;">Current display modes and labels</td>
                    </tr>
                    <tr style="border-bottom: 1px solid var(--border-color);">
                        <td style="padding: 0.75rem;"><code style="color: var(--warning-color);">POST</code></td>
                        <td style="padding: 0.75rem;"><code>/modes/{mode}</code></td>
                        <td style="padding: 0.75rem;">Toggle a mode: fraction, pi, angle</td>
                    </tr>
                    <tr style="border-bottom: 1px solid var(--border-color);">
                        <td style="padding: 0.75rem;"><code style="color: var(--success-color);">GET</code></td>
                        <td style="padding: 0.75rem;"><code>/history</code></td>
                        <td style="padding: 0.75rem;">List history entries in insertion order</td>
                    </tr>
                    <tr style="border-bottom: 1px solid var(--border-color);">
                        <td style="padding: 0.75rem;"><code style="color: var(--error-color);">DELETE</code></td>
                        <td style="padding: 0.75rem;"><code>/history/{id}</code></td>
                        <td style="padding: 0.75rem;">Delete one history entry</td>
                    </tr>
                    <tr>
                        <td style="padding: 0.75rem;"><code style="color: var(--error-color);">DELETE</code></td>
                        <td style="padding: 0.75rem;"><code>/history</code></td>
                        <td style="padding: 0.75rem;">Clear the history</td>
                    </tr>
                </tbody>
            </table>
        </div>
    </main>
</body>
</html>`))
}
