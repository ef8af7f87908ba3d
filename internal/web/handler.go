// Package web is the browser-facing shell: it collects a URL from a
// form, invokes the scraper synchronously, and renders the result.
package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rotisserie/eris"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"

	"github.com/sells-group/site2api/internal/extract"
	"github.com/sells-group/site2api/internal/model"
	"github.com/sells-group/site2api/internal/scrape"
	"github.com/sells-group/site2api/pkg/firecrawl"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the form page and the scrape/extract submissions.
// Submissions block until the provider call returns; there is no
// background work and no state carried between requests.
type Handler struct {
	scraper  scrape.Scraper
	fc       firecrawl.Client
	tmpl     *template.Template
	md       goldmark.Markdown
	pollOpts []firecrawl.PollOption
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithPollOptions overrides extract polling behavior.
func WithPollOptions(opts ...firecrawl.PollOption) HandlerOption {
	return func(h *Handler) {
		h.pollOpts = opts
	}
}

// NewHandler creates a Handler. fc backs the extract endpoints and may
// share the scraper's underlying client.
func NewHandler(scraper scrape.Scraper, fc firecrawl.Client, opts ...HandlerOption) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, eris.Wrap(err, "web: parse templates")
	}
	h := &Handler{
		scraper: scraper,
		fc:      fc,
		tmpl:    tmpl,
		md:      goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// pageData is the template context for the single form page.
type pageData struct {
	URL        string
	Prompt     string
	Fields     []model.Field
	FieldTypes []model.FieldType
	Content    template.HTML
	Error      string
}

func newPageData() pageData {
	return pageData{
		Fields:     make([]model.Field, model.MaxSchemaFields),
		FieldTypes: model.AllFieldTypes(),
	}
}

// Index renders the empty form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, newPageData())
}

// ScrapePage handles a scrape submission. A blank URL is rejected here
// without invoking the scraper.
func (h *Handler) ScrapePage(w http.ResponseWriter, r *http.Request) {
	data := newPageData()
	data.URL = r.FormValue("url")

	if data.URL == "" {
		data.Error = "Please enter a website URL first!"
		h.render(w, http.StatusBadRequest, data)
		return
	}

	page, err := h.scraper.Scrape(r.Context(), data.URL)
	if err != nil {
		data.Error = errorMessage(err)
		h.render(w, http.StatusOK, data)
		return
	}

	content, err := h.renderMarkdown(page.Markdown)
	if err != nil {
		data.Error = "Could not render the scraped content."
		zap.L().Error("web: render markdown", zap.String("url", data.URL), zap.Error(err))
		h.render(w, http.StatusOK, data)
		return
	}
	data.Content = content
	h.render(w, http.StatusOK, data)
}

// ExtractPage handles an extract submission: prompt plus an optional
// field schema. The handler blocks while the extract job runs.
func (h *Handler) ExtractPage(w http.ResponseWriter, r *http.Request) {
	data := newPageData()
	data.URL = r.FormValue("url")
	data.Prompt = r.FormValue("prompt")
	data.Fields = parseFields(r)

	if data.URL == "" {
		data.Error = "Please enter a website URL first!"
		h.render(w, http.StatusBadRequest, data)
		return
	}
	if _, err := scrape.ValidateURL(data.URL); err != nil {
		data.Error = errorMessage(err)
		h.render(w, http.StatusOK, data)
		return
	}

	resp, err := h.fc.Extract(r.Context(), firecrawl.ExtractRequest{
		URLs:   []string{data.URL},
		Prompt: data.Prompt,
		Schema: extract.Schema(data.Fields),
	})
	if err != nil {
		data.Error = errorMessage(err)
		h.render(w, http.StatusOK, data)
		return
	}

	status, err := firecrawl.PollExtract(r.Context(), h.fc, resp.ID, h.pollOpts...)
	if err != nil {
		data.Error = errorMessage(err)
		h.render(w, http.StatusOK, data)
		return
	}

	md, err := extract.Render(status.Data)
	if err != nil {
		data.Error = "Unexpected API response format. Please check the API key and request."
		zap.L().Error("web: render extract result", zap.String("url", data.URL), zap.Error(err))
		h.render(w, http.StatusOK, data)
		return
	}

	content, err := h.renderMarkdown(md)
	if err != nil {
		data.Error = "Could not render the extracted content."
		zap.L().Error("web: render markdown", zap.String("url", data.URL), zap.Error(err))
		h.render(w, http.StatusOK, data)
		return
	}
	data.Content = content
	h.render(w, http.StatusOK, data)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h *Handler) renderMarkdown(md string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(md), &buf); err != nil {
		return "", eris.Wrap(err, "web: convert markdown")
	}
	return template.HTML(buf.String()), nil
}

func (h *Handler) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		zap.L().Error("web: execute template", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// parseFields reads the schema-builder rows from the form.
func parseFields(r *http.Request) []model.Field {
	fields := make([]model.Field, model.MaxSchemaFields)
	for i := range fields {
		fields[i].Name = r.FormValue(fmt.Sprintf("field_name_%d", i))
		ft := model.FieldType(r.FormValue(fmt.Sprintf("field_type_%d", i)))
		if !ft.Valid() {
			ft = model.FieldTypeString
		}
		fields[i].Type = ft
	}
	return fields
}

// errorMessage returns the display message for an error. Classified
// scrape errors carry their own message; anything else gets a generic
// line so internals never leak to the page.
func errorMessage(err error) string {
	var se *scrape.Error
	if errors.As(err, &se) {
		return se.Message()
	}
	var apiErr *firecrawl.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401, 403:
			return "scraping service rejected the API key"
		}
	}
	return "An error occurred while contacting the scraping service."
}
