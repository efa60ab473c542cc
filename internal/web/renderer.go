package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates
var templateFS embed.FS

const (
	LayoutAuth = "auth"
	LayoutApp  = "app"
)

// Page names accepted by Render.
const (
	PageLogin     = "auth/login"
	PageDashboard = "dashboard"
	PageUpload    = "upload"
	PageInvoices  = "invoices"
	PageInvoice   = "invoice"
	PageNotFound  = "not_found"
)

// Renderer holds one parsed template set per page. Pages under pages/auth use
// the auth layout, everything else the app layout.
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
}

func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	root, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}

	return NewRendererFromFS(root, logger)
}

// NewRendererFromFS parses layouts, partials and pages from fsys.
func NewRendererFromFS(fsys fs.FS, logger *slog.Logger) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		logger:    logger,
	}

	partials, err := fs.Glob(fsys, "partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to glob partials: %w", err)
	}

	layouts := make(map[string]*template.Template)
	for _, layout := range []string{LayoutAuth, LayoutApp} {
		tmpl, err := template.New(layout).Funcs(sprig.FuncMap()).Funcs(TemplateFuncs()).ParseFS(fsys, "layouts/"+layout+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s layout: %w", layout, err)
		}
		if len(partials) > 0 {
			if tmpl, err = tmpl.ParseFS(fsys, partials...); err != nil {
				return nil, fmt.Errorf("failed to parse partials into %s layout: %w", layout, err)
			}
		}
		layouts[layout] = tmpl
	}

	if err := r.loadPages(fsys, "pages/auth/*.html", "auth/", layouts[LayoutAuth]); err != nil {
		return nil, err
	}
	if err := r.loadPages(fsys, "pages/*.html", "", layouts[LayoutApp]); err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Debug("templates loaded", "count", len(r.templates))
	}

	return r, nil
}

func (r *Renderer) loadPages(fsys fs.FS, pattern, prefix string, base *template.Template) error {
	pages, err := fs.Glob(fsys, pattern)
	if err != nil {
		return fmt.Errorf("failed to glob %s: %w", pattern, err)
	}

	for _, page := range pages {
		tmpl, err := base.Clone()
		if err != nil {
			return fmt.Errorf("failed to clone layout for %s: %w", page, err)
		}
		if _, err := tmpl.ParseFS(fsys, page); err != nil {
			return fmt.Errorf("failed to parse page %s: %w", page, err)
		}

		name := strings.TrimSuffix(path.Base(page), path.Ext(page))
		r.templates[prefix+name] = tmpl
	}

	return nil
}

// Render executes the named page inside its layout.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}

	return tmpl.ExecuteTemplate(w, layoutFor(page), data)
}

func (r *Renderer) Has(page string) bool {
	_, ok := r.templates[page]
	return ok
}

func layoutFor(page string) string {
	if strings.HasPrefix(page, "auth/") {
		return LayoutAuth
	}
	return LayoutApp
}
