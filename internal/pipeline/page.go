package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrPageRender indicates the page template failed to execute.
var ErrPageRender = errors.New("page template rendering failed")

// Crumb is one rendered breadcrumb entry.
type Crumb struct {
	Label   string
	Href    string
	Current bool
}

// PageData is the input to the page template.
type PageData struct {
	Title       string
	Content     string   // trusted HTML fragment from the converter
	Breadcrumbs []string // display labels, root first
}

// pageView is what the template actually sees.
type pageView struct {
	Title       string
	CSS         template.CSS
	Content     template.HTML
	Breadcrumbs []Crumb
}

// PageRenderer wraps converted HTML in the guide's page shell.
type PageRenderer struct {
	tmpl      *template.Template
	css       template.CSS
	guideRoot string
}

// NewPageRenderer parses the page template. css is embedded verbatim in the
// page's <style> block.
func NewPageRenderer(tmplContent, css, guideRoot string) (*PageRenderer, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &PageRenderer{
		tmpl:      tmpl,
		css:       template.CSS(sanitizeCSS(css)), // #nosec G203 -- stylesheet comes from trusted assets
		guideRoot: strings.TrimSuffix(guideRoot, "/"),
	}, nil
}

// Render executes the page template for one document.
func (p *PageRenderer) Render(ctx context.Context, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	view := pageView{
		Title:       data.Title,
		CSS:         p.css,
		Content:     template.HTML(data.Content), // #nosec G203 -- converter output, raw HTML disabled
		Breadcrumbs: BuildBreadcrumbs(data.Breadcrumbs, p.guideRoot),
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// BuildBreadcrumbs turns labels into navigation entries. The first entry
// links to the guide root, the last is the current page and has no link.
// Intermediate hrefs accumulate the display labels themselves
// ("/guide/User Guide"), not the original path segments.
func BuildBreadcrumbs(labels []string, guideRoot string) []Crumb {
	if len(labels) == 0 {
		return nil
	}

	crumbs := make([]Crumb, 0, len(labels))
	current := guideRoot
	for i, label := range labels {
		switch {
		case i == len(labels)-1:
			crumbs = append(crumbs, Crumb{Label: label, Current: true})
		case i == 0:
			crumbs = append(crumbs, Crumb{Label: label, Href: guideRoot + "/"})
		default:
			current += "/" + label
			crumbs = append(crumbs, Crumb{Label: label, Href: current})
		}
	}
	return crumbs
}

// sanitizeCSS stops a stylesheet from closing the <style> element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
