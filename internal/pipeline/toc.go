package pipeline

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// tocMarkerPattern finds a line holding only [TOC] in markdown source.
var tocMarkerPattern = regexp.MustCompile(`(?m)^[ \t]*\[TOC\][ \t]*$`)

// tocParagraphPattern matches the paragraph goldmark renders for the marker.
var tocParagraphPattern = regexp.MustCompile(`<p>\[TOC\]</p>`)

// headingPattern matches h1-h6 tags with id attribute.
// Captures: 1=level, 2=id, 3=inner HTML (may contain inline tags)
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

type heading struct {
	Level int
	ID    string
	Text  string
}

// InjectTOC replaces every rendered [TOC] paragraph with a nested list of
// links to the fragment's headings. Content without headings loses the
// marker and gains nothing.
func InjectTOC(fragment string) string {
	if !tocParagraphPattern.MatchString(fragment) {
		return fragment
	}
	toc := buildTOC(extractHeadings(fragment))
	return tocParagraphPattern.ReplaceAllLiteralString(fragment, toc)
}

// stripHTMLTags removes tags and decodes entities so the text is not
// double-escaped when written back into the TOC.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

func extractHeadings(fragment string) []heading {
	matches := headingPattern.FindAllStringSubmatch(fragment, -1)
	headings := make([]heading, 0, len(matches))
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		headings = append(headings, heading{
			Level: level,
			ID:    m[2],
			Text:  stripHTMLTags(m[3]),
		})
	}
	return headings
}

// buildTOC renders headings as nested <ul> lists. The shallowest heading
// level present is the top of the tree and skipped levels collapse, so
// an h1 followed by an h3 nests the h3 one level down, not two.
func buildTOC(headings []heading) string {
	if len(headings) == 0 {
		return ""
	}

	minLevel := headings[0].Level
	for _, h := range headings {
		if h.Level < minLevel {
			minLevel = h.Level
		}
	}

	var b strings.Builder
	b.WriteString(`<div class="toc">`)

	depth := 0
	for i, h := range headings {
		want := h.Level - minLevel + 1
		if want > depth+1 {
			want = depth + 1
		}

		switch {
		case want > depth:
			for ; depth < want; depth++ {
				b.WriteString("<ul>")
			}
		case want < depth:
			for ; depth > want; depth-- {
				b.WriteString("</li></ul>")
			}
			b.WriteString("</li>")
		case i > 0:
			b.WriteString("</li>")
		}

		b.WriteString(`<li><a href="#`)
		b.WriteString(html.EscapeString(h.ID))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(h.Text))
		b.WriteString("</a>")
	}
	for ; depth > 0; depth-- {
		b.WriteString("</li></ul>")
	}

	b.WriteString("</div>")
	return b.String()
}
