package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
// Heading ids are only generated for documents that carry a [TOC] marker,
// unless WithHeadingIDs forces them on.
type GoldmarkConverter struct {
	plain    goldmark.Markdown
	anchored goldmark.Markdown
	alwaysID bool
}

// ConverterOption configures a GoldmarkConverter.
type ConverterOption func(*GoldmarkConverter)

// WithHeadingIDs makes every document get heading ids, not just those
// containing a [TOC] marker.
func WithHeadingIDs(enabled bool) ConverterOption {
	return func(c *GoldmarkConverter) { c.alwaysID = enabled }
}

// NewGoldmarkConverter creates a GoldmarkConverter with the guide's fixed
// extension set.
func NewGoldmarkConverter(opts ...ConverterOption) *GoldmarkConverter {
	c := &GoldmarkConverter{
		plain:    newMarkdown(false),
		anchored: newMarkdown(true),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newMarkdown(headingIDs bool) goldmark.Markdown {
	parserOpts := []parser.Option{
		parser.WithAttribute(), // {#id .class} attribute lists
	}
	if headingIDs {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	return goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.DefinitionList,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // classes only; colours come from HighlightCSS
				),
			),
		),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe() is not set: raw HTML in documents is dropped.
		),
	)
}

// ToHTML converts Markdown content to an HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine and
// the caller stops waiting on cancellation.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	hasTOC := tocMarkerPattern.MatchString(content)
	md := c.plain
	if hasTOC || c.alwaysID {
		md = c.anchored
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		out := buf.String()
		if hasTOC {
			out = InjectTOC(out)
		}
		done <- result{html: out}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
