package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-mdguide/internal/fileutil"
)

// RewriteAssetURLs converts guide asset URLs (<guideRoot>/assets/...) in a
// rendered page into file:// URLs under <docsRoot>/assets, so the page can
// be opened straight from disk by a headless browser.
// If docsRoot is empty, returns the HTML unchanged.
//
// Rewrites img[src] and a[href]. Document links, external URLs, anchors and
// anything resolving outside the assets directory are left as they are.
func RewriteAssetURLs(htmlContent, guideRoot, docsRoot string) (string, error) {
	if docsRoot == "" {
		return htmlContent, nil
	}

	absAssets, err := filepath.Abs(filepath.Join(docsRoot, "assets"))
	if err != nil {
		return "", err
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rw := assetRewriter{
		prefix:    strings.TrimSuffix(guideRoot, "/") + "/assets/",
		assetsDir: absAssets,
	}
	rw.walk(doc)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string. Fragments render only
// their children so no <html><body> wrapper is added.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type assetRewriter struct {
	prefix    string
	assetsDir string
}

func (r assetRewriter) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			r.rewriteAttr(n, "src")
		case atom.A:
			r.rewriteAttr(n, "href")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
}

func (r assetRewriter) rewriteAttr(n *html.Node, key string) {
	for i, attr := range n.Attr {
		if attr.Key != key || !strings.HasPrefix(attr.Val, r.prefix) {
			continue
		}

		rel, err := url.PathUnescape(strings.TrimPrefix(attr.Val, r.prefix))
		if err != nil || rel == "" {
			continue
		}

		absPath := filepath.Join(r.assetsDir, filepath.FromSlash(rel))
		if !fileutil.IsWithin(absPath, r.assetsDir) || absPath == r.assetsDir {
			continue // leave the original URL, never point outside assets/
		}

		n.Attr[i].Val = pathToFileURL(absPath)
	}
}

// pathToFileURL converts an absolute path to a file:// URL.
// Handles both Unix and Windows paths correctly.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
