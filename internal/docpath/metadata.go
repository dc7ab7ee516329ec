package docpath

import (
	"strings"
	"unicode"
)

// HomeLabel is the first breadcrumb of every page.
const HomeLabel = "Home"

// IndexTitle is the title of the index document.
const IndexTitle = "Documentation Home"

// Metadata describes a document derived purely from its logical path.
type Metadata struct {
	Title       string
	Path        string
	Breadcrumbs []string
	ContentType string
}

// NewMetadata derives the title and breadcrumbs for a validated path.
//
//	"index"                 -> "Documentation Home", [Home]
//	"guide/getting-started" -> "Getting Started", [Home, Guide, Getting Started]
func NewMetadata(p string) Metadata {
	md := Metadata{
		Path:        p,
		Breadcrumbs: []string{HomeLabel},
		ContentType: "text/html",
	}

	if p == IndexPath {
		md.Title = IndexTitle
		return md
	}

	segments := strings.Split(p, "/")
	for _, seg := range segments {
		md.Breadcrumbs = append(md.Breadcrumbs, Label(seg))
	}
	md.Title = Label(segments[len(segments)-1])
	return md
}

// Label turns a path segment into display text: hyphens become spaces and
// each word is title-cased. A letter is upper-cased when the previous rune
// is not a cased letter, so digits start a new word ("v2x" -> "V2X").
func Label(segment string) string {
	s := strings.ReplaceAll(segment, "-", " ")

	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		cased := unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
		switch {
		case cased && !prevCased:
			b.WriteRune(unicode.ToTitle(r))
		case cased:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevCased = cased
	}
	return b.String()
}
