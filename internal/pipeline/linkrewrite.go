package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-mdguide/internal/fileutil"
)

// DefaultGuideRoot is the URL prefix documents and assets are served under.
const DefaultGuideRoot = "/guide"

// linkPattern matches [text](url). The text may hold whole images, as in
// a linked badge [![alt](img.png)](doc.md), but never a stray "[". A match
// preceded by "!" is an image and is skipped so the two passes never
// rewrite the same target.
var linkPattern = regexp.MustCompile(`\[((?:[^\[\]]|!\[[^\]]*\]\([^)]*\))+)\]\(([^)]+)\)`)

// imagePattern matches ![alt](url); alt may be empty.
var imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// imageExtensions marks a bare relative image target as a co-located asset.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp"}

// LinkRewriter rewrites relative markdown links and images so they resolve
// once the document is served under GuideRoot.
type LinkRewriter struct {
	GuideRoot string
}

// NewLinkRewriter creates a LinkRewriter for the given guide root.
// An empty root means documents are served from "/".
func NewLinkRewriter(guideRoot string) *LinkRewriter {
	return &LinkRewriter{GuideRoot: strings.TrimSuffix(guideRoot, "/")}
}

// Rewrite applies the link pass then the image pass to markdown source.
// currentPath is the validated logical path of the document being served.
//
// Links: http(s), #anchor and /rooted targets are kept. Other targets are
// resolved against the document's directory, each leading "../" climbing
// one level (never above the guide root), a trailing ".md" is dropped and
// the guide root is prefixed.
//
// Images: http(s) and /rooted targets are kept. "assets/..." gets the guide
// root prefixed; a bare file with an image extension is assumed to live in
// assets/. Anything else, including "../" images and non-image files, is
// left alone.
func (r *LinkRewriter) Rewrite(markdown, currentPath string) string {
	out := replaceMatches(linkPattern, markdown, func(src string, m []int) (string, bool) {
		if m[0] > 0 && src[m[0]-1] == '!' {
			return "", false
		}
		text, target := src[m[2]:m[3]], src[m[4]:m[5]]
		if isPassThroughLink(target) {
			return "", false
		}
		return "[" + text + "](" + r.documentURL(target, currentPath) + ")", true
	})

	return replaceMatches(imagePattern, out, func(src string, m []int) (string, bool) {
		alt, target := src[m[2]:m[3]], src[m[4]:m[5]]
		url, ok := r.imageURL(target)
		if !ok {
			return "", false
		}
		return "![" + alt + "](" + url + ")", true
	})
}

// replaceMatches rebuilds src with every accepted match replaced. fn gets the
// submatch indices and returns false to keep the original text.
func replaceMatches(re *regexp.Regexp, src string, fn func(src string, m []int) (string, bool)) string {
	matches := re.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src
	}

	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, m := range matches {
		repl, ok := fn(src, m)
		if !ok {
			continue
		}
		b.WriteString(src[last:m[0]])
		b.WriteString(repl)
		last = m[1]
	}
	b.WriteString(src[last:])
	return b.String()
}

func isPassThroughLink(target string) bool {
	return fileutil.IsURL(target) ||
		strings.HasPrefix(target, "#") ||
		strings.HasPrefix(target, "/")
}

// documentURL resolves a relative link target against currentPath.
func (r *LinkRewriter) documentURL(target, currentPath string) string {
	fragment := ""
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target, fragment = target[:i], target[i:]
	}

	dir := parentSegments(currentPath)
	for strings.HasPrefix(target, "../") {
		target = target[len("../"):]
		if len(dir) > 0 {
			dir = dir[:len(dir)-1]
		}
	}

	resolved := target
	if len(dir) > 0 {
		resolved = strings.Join(dir, "/") + "/" + target
	}
	resolved = strings.TrimSuffix(resolved, ".md")

	return r.GuideRoot + "/" + resolved + fragment
}

// imageURL returns the rewritten image target and whether it changed.
func (r *LinkRewriter) imageURL(target string) (string, bool) {
	switch {
	case fileutil.IsURL(target), strings.HasPrefix(target, "/"):
		return "", false
	case strings.HasPrefix(target, "assets/"):
		return r.GuideRoot + "/" + target, true
	case strings.HasPrefix(target, "../"):
		return "", false
	case hasImageExtension(target):
		return r.GuideRoot + "/assets/" + target, true
	}
	return "", false
}

func hasImageExtension(target string) bool {
	lower := strings.ToLower(target)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// parentSegments returns the directory segments of a logical document path.
// "index" and single-segment paths live at the root.
func parentSegments(p string) []string {
	if p == "index" || !strings.Contains(p, "/") {
		return nil
	}
	segs := strings.Split(p, "/")
	return segs[:len(segs)-1]
}
