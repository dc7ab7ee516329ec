package mdguide

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-mdguide/internal/docpath"
)

// Metadata describes a document derived from its logical path.
type Metadata = docpath.Metadata

// Page is a rendered document ready to be served.
type Page struct {
	Metadata
	HTML string
}

// Source is a document's markdown after link rewriting, before rendering.
type Source struct {
	Metadata
	Markdown string
}

// Asset is a static file under the docs root's assets directory.
type Asset struct {
	Name        string // validated logical path under assets/
	Path        string // absolute path on disk
	ContentType string
	Size        int64
	ModTime     time.Time
}

// Defaults applied by New.
const (
	DefaultStyle       = "default"
	DefaultCacheMaxAge = time.Hour
)

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	guideRoot   string
	assetPath   string
	style       string
	highlight   string
	workers     int
	cacheMaxAge time.Duration
}

// WithGuideRoot sets the URL prefix documents are served under (default "/guide").
func WithGuideRoot(root string) Option {
	return func(s *Service) {
		s.cfg.guideRoot = root
	}
}

// WithAssetPath sets a directory of custom styles and templates.
// Missing files fall back to the embedded defaults.
func WithAssetPath(path string) Option {
	return func(s *Service) {
		s.cfg.assetPath = path
	}
}

// WithStyle selects the page stylesheet by name.
func WithStyle(name string) Option {
	return func(s *Service) {
		s.cfg.style = name
	}
}

// WithHighlightStyle selects the chroma theme for code blocks.
func WithHighlightStyle(name string) Option {
	return func(s *Service) {
		s.cfg.highlight = name
	}
}

// WithWorkers sets the read pool size. Zero means auto-sized.
// Ignored when WithReadPool is also given.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("mdguide: WithWorkers count must not be negative")
	}
	return func(s *Service) {
		s.cfg.workers = n
	}
}

// WithReadPool shares an existing pool. The caller keeps ownership and
// closes it after the Service.
func WithReadPool(p *ReadPool) Option {
	return func(s *Service) {
		s.pool = p
	}
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCacheMaxAge sets the Cache-Control lifetime advertised for assets.
func WithCacheMaxAge(d time.Duration) Option {
	if d < 0 {
		panic("mdguide: WithCacheMaxAge duration must not be negative")
	}
	return func(s *Service) {
		s.cfg.cacheMaxAge = d
	}
}

// normalizeGuideRoot trims a trailing slash and requires a leading one.
// "" and "/" both mean documents are served from the site root.
func normalizeGuideRoot(root string) (string, error) {
	root = strings.TrimSuffix(root, "/")
	if root == "" {
		return "", nil
	}
	if !strings.HasPrefix(root, "/") {
		return "", fmt.Errorf("%w: %q must start with /", ErrInvalidGuideRoot, root)
	}
	if strings.ContainsAny(root, "{}?#") {
		return "", fmt.Errorf("%w: %q contains reserved characters", ErrInvalidGuideRoot, root)
	}
	return root, nil
}
