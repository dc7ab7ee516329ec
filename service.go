package mdguide

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-mdguide/internal/assets"
	"github.com/alnah/go-mdguide/internal/docpath"
	"github.com/alnah/go-mdguide/internal/fileutil"
	"github.com/alnah/go-mdguide/internal/pipeline"
)

// defaultContentType is used for assets whose extension has no known type.
const defaultContentType = "application/octet-stream"

// Compile-time interface checks.
var _ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)

// Service resolves document paths under a docs root and renders them.
// Safe for concurrent use; nothing is cached between calls.
type Service struct {
	root     string
	cfg      serviceConfig
	log      *zap.Logger
	pool     *ReadPool
	ownsPool bool

	links     *pipeline.LinkRewriter
	converter pipeline.HTMLConverter
	page      *pipeline.PageRenderer
}

// New creates a Service serving markdown from docsRoot.
// A missing docsRoot is logged, not rejected: requests then answer 404.
func New(docsRoot string, opts ...Option) (*Service, error) {
	s := &Service{
		root: docsRoot,
		cfg: serviceConfig{
			guideRoot:   pipeline.DefaultGuideRoot,
			style:       DefaultStyle,
			highlight:   pipeline.DefaultHighlightStyle,
			cacheMaxAge: DefaultCacheMaxAge,
		},
		log:       zap.NewNop(),
		converter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	guideRoot, err := normalizeGuideRoot(s.cfg.guideRoot)
	if err != nil {
		return nil, err
	}
	s.cfg.guideRoot = guideRoot
	s.links = pipeline.NewLinkRewriter(guideRoot)

	if s.page, err = s.newPageRenderer(); err != nil {
		return nil, err
	}

	if !fileutil.IsDir(docsRoot) {
		s.log.Warn("documentation directory does not exist", zap.String("docs_root", docsRoot))
	}

	if s.pool == nil {
		s.pool = NewReadPool(ResolvePoolSize(s.cfg.workers))
		s.ownsPool = true
	}

	return s, nil
}

// newPageRenderer loads the page template and stylesheet, custom assets
// first, and appends the highlight theme CSS.
func (s *Service) newPageRenderer() (*pipeline.PageRenderer, error) {
	resolver, err := assets.NewAssetResolver(s.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	css, err := resolver.LoadStyle(s.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("loading style %q: %w", s.cfg.style, err)
	}

	hlCSS, err := pipeline.HighlightCSS(s.cfg.highlight)
	if err != nil {
		return nil, err
	}

	tmpl, err := resolver.LoadTemplate(assets.PageTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}

	s.log.Debug("page assets loaded",
		zap.String("style", s.cfg.style),
		zap.String("highlight", s.cfg.highlight),
		zap.Bool("custom_assets", resolver.HasCustomLoader()))

	return pipeline.NewPageRenderer(tmpl, css+"\n"+hlCSS, s.cfg.guideRoot)
}

// Document validates, reads, rewrites and renders one document.
//
// Errors: ErrInvalidPath, ErrDocumentNotFound, ErrReadFailure,
// ErrRenderFailure, or the context's error.
func (s *Service) Document(ctx context.Context, raw string) (*Page, error) {
	src, err := s.Source(ctx, raw)
	if err != nil {
		return nil, err
	}

	fragment, err := s.converter.ToHTML(ctx, src.Markdown)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailure, err)
	}

	html, err := s.page.Render(ctx, pipeline.PageData{
		Title:       src.Title,
		Content:     fragment,
		Breadcrumbs: src.Breadcrumbs,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailure, err)
	}

	return &Page{Metadata: src.Metadata, HTML: html}, nil
}

// Source validates and reads one document and rewrites its links, without
// rendering it to HTML.
func (s *Service) Source(ctx context.Context, raw string) (*Source, error) {
	p, err := docpath.ValidateDocument(s.root, raw)
	if err != nil {
		return nil, err
	}

	markdown, err := s.read(ctx, p)
	if err != nil {
		return nil, err
	}

	return &Source{
		Metadata: docpath.NewMetadata(p),
		Markdown: s.links.Rewrite(markdown, p),
	}, nil
}

// read returns the first candidate file that can be read. A candidate that
// exists but fails to read is logged and the next one tried.
func (s *Service) read(ctx context.Context, p string) (string, error) {
	files := docpath.Existing(s.root, p)
	if len(files) == 0 {
		return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, p)
	}

	var lastErr error
	for _, f := range files {
		data, err := s.pool.Read(ctx, f)
		if err == nil {
			return string(data), nil
		}
		if ctx.Err() != nil || errors.Is(err, ErrPoolClosed) {
			return "", err
		}
		s.log.Error("reading document file", zap.String("file", f), zap.Error(err))
		lastErr = err
	}
	return "", fmt.Errorf("%w: %s: %v", ErrReadFailure, p, lastErr)
}

// Asset validates an asset path and describes the file it names.
//
// Errors: ErrInvalidPath, ErrAssetNotFound, ErrReadFailure.
func (s *Service) Asset(ctx context.Context, raw string) (*Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean, err := docpath.ValidateAsset(raw)
	if err != nil {
		return nil, err
	}

	file, err := docpath.AssetFile(s.root, clean)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, clean)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadFailure, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, clean)
	}

	return &Asset{
		Name:        clean,
		Path:        file,
		ContentType: contentType(file),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
	}, nil
}

func contentType(file string) string {
	if t := mime.TypeByExtension(filepath.Ext(file)); t != "" {
		return t
	}
	return defaultContentType
}

// Root returns the docs root directory.
func (s *Service) Root() string {
	return s.root
}

// GuideRoot returns the normalized URL prefix ("" for the site root).
func (s *Service) GuideRoot() string {
	return s.cfg.guideRoot
}

// CacheMaxAge returns the asset cache lifetime.
func (s *Service) CacheMaxAge() time.Duration {
	return s.cfg.cacheMaxAge
}

// Workers returns the read pool size.
func (s *Service) Workers() int {
	return s.pool.Size()
}

// Close releases the read pool if the Service created it.
func (s *Service) Close() error {
	if s.ownsPool && s.pool != nil {
		return s.pool.Close()
	}
	return nil
}
