// Package mdguide serves a directory of Markdown documents as a styled HTML
// guide.
//
// # Quick Start
//
// Create a service over a docs directory and render a document:
//
//	svc, err := mdguide.New("docs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	page, err := svc.Document(ctx, "guide/getting-started")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(page.Title, len(page.HTML))
//
// # Resolution Pipeline
//
// Every document request runs the same stages, stopping at the first error:
//
//  1. Path validation: no "..", no < > | : * ?, must stay inside the root
//  2. File lookup: <path>.md, then <path>/index.md
//  3. Read through a bounded ReadPool (context-aware)
//  4. Link rewriting: relative links and images become guide URLs
//  5. Markdown to HTML via Goldmark (tables, definition lists, attribute
//     lists, class-based code highlighting, [TOC])
//  6. Page template: title, breadcrumbs, stylesheet
//
// The empty path is the "index" document. Assets live under <root>/assets
// and are served verbatim by Asset.
//
// # Errors
//
// Failures are classified with errors.Is:
//
//	ErrInvalidPath       - traversal or forbidden characters (client error)
//	ErrDocumentNotFound  - no candidate file exists
//	ErrAssetNotFound     - the asset file does not exist
//	ErrReadFailure       - a file exists but could not be read
//	ErrRenderFailure     - Markdown or template rendering failed
//
// # Configuration
//
//	svc, err := mdguide.New("docs",
//	    mdguide.WithGuideRoot("/docs"),
//	    mdguide.WithStyle("minimal"),
//	    mdguide.WithHighlightStyle("monokai"),
//	    mdguide.WithAssetPath("/path/to/custom/assets"),
//	    mdguide.WithLogger(logger),
//	)
//
// # PDF Export
//
// PDFExporter prints a rendered Page with headless Chrome (go-rod). Asset
// URLs are rewritten to local files first:
//
//	exp := mdguide.NewPDFExporter(svc, 0)
//	defer exp.Close()
//	pdf, err := exp.Export(ctx, page, mdguide.DefaultPageSettings())
package mdguide
