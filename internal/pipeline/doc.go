// Package pipeline implements the stages that turn a guide document into a
// served HTML page:
//   - Link rewriting: relative markdown links and images become
//     guide-root-absolute URLs (regex passes over the markdown source)
//   - Markdown to HTML conversion via Goldmark (tables, definition lists,
//     attribute lists, class-based syntax highlighting, [TOC] markers)
//   - Page wrapping: html/template shell with breadcrumb navigation
//   - Export rewriting: guide asset URLs become file:// URLs so a headless
//     browser can load them from disk
//
// Every stage is a pure function of its inputs; nothing here touches the
// network or keeps state between documents.
package pipeline
