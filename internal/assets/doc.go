// Package assets provides the stylesheets and the page template used to wrap
// rendered guide documents.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in look)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is what the guide service uses. A deployment can override
// just the stylesheet, or just the page template, and keep the built-in
// version of everything else.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css       # e.g. default.css, minimal.css
//	└── templates/
//	    └── {name}.html      # e.g. page.html
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
//
// This package serves the service's own look and feel. The files under the
// docs root's assets/ directory are served by the guide service itself.
package assets
