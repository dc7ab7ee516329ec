// Package docpath turns raw request paths into safe logical document and
// asset paths, derives page metadata from them, and lists the files a
// document path may live in.
//
// A document path is slash-separated and extensionless ("guide/setup").
// It resolves to either <root>/guide/setup.md or <root>/guide/setup/index.md,
// tried in that order. Asset paths are taken verbatim under <root>/assets.
//
// Validation never touches the filesystem beyond one filepath.Abs call, so
// rejected requests cost nothing.
package docpath
