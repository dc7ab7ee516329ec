// Package process holds platform-specific helpers for cleaning up the
// headless browser the PDF exporter launches.
package process
