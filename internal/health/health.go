// Package health reports whether the guide can serve documents.
package health

import (
	"context"
	"time"

	"github.com/alnah/go-mdguide/internal/fileutil"
)

// Status values reported by Check.
const (
	StatusHealthy = "healthy"
	StatusError   = "error"
)

// Application identifies the running binary in a Report.
type Application struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Report is the JSON body of the health endpoint.
type Report struct {
	Status      string            `json:"status"`
	Message     string            `json:"message"`
	Timestamp   time.Time         `json:"timestamp"`
	Application Application       `json:"application"`
	Checks      map[string]string `json:"checks"`
}

// Healthy reports whether every check passed.
func (r Report) Healthy() bool {
	return r.Status == StatusHealthy
}

// Checker builds health reports for one docs root.
type Checker struct {
	DocsRoot string
	App      Application

	// Now is overridable in tests.
	Now func() time.Time
}

// NewChecker creates a Checker for docsRoot.
func NewChecker(docsRoot string, app Application) *Checker {
	return &Checker{DocsRoot: docsRoot, App: app, Now: time.Now}
}

// Check runs all checks. A canceled context yields an error report.
func (c *Checker) Check(ctx context.Context) Report {
	r := Report{
		Status:      StatusHealthy,
		Message:     "Service is running smoothly",
		Timestamp:   c.Now().UTC(),
		Application: c.App,
		Checks:      map[string]string{},
	}

	if err := ctx.Err(); err != nil {
		r.Status = StatusError
		r.Message = "Health check failed: " + err.Error()
		return r
	}

	if fileutil.IsDir(c.DocsRoot) {
		r.Checks["docs_root"] = "ok"
	} else {
		r.Checks["docs_root"] = "missing"
		r.Status = StatusError
		r.Message = "Documentation directory is not available"
	}

	return r
}
