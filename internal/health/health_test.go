package health

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	app := Application{Name: "mdguide", Version: "test"}

	tests := []struct {
		name     string
		root     string
		want     Report
		wantBool bool
	}{
		{
			name: "docs root present",
			root: t.TempDir(),
			want: Report{
				Status:      StatusHealthy,
				Message:     "Service is running smoothly",
				Timestamp:   fixed,
				Application: app,
				Checks:      map[string]string{"docs_root": "ok"},
			},
			wantBool: true,
		},
		{
			name: "docs root missing",
			root: filepath.Join(t.TempDir(), "gone"),
			want: Report{
				Status:      StatusError,
				Message:     "Documentation directory is not available",
				Timestamp:   fixed,
				Application: app,
				Checks:      map[string]string{"docs_root": "missing"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewChecker(tt.root, app)
			c.Now = func() time.Time { return fixed }

			got := c.Check(context.Background())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Check() mismatch (-want +got):\n%s", diff)
			}
			if got.Healthy() != tt.wantBool {
				t.Errorf("Healthy() = %v, want %v", got.Healthy(), tt.wantBool)
			}
		})
	}
}

func TestChecker_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := NewChecker(t.TempDir(), Application{}).Check(ctx)
	if got.Status != StatusError {
		t.Errorf("Status = %q, want %q", got.Status, StatusError)
	}
}
