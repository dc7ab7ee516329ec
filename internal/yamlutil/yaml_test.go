package yamlutil_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-mdguide/internal/yamlutil"
)

type serverSection struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	ShutdownWait time.Duration `yaml:"shutdownWait"`
}

type testConfig struct {
	Server  serverSection `yaml:"server"`
	Workers int           `yaml:"workers"`
}

func TestUnmarshalStrict_Input(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{
			name: "valid YAML",
			data: []byte("server:\n  addr: \":9000\"\nworkers: 3"),
			dest: &testConfig{},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("workers: 1"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
			}
		})
	}
}

func TestUnmarshalStrict_Values(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	data := []byte("server:\n  addr: \":9000\"\n  readTimeout: 5s\nworkers: 3")
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9000")
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
}

func TestUnmarshalStrict_SyntaxError(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := yamlutil.UnmarshalStrict([]byte("server: [unclosed"), &cfg)
	if err == nil {
		t.Fatal("UnmarshalStrict() expected error for invalid YAML")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error = %q, want yamlutil: prefix", err)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known keys accepted", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.UnmarshalStrict([]byte("workers: 4"), &cfg); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.UnmarshalStrict([]byte("workerz: 4"), &cfg)
		if err == nil {
			t.Fatal("UnmarshalStrict() expected error for unknown field")
		}
	})

	t.Run("nested unknown key rejected", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.UnmarshalStrict([]byte("server:\n  adr: \":80\""), &cfg)
		if err == nil {
			t.Fatal("UnmarshalStrict() expected error for unknown nested field")
		}
	})
}

func TestMaxInputSize(t *testing.T) {
	// Not parallel: mutates package-level MaxInputSize.
	orig := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 16
	t.Cleanup(func() { yamlutil.MaxInputSize = orig })

	var cfg testConfig
	err := yamlutil.UnmarshalStrict([]byte(strings.Repeat("#", 32)), &cfg)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("UnmarshalStrict() error = %v, want ErrInputTooLarge", err)
	}
}
