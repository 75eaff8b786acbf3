package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[render]
width = 100
scheme = "basic"

[trace]
level = "debug"
`)
	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Path = path
	want.Render.Width = 100
	want.Render.Scheme = "basic"
	want.Trace.Level = "debug"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestLoadFindsParentConfig(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[resolve]\nmax_depth = 3\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("", nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Resolve.MaxDepth != 3 {
		t.Fatalf("max_depth = %d, want 3", cfg.Resolve.MaxDepth)
	}
	if cfg.Path != filepath.Join(root, FileName) {
		t.Fatalf("path = %q", cfg.Path)
	}
}

func TestLoadFileErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[render\n", "failed to parse TOML"},
		{"unknown key", "[render]\ncolour = 1\n", "unknown key render.colour"},
		{"negative width", "[render]\nwidth = -1\n", "[render].width"},
		{"scheme", "[render]\nscheme = \"neon\"\n", "[render].scheme"},
		{"path mode", "[render]\npath_mode = \"short\"\n", "[render].path_mode"},
		{"separator", "[render]\nseparator = \" \"\n", "[render].separator"},
		{"depth", "[resolve]\nmax_depth = 0\n", "[resolve].max_depth"},
		{"level", "[trace]\nlevel = \"loud\"\n", "[trace].level"},
		{"mode", "[trace]\nmode = \"tape\"\n", "[trace].mode"},
		{"format", "[trace]\nformat = \"xml\"\n", "[trace].format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tc.body)
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) || !strings.Contains(err.Error(), path) {
				t.Fatalf("error %q should mention %q and the file", err, tc.want)
			}
		})
	}
}
