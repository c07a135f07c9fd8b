package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"url only", Config{URL: "https://food.example/x"}, false},
		{"pdf only", Config{PDFPath: "r.pdf"}, false},
		{"text only", Config{TextPath: "r.txt"}, false},
		{"no input", Config{}, true},
		{"url and pdf", Config{URL: "https://food.example/x", PDFPath: "r.pdf"}, true},
	}
	for _, c := range cases {
		err := c.cfg.Validate()
		if (err != nil) != c.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", c.name, err, c.wantErr)
		}
	}
}

func TestApplyFile_FlagsWin(t *testing.T) {
	cfg := Config{UserAgent: "from-flag", CacheDir: ""}
	var fc FileConfig
	fc.UserAgent = "from-file"
	fc.Timeout = 30 * time.Second
	fc.Cache.Dir = "/tmp/ladle-cache"

	cfg.ApplyFile(fc)

	if cfg.UserAgent != "from-flag" {
		t.Errorf("explicit flag should win, got %q", cfg.UserAgent)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("unset timeout should come from file, got %v", cfg.Timeout)
	}
	if cfg.CacheDir != "/tmp/ladle-cache" {
		t.Errorf("unset cache dir should come from file, got %q", cfg.CacheDir)
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ladle.yaml")
	content := "userAgent: ladle-test/1.0\ntimeout: 15s\ncache:\n  dir: .ladle-cache\n  maxAge: 24h\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.UserAgent != "ladle-test/1.0" || fc.Timeout != 15*time.Second {
		t.Errorf("decoded = %+v", fc)
	}
	if fc.Cache.Dir != ".ladle-cache" || fc.Cache.MaxAge != 24*time.Hour {
		t.Errorf("cache section = %+v", fc.Cache)
	}
}
