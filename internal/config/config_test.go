package config

import "testing"

func TestLoadServerConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := loadServerConfig()
	if err != nil {
		t.Fatalf("loadServerConfig err: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("Addr = %q, want :8080", cfg.Addr)
	}
}

func TestLoadServerConfigPortForms(t *testing.T) {
	cases := map[string]string{
		"9090":           ":9090",
		":9090":          ":9090",
		"127.0.0.1:9090": "127.0.0.1:9090",
	}

	for input, want := range cases {
		t.Setenv("PORT", input)
		cfg, err := loadServerConfig()
		if err != nil {
			t.Fatalf("loadServerConfig(%q) err: %v", input, err)
		}
		if cfg.Addr != want {
			t.Fatalf("loadServerConfig(%q) = %q, want %q", input, cfg.Addr, want)
		}
	}
}

func TestLoadServerConfigInvalidPort(t *testing.T) {
	t.Setenv("PORT", "80 80")
	if _, err := loadServerConfig(); err == nil {
		t.Fatal("expected error for PORT with spaces")
	}
}

func TestLoadUpstreamConfigDefaults(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "")
	t.Setenv("UPSTREAM_MODEL", "")
	t.Setenv("UPSTREAM_API_KEY", "")
	t.Setenv("UPSTREAM_TIMEOUT", "")

	cfg, err := loadUpstreamConfig()
	if err != nil {
		t.Fatalf("loadUpstreamConfig err: %v", err)
	}
	if cfg.BaseURL != "https://api.openai.com/v1" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Model == "" {
		t.Fatal("Model default missing")
	}
	if cfg.APIKey != "" {
		t.Fatalf("APIKey = %q, want empty", cfg.APIKey)
	}
}

func TestLoadUpstreamConfigTrimsTrailingSlash(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "https://example.test/v1/")

	cfg, err := loadUpstreamConfig()
	if err != nil {
		t.Fatalf("loadUpstreamConfig err: %v", err)
	}
	if cfg.BaseURL != "https://example.test/v1" {
		t.Fatalf("BaseURL = %q, want trailing slash trimmed", cfg.BaseURL)
	}
}

func TestLoadUpstreamConfigInvalidTimeout(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "zero")
	if _, err := loadUpstreamConfig(); err == nil {
		t.Fatal("expected error for non-numeric UPSTREAM_TIMEOUT")
	}

	t.Setenv("UPSTREAM_TIMEOUT", "0")
	if _, err := loadUpstreamConfig(); err == nil {
		t.Fatal("expected error for non-positive UPSTREAM_TIMEOUT")
	}
}
