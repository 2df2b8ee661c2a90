package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RankFile != ".obinexus-rank" {
		t.Errorf("RankFile = %q", cfg.RankFile)
	}
	if cfg.Verify.Threshold != 0.954 {
		t.Errorf("Verify.Threshold = %v", cfg.Verify.Threshold)
	}
	if len(cfg.Dispatch.Platforms) != 4 {
		t.Errorf("Platforms = %v", cfg.Dispatch.Platforms)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmuoko.yaml")
	raw := `
rank_file: /var/lib/mmuoko/rank
verify:
  enabled: true
  addr: phantomid:9000
dispatch:
  timeout: 3s
  platforms:
    - name: youtube
      kind: webhook
      endpoint: http://ingest.local/youtube
    - name: tiktok
      seed: 99
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RankFile != "/var/lib/mmuoko/rank" {
		t.Errorf("RankFile = %q", cfg.RankFile)
	}
	if cfg.EngagementFile != ".obinexus-engagement" {
		t.Errorf("EngagementFile = %q, should keep default", cfg.EngagementFile)
	}
	if !cfg.Verify.Enabled || cfg.Verify.Addr != "phantomid:9000" {
		t.Errorf("Verify = %+v", cfg.Verify)
	}
	if cfg.Verify.Threshold != 0.954 {
		t.Errorf("Verify.Threshold = %v, should keep default", cfg.Verify.Threshold)
	}
	if cfg.DispatchTimeout() != 3*time.Second {
		t.Errorf("DispatchTimeout = %v", cfg.DispatchTimeout())
	}
	if len(cfg.Dispatch.Platforms) != 2 {
		t.Fatalf("Platforms = %+v", cfg.Dispatch.Platforms)
	}
	if p := cfg.Dispatch.Platforms[0]; p.Kind != "webhook" || p.Endpoint != "http://ingest.local/youtube" {
		t.Errorf("platform[0] = %+v", p)
	}
	if p := cfg.Dispatch.Platforms[1]; p.Seed != 99 {
		t.Errorf("platform[1] = %+v", p)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmuoko.yaml")
	if err := os.WriteFile(path, []byte("rank_file: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load should reject malformed YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MMUOKO_RANK_FILE", "/tmp/rank-override")
	t.Setenv("MMUOKO_VERIFY_ENABLED", "true")
	t.Setenv("MMUOKO_VERIFY_THRESHOLD", "0.97")
	t.Setenv("MMUOKO_DISPATCH_TIMEOUT", "1s")

	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RankFile != "/tmp/rank-override" {
		t.Errorf("RankFile = %q", cfg.RankFile)
	}
	if !cfg.Verify.Enabled {
		t.Errorf("Verify.Enabled should be overridden to true")
	}
	if cfg.Verify.Threshold != 0.97 {
		t.Errorf("Verify.Threshold = %v", cfg.Verify.Threshold)
	}
	if cfg.DispatchTimeout() != time.Second {
		t.Errorf("DispatchTimeout = %v", cfg.DispatchTimeout())
	}
}

func TestEnvOverrideIgnoresInvalidValues(t *testing.T) {
	t.Setenv("MMUOKO_VERIFY_THRESHOLD", "not-a-number")
	t.Setenv("MMUOKO_VERIFY_ENABLED", "maybe")

	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Verify.Threshold != 0.954 {
		t.Errorf("Threshold = %v, should keep default on bad input", cfg.Verify.Threshold)
	}
	if cfg.Verify.Enabled {
		t.Errorf("Enabled should keep default on bad input")
	}
}

func TestDurationFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dispatch.Timeout = "garbage"
	cfg.Verify.Timeout = ""
	cfg.Monitor.Interval = "-5s"

	if got := cfg.DispatchTimeout(); got != DefaultDispatchTimeout {
		t.Errorf("DispatchTimeout = %v", got)
	}
	if got := cfg.VerifyTimeout(); got != DefaultVerifyTimeout {
		t.Errorf("VerifyTimeout = %v", got)
	}
	if got := cfg.MonitorInterval(); got != DefaultMonitorInterval {
		t.Errorf("MonitorInterval = %v", got)
	}
}
