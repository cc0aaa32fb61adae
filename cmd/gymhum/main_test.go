package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/naveenspark/gymhum/internal/store"
	"github.com/naveenspark/gymhum/pkg/client"
	"github.com/naveenspark/gymhum/pkg/domain"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(envFrom(nil))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIURL != client.DefaultBaseURL {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if filepath.Base(cfg.DataDir) != ".gymhum" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	cfg, err := loadConfig(envFrom(map[string]string{
		"GYMHUM_API_URL":   "http://localhost:9999/api",
		"GYMHUM_DATA_DIR":  "/tmp/gh",
		"GYMHUM_LOG_LEVEL": "debug",
	}))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIURL != "http://localhost:9999/api" || cfg.DataDir != "/tmp/gh" || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"version"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "gymhum dev") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunHelp(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"help"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"gymhum reset", "gymhum cart", "GYMHUM_DATA_DIR"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if err := run([]string{"dance"}, &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestCartAndReset(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GYMHUM_DATA_DIR", dir)

	st := store.New(store.NewFileMedium(dir), zaptest.NewLogger(t))
	cart := []domain.CartItem{
		{ID: "p1", Name: "Yoga Mat", Price: "$29.99"},
		{ID: "p2", Name: "Kettlebell", Price: "$45"},
	}
	if err := st.SaveCart(cart); err != nil {
		t.Fatalf("SaveCart: %v", err)
	}
	if err := st.SaveProfile(domain.NewProfileRecord()); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	var out bytes.Buffer
	if err := run([]string{"cart"}, &out); err != nil {
		t.Fatalf("run cart: %v", err)
	}
	for _, want := range []string{"Cart (2)", "Yoga Mat", "$74.99"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("cart output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := run([]string{"reset"}, &out); err != nil {
		t.Fatalf("run reset: %v", err)
	}
	for _, name := range []string{"cart.json", "profile.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s still exists after reset (err=%v)", name, err)
		}
	}

	// Reset is idempotent.
	if err := run([]string{"reset"}, &out); err != nil {
		t.Errorf("second reset: %v", err)
	}

	out.Reset()
	run([]string{"cart"}, &out) //nolint:errcheck
	if !strings.Contains(out.String(), "Your cart is empty.") {
		t.Errorf("cart after reset:\n%s", out.String())
	}
}
