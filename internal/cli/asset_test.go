package cli

import (
	"testing"

	"github.com/example/fleet/internal/config"
)

func TestResolveSite_FlagWins(t *testing.T) {
	t.Setenv("FLEET_HOME", t.TempDir())

	if err := config.SaveConfig(&config.Config{Version: "1", DefaultSite: "Depot North"}); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	if got := resolveSite("Quarry B"); got != "Quarry B" {
		t.Errorf("Expected flag value to win, got %q", got)
	}
}

func TestResolveSite_FallsBackToConfig(t *testing.T) {
	t.Setenv("FLEET_HOME", t.TempDir())

	if err := config.SaveConfig(&config.Config{Version: "1", DefaultSite: "Depot North"}); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	if got := resolveSite(""); got != "Depot North" {
		t.Errorf("Expected configured default site, got %q", got)
	}
}

func TestResolveSite_NoConfig(t *testing.T) {
	t.Setenv("FLEET_HOME", t.TempDir())

	if got := resolveSite(""); got != "" {
		t.Errorf("Expected empty site without config, got %q", got)
	}
}
