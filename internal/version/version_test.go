package version

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")

	if info.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", info.Version, "1.0.0")
	}
	if info.Commit != "abc123" {
		t.Errorf("Commit = %q, want %q", info.Commit, "abc123")
	}
	if info.Date != "2024-01-01" {
		t.Errorf("Date = %q, want %q", info.Date, "2024-01-01")
	}
	if info.GoVer == "" {
		t.Error("GoVer should not be empty")
	}
	if info.OS == "" {
		t.Error("OS should not be empty")
	}
	if info.Arch == "" {
		t.Error("Arch should not be empty")
	}
}

func TestNewInfoDevKeepsValue(t *testing.T) {
	// Test binaries carry no module version, so "dev" stays.
	info := NewInfo("dev", "none", "unknown")
	if info.Version == "" {
		t.Error("Version should not be empty")
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")
	s := info.String()

	if s != "profilecard 1.0.0 (commit: abc123, built: 2024-01-01)" {
		t.Errorf("String() = %q, unexpected format", s)
	}
}

func TestInfoFullString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")
	s := info.FullString()

	for _, want := range []string{"profilecard 1.0.0", "abc123", "2024-01-01", info.GoVer} {
		if !strings.Contains(s, want) {
			t.Errorf("FullString() missing %q:\n%s", want, s)
		}
	}
}

func TestInfoJSON(t *testing.T) {
	info := NewInfo("1.2.3", "abc", "today")
	s, err := info.JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var decoded Info
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		t.Fatalf("JSON() produced invalid JSON: %v", err)
	}
	if decoded.Version != "1.2.3" || decoded.Commit != "abc" {
		t.Errorf("decoded = %+v", decoded)
	}
	if !strings.Contains(s, `"go_version"`) {
		t.Error("JSON should use snake_case keys")
	}
}
