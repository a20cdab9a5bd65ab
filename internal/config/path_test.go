package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home dir: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty stays empty", in: "", want: ""},
		{name: "tilde prefix", in: "~/tickets.db", want: filepath.Join(home, "tickets.db")},
		{name: "bare tilde", in: "~", want: home},
		{name: "absolute untouched", in: "/var/lib/tickets.db", want: "/var/lib/tickets.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandPath_EnvVars(t *testing.T) {
	t.Setenv("TICKETSCAN_TEST_DIR", "/tmp/ts")
	if got := ExpandPath("$TICKETSCAN_TEST_DIR/tickets.db"); got != "/tmp/ts/tickets.db" {
		t.Errorf("ExpandPath with env var = %q", got)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path := DefaultDBPath()
	if !strings.HasSuffix(path, filepath.Join("ticketscan", "tickets.db")) {
		t.Errorf("DefaultDBPath() = %q, want it under a ticketscan directory", path)
	}
}
