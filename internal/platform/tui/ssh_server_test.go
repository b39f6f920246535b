package tui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-airhockey/internal/match"
)

func TestNewSSHServerRejectsInvalidTable(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Constants.GoalWidth = 0

	if _, err := NewSSHServer(cfg); !errors.Is(err, match.ErrInvalidConstants) {
		t.Errorf("NewSSHServer() error = %v, expected ErrInvalidConstants", err)
	}
}

func TestSSHSessionOptions(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.DBPath = filepath.Join(dir, "history.db")
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.Rules = "marathon"

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	defer srv.store.Close()

	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}

	opts := srv.sessionOptions("alice")
	if opts.Source != "ssh" || opts.Rules != "marathon" {
		t.Errorf("session options = %+v", opts)
	}
	if opts.Recorder == nil || opts.Logger == nil {
		t.Error("sessions should record history and log")
	}
}

func TestSSHSessionOptionsWithoutStore(t *testing.T) {
	srv := &SSHServer{config: DefaultSSHServerConfig(), logger: newTestLogger()}

	if opts := srv.sessionOptions("bob"); opts.Recorder != nil {
		t.Error("a server without storage must not hand out a recorder")
	}
}
