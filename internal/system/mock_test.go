package system

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMockRunner_Run(t *testing.T) {
	runner := NewMockRunner()
	runner.AddResponse("webpack", []byte("compiled\n"), nil)

	var out bytes.Buffer
	err := runner.Run(context.Background(), Command{
		Argv:   []string{"webpack", "--config", "cfg.json"},
		Dir:    "/work/app",
		Stdout: &out,
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out.String() != "compiled\n" {
		t.Errorf("Output = %q, want %q", out.String(), "compiled\n")
	}

	cmd, ok := runner.LastCommand()
	if !ok {
		t.Fatal("No command recorded")
	}
	if cmd.Dir != "/work/app" || cmd.Argv[2] != "cfg.json" {
		t.Errorf("recorded command = %+v", cmd)
	}
}

func TestMockRunner_Errors(t *testing.T) {
	runner := NewMockRunner()
	failed := errors.New("exit status 2")
	runner.AddResponse("webpack", nil, failed)

	if err := runner.Run(context.Background(), Command{Argv: []string{"webpack"}}); err != failed {
		t.Errorf("Run error = %v, want %v", err, failed)
	}
	if err := runner.Run(context.Background(), Command{}); err == nil {
		t.Error("empty command should fail")
	}
	if len(runner.Commands) != 1 {
		t.Errorf("Commands length = %d, want 1", len(runner.Commands))
	}
}

func TestMockRunner_Reset(t *testing.T) {
	runner := NewMockRunner()
	runner.Run(context.Background(), Command{Argv: []string{"cmd1"}})
	runner.Run(context.Background(), Command{Argv: []string{"cmd2"}})

	if len(runner.Commands) != 2 {
		t.Errorf("Commands length = %d, want 2", len(runner.Commands))
	}

	runner.Reset()

	if len(runner.Commands) != 0 {
		t.Errorf("Commands length after reset = %d, want 0", len(runner.Commands))
	}
}

func TestEnviron(t *testing.T) {
	base := []string{"PATH=/bin", "NODE_ENV=test"}
	env := Environ(base, map[string]string{"NODE_ENV": "production", "PACKCFG_MODE": "production"})

	joined := strings.Join(env, " ")
	if strings.Contains(joined, "NODE_ENV=production") {
		t.Errorf("existing variables should be kept: %v", env)
	}
	if !strings.Contains(joined, "PACKCFG_MODE=production") {
		t.Errorf("missing variables should be added: %v", env)
	}
	if len(base) != 2 {
		t.Errorf("base was modified: %v", base)
	}
}

func TestOSRunner_Run(t *testing.T) {
	r := &osRunner{}
	if err := r.Run(context.Background(), Command{Argv: []string{"true"}}); err != nil {
		t.Errorf("true failed: %v", err)
	}
	if err := r.Run(context.Background(), Command{Argv: []string{"false"}}); err == nil {
		t.Error("false should fail")
	}
}
