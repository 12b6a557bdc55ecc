// Package system runs external processes behind an interface so commands
// can be tested without spawning them.
package system

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command describes a process to run.
type Command struct {
	Argv []string
	Dir  string
	// Env is added to the current environment. Variables already set in the
	// environment are kept.
	Env    map[string]string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner runs processes to completion.
type Runner interface {
	Run(ctx context.Context, c Command) error
}

var defaultRunner Runner = &osRunner{}

// DefaultRunner returns the Runner used by commands.
func DefaultRunner() Runner {
	return defaultRunner
}

// SetDefaultRunner sets the default Runner (useful for testing).
func SetDefaultRunner(r Runner) {
	defaultRunner = r
}

// ResetDefaults restores the OS implementation.
func ResetDefaults() {
	defaultRunner = &osRunner{}
}

// osRunner implements Runner with os/exec.
type osRunner struct{}

func (r *osRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...)
	cmd.Dir = c.Dir
	cmd.Env = Environ(os.Environ(), c.Env)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	return cmd.Run()
}

// Environ returns base with the variables from extra that base does not
// already define.
func Environ(base []string, extra map[string]string) []string {
	env := append([]string(nil), base...)
	for key, value := range extra {
		if hasVar(base, key) {
			continue
		}
		env = append(env, key+"="+value)
	}
	return env
}

func hasVar(env []string, key string) bool {
	prefix := key + "="
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			return true
		}
	}
	return false
}
