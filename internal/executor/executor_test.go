package executor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ZeroDread/nudge/internal/catalog"
)

func shellCmd(invocation string) catalog.Command {
	return catalog.Command{Name: "test", Invocation: invocation, Kind: catalog.Shell}
}

func TestExecuteEcho(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	e := &Executor{Shell: "sh", Stdout: &out}
	if err := e.Execute(ctx, shellCmd("true && echo hello")); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out.String(), "hello") {
		t.Fatalf("expected 'hello' in stdout, got: %q", out.String())
	}
}

func TestExecuteFailCapturesStderr(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	e := &Executor{Shell: "sh"}
	err := e.Execute(ctx, shellCmd("echo boom >&2; exit 3"))
	if err == nil {
		t.Fatalf("expected error for failing command")
	}
	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CommandError, got %T: %v", err, err)
	}
	if ce.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", ce.ExitCode)
	}
	if !strings.Contains(ce.Stderr, "boom") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected captured stderr in error, got %q", err.Error())
	}
}

func TestExecuteFailWithoutStderrHasCause(t *testing.T) {
	e := &Executor{Shell: "sh"}
	err := e.Execute(context.Background(), shellCmd("exit 2"))
	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CommandError, got %v", err)
	}
	if ce.Cause() == "" || !strings.Contains(ce.Cause(), "2") {
		t.Fatalf("expected non-empty cause mentioning the exit status, got %q", ce.Cause())
	}
}

func TestExecuteInvalidUTF8Stderr(t *testing.T) {
	e := &Executor{Shell: "sh"}
	err := e.Execute(context.Background(), shellCmd(`printf '\377bad' >&2; exit 1`))
	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CommandError, got %v", err)
	}
	if !strings.Contains(ce.Stderr, "�") || !strings.Contains(ce.Stderr, "bad") {
		t.Fatalf("expected replacement character in stderr, got %q", ce.Stderr)
	}
}

func TestExecuteTeesStderr(t *testing.T) {
	var errb bytes.Buffer
	e := &Executor{Shell: "sh", Stderr: &errb}
	if err := e.Execute(context.Background(), shellCmd("echo warn >&2")); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(errb.String(), "warn") {
		t.Fatalf("expected stderr to be mirrored, got %q", errb.String())
	}
}

func TestExecuteShellNotFound(t *testing.T) {
	e := &Executor{Shell: "nudge-no-such-shell"}
	err := e.Execute(context.Background(), shellCmd("true"))
	if err == nil || !strings.Contains(err.Error(), "shell not found") {
		t.Fatalf("expected shell not found error, got %v", err)
	}
}

func TestDryRun(t *testing.T) {
	var out bytes.Buffer
	e := &Executor{DryRun: true, Stdout: &out, Shell: "nudge-no-such-shell"}
	if err := e.Execute(context.Background(), shellCmd("echo hi && exit 1")); err != nil {
		t.Fatalf("dry-run should not error: %v", err)
	}
	if !strings.Contains(out.String(), "dry-run:") || !strings.Contains(out.String(), "echo hi") {
		t.Fatalf("expected dry-run message, got: %q", out.String())
	}
}

func TestDryRunCustom(t *testing.T) {
	called := false
	var out bytes.Buffer
	e := &Executor{DryRun: true, Stdout: &out, Registry: Registry{
		"sync": func(context.Context) error { called = true; return nil },
	}}
	cmd := catalog.Command{Name: "sync", Invocation: "sync", Kind: catalog.Custom}
	if err := e.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("dry-run should not error: %v", err)
	}
	if called {
		t.Fatalf("routine must not run in dry-run")
	}
	if !strings.Contains(out.String(), "dry-run: custom sync") {
		t.Fatalf("unexpected dry-run output %q", out.String())
	}
	cmd.Invocation = "missing"
	if err := e.Execute(context.Background(), cmd); !errors.Is(err, ErrUnknownCustomCommand) {
		t.Fatalf("unknown key should fail in dry-run too, got %v", err)
	}
}

func TestExecuteUnknownCustom(t *testing.T) {
	fr := &fakeRunner{}
	site := NewSiteRepo(fr, nil)
	e := New(DefaultRegistry(site), nil)
	e.Shell = "nudge-no-such-shell"

	err := e.Execute(context.Background(), catalog.Command{Name: "x", Invocation: "not_a_real_command", Kind: catalog.Custom})
	if !errors.Is(err, ErrUnknownCustomCommand) {
		t.Fatalf("expected ErrUnknownCustomCommand, got %v", err)
	}
	var ue *UnknownCustomCommandError
	if !errors.As(err, &ue) || ue.Key != "not_a_real_command" {
		t.Fatalf("expected error naming the key, got %v", err)
	}
	if !strings.Contains(err.Error(), "not_a_real_command") {
		t.Fatalf("error should name the key: %q", err.Error())
	}
	if len(fr.calls) != 0 {
		t.Fatalf("no process should be started, got %v", fr.calls)
	}
}

func TestExecuteCustomPropagatesError(t *testing.T) {
	sentinel := errors.New("routine failed")
	e := &Executor{Registry: Registry{"r": func(context.Context) error { return sentinel }}}
	err := e.Execute(context.Background(), catalog.Command{Name: "r", Invocation: "r", Kind: catalog.Custom})
	if err != sentinel {
		t.Fatalf("expected routine error unchanged, got %v", err)
	}
}

func TestExecuteUnsupportedKind(t *testing.T) {
	e := &Executor{}
	if err := e.Execute(context.Background(), catalog.Command{Name: "odd", Kind: catalog.Kind(9)}); err == nil {
		t.Fatalf("expected error for unsupported kind")
	}
}

func TestRegistryKnown(t *testing.T) {
	r := DefaultRegistry(NewSiteRepo(&fakeRunner{}, nil))
	if !r.Known(SiteRepoKey) || r.Known("nope") {
		t.Fatalf("unexpected Known results")
	}
	if keys := r.Keys(); len(keys) != 1 || keys[0] != SiteRepoKey {
		t.Fatalf("expected exactly one registered routine, got %v", keys)
	}
}

func TestExecProcessRunner(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	r := &ExecProcessRunner{Stdout: &out}
	if err := r.Run(context.Background(), dir, "sh", "-c", "pwd"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !samePath(t, strings.TrimSpace(out.String()), dir) {
		t.Fatalf("expected command to run in %s, got %q", dir, out.String())
	}
	err := r.Run(context.Background(), dir, "sh", "-c", "echo nope >&2; exit 1")
	var ce *CommandError
	if !errors.As(err, &ce) || !strings.Contains(ce.Command, "sh -c") {
		t.Fatalf("expected CommandError naming the command, got %v", err)
	}
}
