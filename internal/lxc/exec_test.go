package lxc

import (
	"context"
	"errors"
	"testing"
)

func TestRunnerRun(t *testing.T) {
	r := NewRunner(Verbosity{})

	if err := r.Run(context.Background(), "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := r.Run(context.Background(), "false"); !errors.Is(err, ErrExec) {
		t.Fatalf("error = %v, want ErrExec", err)
	}
}

func TestRunnerOutput(t *testing.T) {
	r := NewRunner(Verbosity{})

	out, err := r.Output(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello\n" {
		t.Errorf("Output() = %q, want %q", out, "hello\n")
	}
}

func TestRunnerErrors(t *testing.T) {
	r := NewRunner(Verbosity{})

	tests := []struct {
		name    string
		cmdline string
	}{
		{name: "missing binary", cmdline: "definitely-not-a-real-binary-xyz"},
		{name: "unterminated quote", cmdline: `echo "oops`},
		{name: "empty command line", cmdline: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Run(context.Background(), tt.cmdline); !errors.Is(err, ErrExec) {
				t.Fatalf("error = %v, want ErrExec", err)
			}
		})
	}
}
