package lxc

import (
	"context"
	"errors"
	"testing"
)

// Runner that serves canned output without spawning processes.
type fakeRunner struct {
	output string
	err    error
	asked  []string
}

func (f *fakeRunner) Run(ctx context.Context, cmdline string) error {
	f.asked = append(f.asked, cmdline)
	return f.err
}

func (f *fakeRunner) Output(ctx context.Context, cmdline string) (string, error) {
	f.asked = append(f.asked, cmdline)
	return f.output, f.err
}

func TestParseRootfs(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{
			name: "dir prefix",
			out:  "lxc.rootfs.path = dir:/var/lib/lxc/web/rootfs\n",
			want: "/var/lib/lxc/web/rootfs",
		},
		{
			name: "plain path",
			out:  "lxc.rootfs.path = /var/lib/lxc/web/rootfs\n",
			want: "/var/lib/lxc/web/rootfs",
		},
		{
			name: "leading blank line",
			out:  "\nlxc.rootfs.path = dir:/srv/lxc/db/rootfs\n",
			want: "/srv/lxc/db/rootfs",
		},
		{
			name: "empty value",
			out:  "lxc.rootfs.path =\n",
			want: "",
		},
		{
			name: "no output",
			out:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseRootfs(tt.out); got != tt.want {
				t.Errorf("parseRootfs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		instance string
		rel      string
		ok       bool
	}{
		{
			name:     "instance and path",
			input:    "web:opt/app",
			instance: "web",
			rel:      "opt/app",
			ok:       true,
		},
		{
			name:     "instance and absolute path",
			input:    "web:/opt/app",
			instance: "web",
			rel:      "/opt/app",
			ok:       true,
		},
		{
			name:  "no separator",
			input: "/opt/app",
		},
		{
			name:  "separator at start",
			input: ":/opt/app",
		},
		{
			name:  "slash before separator",
			input: "/srv/web:cache",
		},
		{
			name:  "empty string",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instance, rel, ok := SplitLocation(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if instance != tt.instance {
				t.Errorf("instance = %q, want %q", instance, tt.instance)
			}
			if rel != tt.rel {
				t.Errorf("rel = %q, want %q", rel, tt.rel)
			}
		})
	}
}

func TestResolverRootfs(t *testing.T) {
	t.Run("running instance", func(t *testing.T) {
		runner := &fakeRunner{output: "lxc.rootfs.path = dir:/var/lib/lxc/web/rootfs\n"}
		r := NewResolver(runner, Globals{})

		got, err := r.Rootfs(context.Background(), "web")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "/var/lib/lxc/web/rootfs"; got != want {
			t.Errorf("Rootfs() = %q, want %q", got, want)
		}
		if len(runner.asked) != 1 || runner.asked[0] != "lxc-info --name=web --config=lxc.rootfs.path" {
			t.Errorf("query = %q", runner.asked)
		}
	})

	t.Run("unknown instance", func(t *testing.T) {
		runner := &fakeRunner{err: errors.New("exit status 1")}
		r := NewResolver(runner, Globals{})

		_, err := r.Rootfs(context.Background(), "ghost")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("stopped instance", func(t *testing.T) {
		runner := &fakeRunner{output: "lxc.rootfs.path =\n"}
		r := NewResolver(runner, Globals{})

		_, err := r.Rootfs(context.Background(), "web")
		if !errors.Is(err, ErrNotRunning) {
			t.Fatalf("error = %v, want ErrNotRunning", err)
		}
	})
}

func TestResolverLocation(t *testing.T) {
	t.Run("bare path returned verbatim", func(t *testing.T) {
		runner := &fakeRunner{}
		r := NewResolver(runner, Globals{})

		got, err := r.Location(context.Background(), "/opt/app")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "/opt/app" {
			t.Errorf("Location() = %q, want %q", got, "/opt/app")
		}
		if len(runner.asked) != 0 {
			t.Errorf("ran %d queries, want 0", len(runner.asked))
		}
	})

	t.Run("instance location joined with rootfs", func(t *testing.T) {
		runner := &fakeRunner{output: "lxc.rootfs.path = dir:/var/lib/lxc/web/rootfs\n"}
		r := NewResolver(runner, Globals{})

		got, err := r.Location(context.Background(), "web:opt/app")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "/var/lib/lxc/web/rootfs/opt/app"; got != want {
			t.Errorf("Location() = %q, want %q", got, want)
		}
	})

	t.Run("query failure propagates", func(t *testing.T) {
		runner := &fakeRunner{err: errors.New("exit status 1")}
		r := NewResolver(runner, Globals{})

		_, err := r.Location(context.Background(), "ghost:opt/app")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})
}
