package lxc

import (
	"errors"
	"testing"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		opts CreateOptions
		want string
	}{
		{
			name: "minimal",
			opts: CreateOptions{
				Name:  "web",
				Image: Image{Distro: "alpine", Release: "3.19", Arch: "amd64"},
			},
			want: "lxc-create --name=web --template=download -- --dist=alpine --release=3.19 --arch=amd64",
		},
		{
			name: "with config",
			opts: CreateOptions{
				Name:   "web",
				Image:  Image{Distro: "alpine", Release: "3.19", Arch: "amd64"},
				Config: "/etc/lxc/default.conf",
			},
			want: "lxc-create --name=web --template=download --config=/etc/lxc/default.conf -- --dist=alpine --release=3.19 --arch=amd64",
		},
		{
			name: "with dir",
			opts: CreateOptions{
				Name:  "web",
				Image: Image{Distro: "debian", Release: "bookworm", Arch: "arm64"},
				Dir:   "/srv/web/rootfs",
			},
			want: "lxc-create --name=web --template=download --bdev=dir --dir=/srv/web/rootfs -- --dist=debian --release=bookworm --arch=arm64",
		},
		{
			name: "with network",
			opts: CreateOptions{
				Name:    "web",
				Image:   Image{Distro: "alpine", Release: "3.19", Arch: "amd64"},
				Network: "lxcbr0",
			},
			want: "lxc-create --name=web --template=download -- --dist=alpine --release=3.19 --arch=amd64 --network=lxcbr0",
		},
		{
			name: "with globals",
			opts: CreateOptions{
				Name:    "web",
				Image:   Image{Distro: "alpine", Release: "3.19", Arch: "amd64"},
				Globals: Globals{LogFile: "/tmp/lxc.log", LogPriority: "DEBUG", LXCPath: "/srv/lxc"},
			},
			want: "lxc-create --name=web --template=download --logfile=/tmp/lxc.log --logpriority=DEBUG --lxcpath=/srv/lxc -- --dist=alpine --release=3.19 --arch=amd64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Create(tt.opts); got != tt.want {
				t.Errorf("Create() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDestroy(t *testing.T) {
	tests := []struct {
		name string
		opts DestroyOptions
		want string
	}{
		{
			name: "minimal",
			opts: DestroyOptions{Name: "web"},
			want: "lxc-destroy --name=web",
		},
		{
			name: "force with snapshots",
			opts: DestroyOptions{Name: "web", Force: true, Snapshots: true},
			want: "lxc-destroy --name=web --force --snapshots",
		},
		{
			name: "with rcfile and globals",
			opts: DestroyOptions{
				Name:    "web",
				RCFile:  "/etc/lxc/web.conf",
				Globals: Globals{LXCPath: "/srv/lxc"},
			},
			want: "lxc-destroy --name=web --rcfile=/etc/lxc/web.conf --lxcpath=/srv/lxc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Destroy(tt.opts); got != tt.want {
				t.Errorf("Destroy() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStart(t *testing.T) {
	tests := []struct {
		name string
		opts StartOptions
		want string
	}{
		{
			name: "daemon",
			opts: StartOptions{Name: "web", Daemon: true},
			want: "lxc-start --name=web --daemon",
		},
		{
			name: "foreground overrides daemon",
			opts: StartOptions{Name: "web", Daemon: true, Foreground: true},
			want: "lxc-start --name=web --foreground",
		},
		{
			name: "all options",
			opts: StartOptions{
				Name:       "web",
				Daemon:     true,
				PIDFile:    "/run/web.pid",
				RCFile:     "/etc/lxc/web.conf",
				ConsoleLog: "/var/log/web.log",
				ShareNet:   "db",
			},
			want: "lxc-start --name=web --daemon --pidfile=/run/web.pid --rcfile=/etc/lxc/web.conf --console-log=/var/log/web.log --share-net=db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Start(tt.opts); got != tt.want {
				t.Errorf("Start() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStop(t *testing.T) {
	tests := []struct {
		name string
		opts StopOptions
		want string
	}{
		{
			name: "minimal",
			opts: StopOptions{Name: "web"},
			want: "lxc-stop --name=web",
		},
		{
			name: "kill with timeout",
			opts: StopOptions{Name: "web", Timeout: 15, Kill: true},
			want: "lxc-stop --name=web --timeout=15 --kill",
		},
		{
			name: "reboot nowait",
			opts: StopOptions{Name: "web", Reboot: true, NoWait: true},
			want: "lxc-stop --name=web --reboot --nowait",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stop(tt.opts); got != tt.want {
				t.Errorf("Stop() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttach(t *testing.T) {
	tests := []struct {
		name string
		opts AttachOptions
		want string
	}{
		{
			name: "minimal",
			opts: AttachOptions{Name: "web", Command: "echo hi"},
			want: "lxc-attach --name=web -- echo hi",
		},
		{
			name: "with uid gid and arch",
			opts: AttachOptions{Name: "web", Command: "id", UID: 1000, GID: 1000, Arch: "i686"},
			want: "lxc-attach --name=web --uid=1000 --gid=1000 --arch=i686 -- id",
		},
		{
			name: "clear env with globals",
			opts: AttachOptions{
				Name:     "web",
				Command:  "env",
				ClearEnv: true,
				Globals:  Globals{LogPriority: "INFO"},
			},
			want: "lxc-attach --name=web --clear-env --logpriority=INFO -- env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Attach(tt.opts); got != tt.want {
				t.Errorf("Attach() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want string
	}{
		{
			name: "bare",
			opts: ListOptions{},
			want: "lxc-ls",
		},
		{
			name: "fancy running",
			opts: ListOptions{Fancy: true, Running: true},
			want: "lxc-ls --fancy --running",
		},
		{
			name: "filter and groups",
			opts: ListOptions{Line: true, Filter: "^web", Groups: []string{"a", "b"}},
			want: "lxc-ls --line --filter=^web --groups=a,b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := List(tt.opts); got != tt.want {
				t.Errorf("List() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCopy(t *testing.T) {
	tests := []struct {
		name string
		opts CopyOptions
		want string
	}{
		{
			name: "plain",
			opts: CopyOptions{Source: "/src/app", Dest: "/var/lib/lxc/web/rootfs/opt/app"},
			want: "cp --recursive /src/app /var/lib/lxc/web/rootfs/opt/app",
		},
		{
			name: "archive dereference",
			opts: CopyOptions{Source: "/a", Dest: "/b", Archive: true, FollowLink: true},
			want: "cp --recursive --archive --dereference /a /b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Copy(tt.opts); got != tt.want {
				t.Errorf("Copy() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigQuery(t *testing.T) {
	got := ConfigQuery("web", "lxc.rootfs.path", Globals{LXCPath: "/srv/lxc"})
	want := "lxc-info --name=web --config=lxc.rootfs.path --lxcpath=/srv/lxc"
	if got != want {
		t.Errorf("ConfigQuery() = %q, want %q", got, want)
	}
}

func TestCgroupSet(t *testing.T) {
	got := CgroupSet("web", "cpuset.cpus", "0,3", Globals{})
	want := "lxc-cgroup --name=web cpuset.cpus 0,3"
	if got != want {
		t.Errorf("CgroupSet() = %q, want %q", got, want)
	}
}

func TestInfo(t *testing.T) {
	got := Info(InfoOptions{Name: "web", IPs: true, PID: true, Stats: true, NoHumanize: true, State: true})
	want := "lxc-info --name=web --ips --pid --stats --no-humanize --state"
	if got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestParseImage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Image
		wantErr bool
	}{
		{
			name:  "valid",
			input: "alpine:3.19:amd64",
			want:  Image{Distro: "alpine", Release: "3.19", Arch: "amd64"},
		},
		{
			name:    "too few parts",
			input:   "alpine:3.19",
			wantErr: true,
		},
		{
			name:    "too many parts",
			input:   "alpine:3.19:amd64:extra",
			wantErr: true,
		},
		{
			name:    "empty part",
			input:   "alpine::amd64",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseImage(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrImage) {
					t.Fatalf("error = %v, want ErrImage", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseImage() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
