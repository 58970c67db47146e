package build

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"cmt/internal/lxc"
	"cmt/internal/manifest"
	"cmt/internal/paths"
)

// Holds shared state for executing the steps of one build.
type provisioner struct {
	runner   lxc.Runner
	resolver *lxc.Resolver
	m        *manifest.Manifest
	lxcPath  string
	globals  lxc.Globals
}

// Dispatches a single step to its execution.
func (p *provisioner) execute(ctx context.Context, step Step) error {
	switch step.Kind {
	case Create:
		return p.create(ctx)
	case WriteEntrypoint:
		return p.writeEntrypoint()
	case Start:
		return p.start(ctx)
	case Copy:
		return p.copy(ctx, step)
	case Mount:
		return p.mount(step)
	case Restart:
		return p.restart(ctx)
	case RunCmd:
		return p.run(ctx, step)
	case SetLimit:
		return p.setLimit(ctx, step)
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
}

func (p *provisioner) create(ctx context.Context) error {
	slog.Info("creating instance", "name", p.m.Name)
	return p.runner.Run(ctx, lxc.Create(lxc.CreateOptions{
		Name: p.m.Name,
		Image: lxc.Image{
			Distro:  p.m.Image.Distro,
			Release: p.m.Image.Release,
			Arch:    p.m.Image.Arch,
		},
		Config:  p.m.Image.Config,
		Dir:     p.m.Image.Dir,
		Network: p.m.Image.Network,
		Globals: p.globals,
	}))
}

// Rootfs directory for filesystem phases: the manifest override when given,
// the default layout otherwise.
func (p *provisioner) rootfsDir() string {
	if p.m.Image.Dir != "" {
		return p.m.Image.Dir
	}
	return paths.RootfsDir(p.lxcPath, p.m.Name)
}

// Materializes the entrypoint script under the rootfs's /etc/profile.d.
//
// The file is created exclusively: a script left behind by an earlier build
// is an error, never overwritten. The script gets a shebang line followed
// by the manifest's entrypoint body and is executable by all with no write
// bit.
func (p *provisioner) writeEntrypoint() error {
	target := paths.EntrypointPath(p.rootfsDir())
	slog.Debug("writing entrypoint", "path", target)

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, paths.EntrypointMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}

	_, werr := fmt.Fprintf(f, "#!/bin/sh\n%s", p.m.Entrypoint)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, werr)
	}

	// O_CREATE applies the umask; force the final mode.
	if err := os.Chmod(target, paths.EntrypointMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}
	return nil
}

func (p *provisioner) start(ctx context.Context) error {
	return p.runner.Run(ctx, lxc.Start(lxc.StartOptions{
		Name:    p.m.Name,
		Daemon:  true,
		Globals: p.globals,
	}))
}

// Stops and starts the instance so configuration changes take effect.
func (p *provisioner) restart(ctx context.Context) error {
	if err := p.runner.Run(ctx, lxc.Stop(lxc.StopOptions{Name: p.m.Name, Globals: p.globals})); err != nil {
		return err
	}
	return p.start(ctx)
}

// Resolves both locations and runs the recursive copy command.
func (p *provisioner) copy(ctx context.Context, step Step) error {
	src, err := p.location(ctx, step.Source)
	if err != nil {
		return err
	}
	dest, err := p.location(ctx, step.Dest)
	if err != nil {
		return err
	}

	slog.Info("copying", "source", step.Source, "dest", step.Dest)
	return p.runner.Run(ctx, lxc.Copy(lxc.CopyOptions{
		Source:     src,
		Dest:       dest,
		Archive:    step.Archive,
		FollowLink: step.FollowLink,
	}))
}

func (p *provisioner) location(ctx context.Context, location string) (string, error) {
	resolved, err := p.resolver.Location(ctx, location)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrLookup, location, err)
	}
	return resolved, nil
}

// Appends a bind-mount declaration to the instance's persistent
// configuration, creating the host directory first when it does not exist.
//
// The append is never deduplicated: re-running a manifest against an
// already-provisioned instance adds a duplicate line.
func (p *provisioner) mount(step Step) error {
	if _, err := os.Stat(step.Host); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(step.Host, paths.DefaultDirMode); err != nil {
			return fmt.Errorf("%w: %w", ErrFileSystem, err)
		}
	} else if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}

	line := fmt.Sprintf("mount.entry = %s %s none bind,create=dir 0 0\n", step.Host, step.Container)

	cfg := paths.ConfigFile(p.lxcPath, p.m.Name)
	f, err := os.OpenFile(cfg, os.O_WRONLY|os.O_CREATE|os.O_APPEND, paths.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, err)
	}

	_, werr := f.WriteString(line)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("%w: %w", ErrFileSystem, werr)
	}

	slog.Info("shared mount added", "host", step.Host, "container", step.Container)
	return nil
}

func (p *provisioner) run(ctx context.Context, step Step) error {
	slog.Info("running command", "cmd", step.Command)
	return p.runner.Run(ctx, lxc.Attach(lxc.AttachOptions{
		Name:    p.m.Name,
		Command: step.Command,
		Globals: p.globals,
	}))
}

func (p *provisioner) setLimit(ctx context.Context, step Step) error {
	slog.Info("setting limit", "key", step.Key, "value", step.Value)
	return p.runner.Run(ctx, lxc.CgroupSet(p.m.Name, step.Key, step.Value, p.globals))
}
