package build

import (
	"context"
	"fmt"
	"log/slog"

	"cmt/internal/lxc"
	"cmt/internal/manifest"
	"cmt/internal/paths"
)

// Controls provisioning execution.
type Options struct {
	Manifest *manifest.Manifest // Manifest to provision. Required.
	LXCPath  string             // Container path for filesystem phases. Empty uses [paths.DefaultLXCPath].
	Globals  lxc.Globals        // Global flags appended to every rendered command.
}

// Provisions an instance end-to-end from its build manifest.
//
// The step list is derived once from the manifest and interpreted strictly
// in order; no step begins before the previous one's external action has
// completed. The first failure aborts the build, identifying the failing
// step, and leaves the instance in its partially provisioned state (no
// rollback of already-applied steps).
func Run(ctx context.Context, runner lxc.Runner, opts Options) error {
	if opts.LXCPath == "" {
		opts.LXCPath = paths.DefaultLXCPath
	}

	m := opts.Manifest
	steps := plan(m)

	slog.Info("provisioning instance",
		"name", m.Name,
		"image", fmt.Sprintf("%s:%s:%s", m.Image.Distro, m.Image.Release, m.Image.Arch),
		"steps", len(steps),
	)

	p := &provisioner{
		runner:   runner,
		resolver: lxc.NewResolver(runner, opts.Globals),
		m:        m,
		lxcPath:  opts.LXCPath,
		globals:  opts.Globals,
	}

	for i, step := range steps {
		if err := p.execute(ctx, step); err != nil {
			return fmt.Errorf("%w: step %d (%s): %w", ErrBuild, i+1, step.label(), err)
		}
	}

	slog.Info("instance provisioned", "name", m.Name)
	return nil
}
