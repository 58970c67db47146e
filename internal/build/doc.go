// Package build orchestrates instance provisioning from build manifests.
//
// A manifest describes a desired instance: its image, an optional
// entrypoint script, ordered copies and shared mounts, commands to run,
// and resource limits. The planner derives an ordered list of tagged steps
// from the manifest (create, entrypoint, start, copies, mounts, restart,
// runs, limits, restart), and a single interpreter loop executes them
// strictly in sequence. Execution is fail-fast: the first failing step
// aborts the build with no rollback of steps already applied.
//
// Runtime interactions are rendered command lines run through a
// [lxc.Runner], which lets tests inject a fake runner and assert on the
// exact command sequence without spawning processes.
//
// Example usage:
//
//	m, err := manifest.Load("web.toml")
//	if err != nil {
//	    return err
//	}
//
//	runner := lxc.NewRunner(lxc.Verbosity{Stdout: true, Stderr: true})
//	if err := build.Run(ctx, runner, build.Options{Manifest: m}); err != nil {
//	    return err
//	}
package build
