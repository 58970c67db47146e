// Package lxc renders and runs the container runtime's command-line verbs.
//
// Each lifecycle primitive (create, destroy, start, stop, attach, list,
// copy, info, cgroup) has a pure translator from typed options to the exact
// command-line string, with a stable flag order so renders are reproducible.
// The [Runner] spawns one external process per rendered command and blocks
// until it exits; its [Verbosity] decides whether the child's output is
// inherited or discarded. The [Resolver] queries a running instance for its
// rootfs path, which backs the "instance:path" location form used by copy
// and mount operations.
//
// Example usage:
//
//	runner := lxc.NewRunner(lxc.Verbosity{Stdout: true, Stderr: true})
//	err := runner.Run(ctx, lxc.Create(lxc.CreateOptions{
//	    Name:  "web",
//	    Image: lxc.Image{Distro: "alpine", Release: "3.19", Arch: "amd64"},
//	}))
package lxc
