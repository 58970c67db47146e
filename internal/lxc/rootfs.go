package lxc

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Configuration key holding an instance's rootfs location.
const rootfsKey = "lxc.rootfs.path"

// Resolves instance rootfs paths by querying the runtime.
type Resolver struct {
	runner  Runner
	globals Globals
}

// Creates a [Resolver] that issues queries through the given runner.
func NewResolver(runner Runner, globals Globals) *Resolver {
	return &Resolver{runner: runner, globals: globals}
}

// Returns the absolute host path of the instance's rootfs.
//
// A failed query means the runtime does not know the name ([ErrNotFound]);
// a query that yields no path value means the instance exists but is not
// running ([ErrNotRunning]).
func (r *Resolver) Rootfs(ctx context.Context, name string) (string, error) {
	out, err := r.runner.Output(ctx, ConfigQuery(name, rootfsKey, r.globals))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNotFound, name, err)
	}

	path := parseRootfs(out)
	if path == "" {
		return "", fmt.Errorf("%w: %s", ErrNotRunning, name)
	}
	return path, nil
}

// Resolves a copy or mount location to a host path.
//
// A location of the form "instance:path" resolves to the instance's rootfs
// joined with the relative path. A bare location is a host path and is
// returned verbatim.
func (r *Resolver) Location(ctx context.Context, location string) (string, error) {
	name, rel, ok := SplitLocation(location)
	if !ok {
		return location, nil
	}

	rootfs, err := r.Rootfs(ctx, name)
	if err != nil {
		return "", err
	}
	return filepath.Join(rootfs, rel), nil
}

// Extracts the rootfs path from a configuration query's output.
//
// The output is one "key = value" line per match. The value may carry a
// backing-store prefix such as "dir:", which is stripped.
func parseRootfs(out string) string {
	for _, line := range strings.Split(out, "\n") {
		_, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if rest, found := strings.CutPrefix(value, "dir:"); found {
			value = rest
		}
		if value != "" {
			return value
		}
	}
	return ""
}

// Splits a location of the form "instance:path" into its parts.
//
// Returns ok=false for bare host paths: strings without a separator, with
// the separator in first position, or where the segment before the separator
// contains a path separator (e.g., "/foo:bar").
func SplitLocation(location string) (name, rel string, ok bool) {
	i := strings.IndexByte(location, ':')
	if i < 1 {
		return "", "", false
	}
	if strings.ContainsRune(location[:i], '/') {
		return "", "", false
	}
	return location[:i], location[i+1:], true
}
