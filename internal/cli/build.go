package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cmt/internal/build"
	"cmt/internal/manifest"
	"cmt/internal/paths"
)

// Represents the 'cmt build' command.
type BuildCmd struct {
	File string `short:"f" help:"Path to the build manifest. Defaults to the last built manifest." placeholder:"FILE" type:"path"`
}

// Executes the build command.
//
// Loads the manifest, records it as the last built one, and runs the
// provisioning orchestrator against the runtime.
func (c *BuildCmd) Run(ctx context.Context) error {
	path := c.File
	if path == "" {
		last, err := lastManifest()
		if err != nil {
			return fmt.Errorf("no manifest given and no previous build found: %w", err)
		}
		slog.Info("re-running last build manifest", "path", last)
		path = last
	}

	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	rememberManifest(path)

	return build.Run(ctx, runner(), build.Options{
		Manifest: m,
		LXCPath:  RootCmd.LXCPath,
		Globals:  globals(),
	})
}

// Returns the path of the most recently built manifest.
func lastManifest() (string, error) {
	data, err := os.ReadFile(paths.LastManifest())
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(string(data))
	if path == "" {
		return "", fmt.Errorf("last-manifest record is empty")
	}
	return path, nil
}

// Records the manifest path for later re-runs. Best effort.
func rememberManifest(path string) {
	record := paths.LastManifest()
	if err := os.MkdirAll(filepath.Dir(record), paths.DefaultDirMode); err != nil {
		slog.Debug("cannot record last manifest", "error", err)
		return
	}
	if err := os.WriteFile(record, []byte(path+"\n"), paths.DefaultFileMode); err != nil {
		slog.Debug("cannot record last manifest", "error", err)
	}
}
