package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "cmt"

	// Default container path used when --lxcpath is not given.
	DefaultLXCPath = "/var/lib/lxc"

	// Filename of the entrypoint script installed under /etc/profile.d.
	// The zz- prefix sorts it after the distribution's own profile scripts.
	EntrypointScript = "zz-entrypoint.sh"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644

	// Permission mode for the entrypoint script: executable by owner,
	// group, and other, with no write bit.
	EntrypointMode os.FileMode = 0555
)

// Path where the most recently built manifest path is recorded.
//
//	Linux:   $XDG_STATE_HOME/cmt/last-manifest or ~/.local/state/cmt/last-manifest
//	macOS:   ~/Library/Application Support/cmt/last-manifest
func LastManifest() string {
	return filepath.Join(xdg.StateHome, toolName, "last-manifest")
}

// Rootfs directory of an instance under the given container path.
func RootfsDir(lxcPath, name string) string {
	return filepath.Join(lxcPath, name, "rootfs")
}

// Persistent configuration file of an instance.
func ConfigFile(lxcPath, name string) string {
	return filepath.Join(lxcPath, name, "config")
}

// Path of the entrypoint script inside a rootfs.
func EntrypointPath(rootfs string) string {
	return filepath.Join(rootfs, "etc", "profile.d", EntrypointScript)
}
