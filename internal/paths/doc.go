// Provides filesystem layout helpers for the tool and its instances.
//
// Instance paths (rootfs directory, persistent configuration file,
// entrypoint script location) are derived from the LXC container path.
// The tool's own state files follow XDG conventions on Linux and
// platform-native conventions elsewhere.
package paths
