package lxc

import (
	"fmt"
	"strings"
)

// Options shared by every runtime command.
//
// These map to the runtime's global flags and are rendered after the
// verb-specific flags, always in the same order.
type Globals struct {
	LogFile     string // Write the runtime's log to this file instead of stderr.
	LogPriority string // Log priority passed through to the runtime.
	LXCPath     string // Container path override.
}

// Renders the global flags.
func (g Globals) render() string {
	var b strings.Builder
	if g.LogFile != "" {
		fmt.Fprintf(&b, " --logfile=%s", g.LogFile)
	}
	if g.LogPriority != "" {
		fmt.Fprintf(&b, " --logpriority=%s", g.LogPriority)
	}
	if g.LXCPath != "" {
		fmt.Fprintf(&b, " --lxcpath=%s", g.LXCPath)
	}
	return b.String()
}

// Image source triple for creating an instance.
type Image struct {
	Distro  string // Distribution name (e.g., "alpine").
	Release string // Distribution release (e.g., "3.19").
	Arch    string // Target architecture (e.g., "amd64").
}

// Parses a colon-delimited image triple ("distro:release:arch").
func ParseImage(s string) (Image, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Image{}, fmt.Errorf("%w: %q, want distro:release:arch", ErrImage, s)
	}
	return Image{Distro: parts[0], Release: parts[1], Arch: parts[2]}, nil
}

// Options for creating an instance.
type CreateOptions struct {
	Name    string // Name for the new instance.
	Image   Image  // Image used to set up the instance.
	Config  string // Optional configuration file applied to the new instance.
	Dir     string // Optional rootfs directory override.
	Network string // Optional network name.
	Globals Globals
}

// Renders the create-instance command.
//
// The download template receives the image triple after the "--" separator.
func Create(opts CreateOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "lxc-create --name=%s --template=download", opts.Name)
	if opts.Config != "" {
		fmt.Fprintf(&b, " --config=%s", opts.Config)
	}
	if opts.Dir != "" {
		fmt.Fprintf(&b, " --bdev=dir --dir=%s", opts.Dir)
	}
	b.WriteString(opts.Globals.render())
	fmt.Fprintf(&b, " -- --dist=%s --release=%s --arch=%s",
		opts.Image.Distro, opts.Image.Release, opts.Image.Arch)
	if opts.Network != "" {
		fmt.Fprintf(&b, " --network=%s", opts.Network)
	}
	return b.String()
}

// Options for destroying an instance.
type DestroyOptions struct {
	Name      string
	Force     bool   // Destroy even if the instance is running.
	Snapshots bool   // Destroy including all snapshots.
	RCFile    string // Optional configuration file to load.
	Globals   Globals
}

// Renders the destroy-instance command.
func Destroy(opts DestroyOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "lxc-destroy --name=%s", opts.Name)
	if opts.Force {
		b.WriteString(" --force")
	}
	if opts.Snapshots {
		b.WriteString(" --snapshots")
	}
	if opts.RCFile != "" {
		fmt.Fprintf(&b, " --rcfile=%s", opts.RCFile)
	}
	b.WriteString(opts.Globals.render())
	return b.String()
}

// Options for starting an instance.
type StartOptions struct {
	Name       string
	Daemon     bool   // Detach the instance from the terminal.
	Foreground bool   // Attach the current tty to /dev/console; overrides Daemon.
	PIDFile    string // Optional file to write the init process id to.
	RCFile     string // Optional configuration file to load.
	ConsoleLog string // Optional file to log console output to.
	ShareNet   string // Optional instance or pid to share a network namespace with.
	Globals    Globals
}

// Renders the start-instance command.
func Start(opts StartOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "lxc-start --name=%s", opts.Name)
	if opts.Foreground {
		b.WriteString(" --foreground")
	} else if opts.Daemon {
		b.WriteString(" --daemon")
	}
	if opts.PIDFile != "" {
		fmt.Fprintf(&b, " --pidfile=%s", opts.PIDFile)
	}
	if opts.RCFile != "" {
		fmt.Fprintf(&b, " --rcfile=%s", opts.RCFile)
	}
	if opts.ConsoleLog != "" {
		fmt.Fprintf(&b, " --console-log=%s", opts.ConsoleLog)
	}
	if opts.ShareNet != "" {
		fmt.Fprintf(&b, " --share-net=%s", opts.ShareNet)
	}
	b.WriteString(opts.Globals.render())
	return b.String()
}

// Options for stopping an instance.
type StopOptions struct {
	Name    string
	Reboot  bool   // Reboot instead of stopping.
	NoWait  bool   // Don't wait for shutdown or reboot to complete.
	Timeout int    // Seconds to wait before hard-stopping. Zero uses the runtime default.
	Kill    bool   // Kill rather than request clean shutdown.
	NoKill  bool   // Only request clean shutdown, never force kill.
	RCFile  string // Optional configuration file to load.
	Globals Globals
}

// Renders the stop-instance command.
func Stop(opts StopOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "lxc-stop --name=%s", opts.Name)
	if opts.Reboot {
		b.WriteString(" --reboot")
	}
	if opts.NoWait {
		b.WriteString(" --nowait")
	}
	if opts.Timeout > 0 {
		fmt.Fprintf(&b, " --timeout=%d", opts.Timeout)
	}
	if opts.Kill {
		b.WriteString(" --kill")
	}
	if opts.NoKill {
		b.WriteString(" --nokill")
	}
	if opts.RCFile != "" {
		fmt.Fprintf(&b, " --rcfile=%s", opts.RCFile)
	}
	b.WriteString(opts.Globals.render())
	return b.String()
}

// Options for executing a command inside a running instance.
type AttachOptions struct {
	Name     string
	Command  string // Literal shell command, appended after the "--" separator.
	ClearEnv bool   // Clear all environment variables before attaching.
	KeepEnv  bool   // Keep all current environment variables.
	UID      int    // Execute with this UID inside the instance. Zero is omitted.
	GID      int    // Execute with this GID inside the instance. Zero is omitted.
	Arch     string // Optional architecture override for the attached program.
	Globals  Globals
}

// Renders the attach-and-execute command.
func Attach(opts AttachOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "lxc-attach --name=%s", opts.Name)
	if opts.ClearEnv {
		b.WriteString(" --clear-env")
	}
	if opts.KeepEnv {
		b.WriteString(" --keep-env")
	}
	if opts.UID > 0 {
		fmt.Fprintf(&b, " --uid=%d", opts.UID)
	}
	if opts.GID > 0 {
		fmt.Fprintf(&b, " --gid=%d", opts.GID)
	}
	if opts.Arch != "" {
		fmt.Fprintf(&b, " --arch=%s", opts.Arch)
	}
	b.WriteString(opts.Globals.render())
	fmt.Fprintf(&b, " -- %s", opts.Command)
	return b.String()
}

// Options for listing instances.
type ListOptions struct {
	Line    bool     // One entry per line.
	Fancy   bool     // Column-based output.
	Active  bool     // Only active instances.
	Running bool     // Only running instances.
	Frozen  bool     // Only frozen instances.
	Stopped bool     // Only stopped instances.
	Defined bool     // Only defined instances.
	Filter  string   // Optional name filter regular expression.
	Groups  []string // Optional groups an instance must belong to.
	Globals Globals
}

// Renders the list-instances command.
func List(opts ListOptions) string {
	var b strings.Builder
	b.WriteString("lxc-ls")
	if opts.Line {
		b.WriteString(" --line")
	}
	if opts.Fancy {
		b.WriteString(" --fancy")
	}
	if opts.Active {
		b.WriteString(" --active")
	}
	if opts.Running {
		b.WriteString(" --running")
	}
	if opts.Frozen {
		b.WriteString(" --frozen")
	}
	if opts.Stopped {
		b.WriteString(" --stopped")
	}
	if opts.Defined {
		b.WriteString(" --defined")
	}
	if opts.Filter != "" {
		fmt.Fprintf(&b, " --filter=%s", opts.Filter)
	}
	if len(opts.Groups) > 0 {
		fmt.Fprintf(&b, " --groups=%s", strings.Join(opts.Groups, ","))
	}
	b.WriteString(opts.Globals.render())
	return b.String()
}

// Options for copying a file or directory between resolved host paths.
//
// Both sides must already be host paths; locations of the form
// "instance:path" are resolved beforehand via [Resolver.Location].
type CopyOptions struct {
	Source     string
	Dest       string
	Archive    bool // Preserve ownership and mode.
	FollowLink bool // Always dereference symbolic links in the source.
}

// Renders the copy command. The copy is always recursive.
func Copy(opts CopyOptions) string {
	var b strings.Builder
	b.WriteString("cp --recursive")
	if opts.Archive {
		b.WriteString(" --archive")
	}
	if opts.FollowLink {
		b.WriteString(" --dereference")
	}
	fmt.Fprintf(&b, " %s %s", opts.Source, opts.Dest)
	return b.String()
}

// Renders the query for a single configuration key of a running instance.
func ConfigQuery(name, key string, g Globals) string {
	return fmt.Sprintf("lxc-info --name=%s --config=%s%s", name, key, g.render())
}

// Renders the resource-limit write for a running instance.
//
// The key must already be in dotted form (e.g., "cpuset.cpus").
func CgroupSet(name, key, value string, g Globals) string {
	return fmt.Sprintf("lxc-cgroup --name=%s %s %s%s", name, key, value, g.render())
}

// Options for querying instance information.
type InfoOptions struct {
	Name       string
	Config     string // Optional configuration key to show.
	IPs        bool   // Show IP addresses.
	PID        bool   // Show the process id of the instance's init.
	Stats      bool   // Show usage stats.
	NoHumanize bool   // Show stats as raw numbers.
	State      bool   // Show the instance state.
	Globals    Globals
}

// Renders the instance-information query.
func Info(opts InfoOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "lxc-info --name=%s", opts.Name)
	if opts.Config != "" {
		fmt.Fprintf(&b, " --config=%s", opts.Config)
	}
	if opts.IPs {
		b.WriteString(" --ips")
	}
	if opts.PID {
		b.WriteString(" --pid")
	}
	if opts.Stats {
		b.WriteString(" --stats")
	}
	if opts.NoHumanize {
		b.WriteString(" --no-humanize")
	}
	if opts.State {
		b.WriteString(" --state")
	}
	b.WriteString(opts.Globals.render())
	return b.String()
}
