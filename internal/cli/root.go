package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"cmt/internal"
	"cmt/internal/lxc"
)

// Represents the root command for the cmt tool.
var RootCmd struct {
	Quiet       bool   `short:"q" help:"Don't show progress information."`
	Debug       bool   `help:"Enable debug output."`
	LogFile     string `short:"o" help:"Output runtime log to FILE instead of stderr." placeholder:"FILE"`
	LogPriority string `short:"l" help:"Set runtime log priority to LEVEL." placeholder:"LEVEL"`
	LXCPath     string `short:"P" name:"lxcpath" help:"Use specified container path." placeholder:"PATH"`

	Build   BuildCmd   `cmd:"" help:"Provision an instance from a build manifest."`
	Create  CreateCmd  `cmd:"" help:"Create instances from images."`
	Delete  DeleteCmd  `cmd:"" help:"Delete instances."`
	Execute ExecuteCmd `cmd:"" help:"Execute commands in instances."`
	Start   StartCmd   `cmd:"" help:"Start instances."`
	Stop    StopCmd    `cmd:"" help:"Stop instances."`
	List    ListCmd    `cmd:"" help:"List instances."`
	Copy    CopyCmd    `cmd:"" help:"Copy files or folders between an instance and the local filesystem."`
	Config  ConfigCmd  `cmd:"" help:"Get or set the configuration of an instance."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Management tool for LXC instances."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	handler, ok := slog.Default().Handler().(*log.Logger)
	if !ok {
		return // Not the standard handler, nothing to configure
	}

	if RootCmd.Quiet {
		internal.SetQuiet(true)
	}
	if RootCmd.Debug {
		internal.SetDebug(true)
	}

	switch {
	case internal.IsDebug():
		handler.SetLevel(log.DebugLevel)
	case internal.IsQuiet():
		handler.SetLevel(log.WarnLevel)
	default:
		handler.SetLevel(log.InfoLevel)
	}
}

// Runner for the selected subcommand, with the subprocess output gated by
// quiet mode.
func runner() lxc.Runner {
	visible := !internal.IsQuiet()
	return lxc.NewRunner(lxc.Verbosity{Stdout: visible, Stderr: visible})
}

// Runtime global flags shared by every rendered command.
func globals() lxc.Globals {
	return lxc.Globals{
		LogFile:     RootCmd.LogFile,
		LogPriority: RootCmd.LogPriority,
		LXCPath:     RootCmd.LXCPath,
	}
}
