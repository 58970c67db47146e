package cli

import (
	"context"

	"cmt/internal/lxc"
)

// Represents the 'cmt start' command.
type StartCmd struct {
	Name       string `arg:"" help:"Name of the instance."`
	Daemon     bool   `short:"d" default:"true" negatable:"" help:"Daemonize the instance."`
	Foreground bool   `short:"F" help:"Start with the current tty attached to /dev/console."`
	PIDFile    string `short:"p" name:"pidfile" help:"Create a file with the process id." placeholder:"FILE"`
	RCFile     string `name:"rcfile" help:"Load configuration file FILE." placeholder:"FILE"`
	ConsoleLog string `short:"L" help:"Log instance console output to FILE." placeholder:"FILE"`
	ShareNet   string `help:"Share a network namespace with another instance or pid." placeholder:"NAME"`
}

// Executes the start command.
func (c *StartCmd) Run(ctx context.Context) error {
	return runner().Run(ctx, lxc.Start(lxc.StartOptions{
		Name:       c.Name,
		Daemon:     c.Daemon,
		Foreground: c.Foreground,
		PIDFile:    c.PIDFile,
		RCFile:     c.RCFile,
		ConsoleLog: c.ConsoleLog,
		ShareNet:   c.ShareNet,
		Globals:    globals(),
	}))
}
