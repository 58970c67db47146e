package cli

import (
	"context"

	"cmt/internal/lxc"
)

// Represents the 'cmt stop' command.
type StopCmd struct {
	Name    string `arg:"" help:"Name of the instance."`
	Reboot  bool   `short:"r" help:"Reboot the instance."`
	NoWait  bool   `short:"W" help:"Don't wait for shutdown or reboot to complete."`
	Timeout int    `short:"t" help:"Wait T seconds before hard-stopping." placeholder:"T"`
	Kill    bool   `short:"k" help:"Kill the instance rather than request clean shutdown."`
	NoKill  bool   `help:"Only request clean shutdown, don't force kill after timeout."`
	RCFile  string `name:"rcfile" help:"Load configuration file FILE." placeholder:"FILE"`
}

// Executes the stop command.
func (c *StopCmd) Run(ctx context.Context) error {
	return runner().Run(ctx, lxc.Stop(lxc.StopOptions{
		Name:    c.Name,
		Reboot:  c.Reboot,
		NoWait:  c.NoWait,
		Timeout: c.Timeout,
		Kill:    c.Kill,
		NoKill:  c.NoKill,
		RCFile:  c.RCFile,
		Globals: globals(),
	}))
}
