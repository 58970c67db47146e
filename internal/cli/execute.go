package cli

import (
	"context"

	"cmt/internal/lxc"
)

// Represents the 'cmt execute' command.
type ExecuteCmd struct {
	Name     string `arg:"" help:"Name of the instance."`
	Command  string `arg:"" help:"Command to execute inside the instance."`
	ClearEnv bool   `help:"Clear all environment variables before attaching."`
	KeepEnv  bool   `help:"Keep all current environment variables."`
	UID      int    `short:"u" help:"Execute the command with UID inside the instance."`
	GID      int    `short:"g" help:"Execute the command with GID inside the instance."`
	Arch     string `short:"a" help:"Use ARCH for the program instead of the instance's own architecture." placeholder:"ARCH"`
}

// Executes the execute command.
func (c *ExecuteCmd) Run(ctx context.Context) error {
	return runner().Run(ctx, lxc.Attach(lxc.AttachOptions{
		Name:     c.Name,
		Command:  c.Command,
		ClearEnv: c.ClearEnv,
		KeepEnv:  c.KeepEnv,
		UID:      c.UID,
		GID:      c.GID,
		Arch:     c.Arch,
		Globals:  globals(),
	}))
}
