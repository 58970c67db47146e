package cli

import (
	"context"
	"fmt"
	"strings"

	"cmt/internal/lxc"
)

// Represents the 'cmt config' command.
//
// Aggregates the runtime's information query and resource-limit verbs:
// with --state-object it writes a limit, otherwise it queries.
type ConfigCmd struct {
	Name        string `arg:"" help:"Name of the instance."`
	StateObject string `help:"Value of a state object to set, as KEY:VALUE (for example, cpuset.cpus:0,3)." placeholder:"VALUE"`
	Config      string `short:"c" help:"Show configuration variable KEY from the running instance." placeholder:"KEY"`
	IPs         bool   `short:"i" help:"Show the IP addresses."`
	PID         bool   `short:"p" help:"Show the process id of the instance's init."`
	Stats       bool   `short:"S" help:"Show usage stats."`
	NoHumanize  bool   `short:"H" help:"Show stats as raw numbers, not humanized."`
	State       bool   `short:"s" help:"Show the state of the instance."`
}

// Executes the config command.
func (c *ConfigCmd) Run(ctx context.Context) error {
	r := runner()

	if c.StateObject != "" {
		key, value, ok := strings.Cut(c.StateObject, ":")
		if !ok || key == "" || value == "" {
			return fmt.Errorf("invalid state object %q, want KEY:VALUE", c.StateObject)
		}
		return r.Run(ctx, lxc.CgroupSet(c.Name, key, value, globals()))
	}

	out, err := r.Output(ctx, lxc.Info(lxc.InfoOptions{
		Name:       c.Name,
		Config:     c.Config,
		IPs:        c.IPs,
		PID:        c.PID,
		Stats:      c.Stats,
		NoHumanize: c.NoHumanize,
		State:      c.State,
		Globals:    globals(),
	}))
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}
