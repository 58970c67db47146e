package cli

import (
	"context"
	"fmt"

	"cmt/internal/lxc"
)

// Represents the 'cmt list' command.
type ListCmd struct {
	Line    bool     `short:"1" help:"Show one entry per line."`
	Fancy   bool     `short:"f" help:"Use a fancy, column-based output."`
	Active  bool     `help:"List only active instances."`
	Running bool     `help:"List only running instances."`
	Frozen  bool     `help:"List only frozen instances."`
	Stopped bool     `help:"List only stopped instances."`
	Defined bool     `help:"List only defined instances."`
	Filter  string   `help:"Filter instance names by regular expression." placeholder:"REGEX"`
	Groups  []string `short:"g" help:"Comma separated list of groups an instance must have to be displayed." placeholder:"GROUPS"`
}

// Executes the list command.
//
// The listing is captured and printed so it stays visible in quiet mode.
func (c *ListCmd) Run(ctx context.Context) error {
	out, err := runner().Output(ctx, lxc.List(lxc.ListOptions{
		Line:    c.Line,
		Fancy:   c.Fancy,
		Active:  c.Active,
		Running: c.Running,
		Frozen:  c.Frozen,
		Stopped: c.Stopped,
		Defined: c.Defined,
		Filter:  c.Filter,
		Groups:  c.Groups,
		Globals: globals(),
	}))
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}
