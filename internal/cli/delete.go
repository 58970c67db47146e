package cli

import (
	"context"

	"cmt/internal/lxc"
)

// Represents the 'cmt delete' command.
type DeleteCmd struct {
	Name      []string `arg:"" help:"Names of the instances to delete."`
	Force     bool     `short:"f" help:"Force the removal of running instances."`
	Snapshots bool     `short:"s" help:"Destroy including all snapshots."`
	RCFile    string   `name:"rcfile" help:"Load configuration file FILE." placeholder:"FILE"`
}

// Executes the delete command.
//
// Instances are destroyed in the given order; the first failure stops the
// remaining deletions.
func (c *DeleteCmd) Run(ctx context.Context) error {
	r := runner()
	for _, name := range c.Name {
		err := r.Run(ctx, lxc.Destroy(lxc.DestroyOptions{
			Name:      name,
			Force:     c.Force,
			Snapshots: c.Snapshots,
			RCFile:    c.RCFile,
			Globals:   globals(),
		}))
		if err != nil {
			return err
		}
	}
	return nil
}
