package cli

import (
	"context"

	"cmt/internal/lxc"
)

// Represents the 'cmt create' command.
type CreateCmd struct {
	Name    string `arg:"" help:"Name for the new instance."`
	Image   string `short:"i" default:"alpine:3.19:amd64" help:"Image used to set up the instance (distro:release:arch)." placeholder:"IMAGE"`
	Config  string `short:"c" help:"Configuration file to apply to the new instance." placeholder:"FILE"`
	Dir     string `short:"d" help:"Place the rootfs directory under DIR." placeholder:"DIR"`
	Network string `help:"Network name."`
}

// Executes the create command.
func (c *CreateCmd) Run(ctx context.Context) error {
	image, err := lxc.ParseImage(c.Image)
	if err != nil {
		return err
	}

	return runner().Run(ctx, lxc.Create(lxc.CreateOptions{
		Name:    c.Name,
		Image:   image,
		Config:  c.Config,
		Dir:     c.Dir,
		Network: c.Network,
		Globals: globals(),
	}))
}
