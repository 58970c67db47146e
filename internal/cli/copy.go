package cli

import (
	"context"

	"cmt/internal/lxc"
)

// Represents the 'cmt copy' command.
type CopyCmd struct {
	Source     string `arg:"" help:"Source path, optionally prefixed with an instance name ([INSTANCE:]SRC_PATH)."`
	Dest       string `arg:"" help:"Destination path, optionally prefixed with an instance name ([INSTANCE:]DEST_PATH)."`
	Archive    bool   `short:"a" help:"Archive mode (copy all uid/gid information)."`
	FollowLink bool   `short:"L" help:"Always follow symbolic links in the source path."`
}

// Executes the copy command.
//
// Instance-prefixed locations are resolved against the instance's rootfs;
// bare paths are used verbatim.
func (c *CopyCmd) Run(ctx context.Context) error {
	r := runner()
	resolver := lxc.NewResolver(r, globals())

	src, err := resolver.Location(ctx, c.Source)
	if err != nil {
		return err
	}
	dest, err := resolver.Location(ctx, c.Dest)
	if err != nil {
		return err
	}

	return r.Run(ctx, lxc.Copy(lxc.CopyOptions{
		Source:     src,
		Dest:       dest,
		Archive:    c.Archive,
		FollowLink: c.FollowLink,
	}))
}
