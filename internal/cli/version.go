package cli

import (
	"context"
	"fmt"

	"cmt/internal"
)

// Represents the 'cmt version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
