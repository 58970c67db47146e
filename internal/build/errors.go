package build

import "errors"

var (
	ErrBuild      = errors.New("build failed")
	ErrFileSystem = errors.New("file system operation failed")
	ErrLookup     = errors.New("rootfs lookup failed")
)
