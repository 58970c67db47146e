package lxc

import "errors"

var (
	ErrExec       = errors.New("command execution failed")
	ErrNotFound   = errors.New("instance not found")
	ErrNotRunning = errors.New("instance not running")
	ErrImage      = errors.New("invalid image spec")
)
