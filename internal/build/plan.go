package build

import (
	"fmt"
	"slices"
	"strings"

	"cmt/internal/manifest"
)

// Identifies what a provisioning step does.
type Kind string

const (
	Create          Kind = "create"
	WriteEntrypoint Kind = "entrypoint"
	Start           Kind = "start"
	Copy            Kind = "copy"
	Mount           Kind = "mount"
	Restart         Kind = "restart"
	RunCmd          Kind = "run"
	SetLimit        Kind = "limit"
)

// A single ordered unit of provisioning work.
//
// Steps are derived once from the manifest and executed once, in order.
// Copy locations stay unresolved until execution because resolving an
// "instance:path" form requires the instance to be running.
type Step struct {
	Kind Kind

	// Copy payload.
	Source     string
	Dest       string
	Archive    bool
	FollowLink bool

	// Mount payload.
	Host      string
	Container string

	// Run payload.
	Command string

	// SetLimit payload. Key is already in dotted form.
	Key   string
	Value string
}

// Returns a short label identifying the step in errors and logs.
func (s Step) label() string {
	switch s.Kind {
	case Copy:
		return fmt.Sprintf("copy %s -> %s", s.Source, s.Dest)
	case Mount:
		return fmt.Sprintf("mount %s -> %s", s.Host, s.Container)
	case RunCmd:
		return fmt.Sprintf("run %q", s.Command)
	case SetLimit:
		return fmt.Sprintf("limit %s=%s", s.Key, s.Value)
	default:
		return string(s.Kind)
	}
}

// Derives the ordered step list from a manifest.
//
// The entrypoint step appears only when the manifest declares one. The
// mid-build restart appears only when shared mounts edited the persistent
// configuration; the final restart is unconditional so limits take effect.
// Limits are ordered by manifest key to keep builds reproducible.
func plan(m *manifest.Manifest) []Step {
	steps := []Step{{Kind: Create}}

	if m.Entrypoint != "" {
		steps = append(steps, Step{Kind: WriteEntrypoint})
	}

	steps = append(steps, Step{Kind: Start})

	for _, c := range m.Copy {
		steps = append(steps, Step{
			Kind:       Copy,
			Source:     c.Host,
			Dest:       c.Container,
			Archive:    c.Archive,
			FollowLink: c.FollowLink,
		})
	}

	for _, s := range m.Shared {
		steps = append(steps, Step{Kind: Mount, Host: s.Host, Container: s.Container})
	}
	if len(m.Shared) > 0 {
		steps = append(steps, Step{Kind: Restart})
	}

	for _, r := range m.Run {
		steps = append(steps, Step{Kind: RunCmd, Command: r.Cmd})
	}

	keys := make([]string, 0, len(m.Limits))
	for k := range m.Limits {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, key := range keys {
		steps = append(steps, Step{
			Kind:  SetLimit,
			Key:   strings.ReplaceAll(key, "_", "."),
			Value: m.Limits[key],
		})
	}

	return append(steps, Step{Kind: Restart})
}
