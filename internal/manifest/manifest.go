package manifest

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Reported for missing or malformed manifest content.
var ErrManifest = errors.New("invalid build manifest")

// Describes the desired instance and its provisioning inputs.
//
// A manifest is created once per build invocation and read-only thereafter.
type Manifest struct {
	Name       string            // Instance name.
	Image      Image             // Image spec plus optional create options.
	Entrypoint string            // Optional shell script body run at instance startup.
	Copy       []CopyRule        // Copies into the instance, in declared order.
	Shared     []SharedMount     // Persistent bind mounts, in declared order.
	Run        []RunCommand      // Commands run inside the instance, in declared order.
	Limits     map[string]string // Resource limits, keys underscore-delimited, values normalized to strings.
}

// Image source and optional create options.
type Image struct {
	Distro  string `toml:"distro"`
	Release string `toml:"release"`
	Arch    string `toml:"arch"`
	Config  string `toml:"config"`  // Optional configuration file for create.
	Dir     string `toml:"dir"`     // Optional rootfs directory override.
	Network string `toml:"network"` // Optional network name.
}

// A single copy into the instance.
//
// Host and Container are locations: either bare host paths or
// "instance:path" forms resolved against a running instance's rootfs.
type CopyRule struct {
	Host       string `toml:"host"`
	Container  string `toml:"container"`
	Archive    bool   `toml:"archive"`     // Preserve ownership and mode.
	FollowLink bool   `toml:"follow_link"` // Dereference symbolic links in the source.
}

// A persistent bind mount exposing a host directory inside the instance.
type SharedMount struct {
	Host      string `toml:"host"`
	Container string `toml:"container"`
}

// A literal shell command executed inside the running instance.
type RunCommand struct {
	Cmd string `toml:"cmd"`
}

// Wire shape of the TOML document. Limits stay untyped until validation,
// which normalizes scalar values to strings.
type document struct {
	Name       string         `toml:"name"`
	Image      Image          `toml:"image"`
	Entrypoint string         `toml:"entrypoint"`
	Copy       []CopyRule     `toml:"copy"`
	Shared     []SharedMount  `toml:"shared"`
	Run        []RunCommand   `toml:"run"`
	Limits     map[string]any `toml:"limits"`
}

// Reads and parses a build manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	return Parse(data)
}

// Parses a TOML build manifest.
//
// Required fields are the instance name and the image distro/release/arch
// triple. Optional sections default to empty collections. Malformed list
// entries and non-scalar values where scalars are expected are errors.
func Parse(data []byte) (*Manifest, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}

	if err := validate(&doc); err != nil {
		return nil, err
	}

	limits, err := normalizeLimits(doc.Limits)
	if err != nil {
		return nil, err
	}

	return &Manifest{
		Name:       doc.Name,
		Image:      doc.Image,
		Entrypoint: doc.Entrypoint,
		Copy:       doc.Copy,
		Shared:     doc.Shared,
		Run:        doc.Run,
		Limits:     limits,
	}, nil
}

// Checks required fields and list-entry shapes.
func validate(doc *document) error {
	if doc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrManifest)
	}
	if doc.Image.Distro == "" {
		return fmt.Errorf("%w: image.distro is required", ErrManifest)
	}
	if doc.Image.Release == "" {
		return fmt.Errorf("%w: image.release is required", ErrManifest)
	}
	if doc.Image.Arch == "" {
		return fmt.Errorf("%w: image.arch is required", ErrManifest)
	}

	for i, c := range doc.Copy {
		if c.Host == "" {
			return fmt.Errorf("%w: copy[%d] is missing host", ErrManifest, i)
		}
		if c.Container == "" {
			return fmt.Errorf("%w: copy[%d] is missing container", ErrManifest, i)
		}
	}
	for i, s := range doc.Shared {
		if s.Host == "" {
			return fmt.Errorf("%w: shared[%d] is missing host", ErrManifest, i)
		}
		if s.Container == "" {
			return fmt.Errorf("%w: shared[%d] is missing container", ErrManifest, i)
		}
	}
	for i, r := range doc.Run {
		if r.Cmd == "" {
			return fmt.Errorf("%w: run[%d] is missing cmd", ErrManifest, i)
		}
	}

	return nil
}

// Converts limit values to strings, rejecting non-scalars.
func normalizeLimits(raw map[string]any) (map[string]string, error) {
	limits := make(map[string]string, len(raw))
	for key, value := range raw {
		s, err := scalarString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: limits.%s: %w", ErrManifest, key, err)
		}
		limits[key] = s
	}
	return limits, nil
}

// Formats a TOML scalar as a string.
func scalarString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("expected a scalar value, got %T", value)
	}
}
