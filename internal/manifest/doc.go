// Package manifest parses declarative build manifests.
//
// A build manifest is a TOML document describing a desired instance: the
// image to create it from, an optional entrypoint script, ordered copy and
// shared-mount lists, commands to run inside the instance, and resource
// limits. Parsing validates required fields and list-entry shapes and
// normalizes limit values to strings; the resulting [Manifest] is read-only
// input to the provisioning orchestrator.
package manifest
