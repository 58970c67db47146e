// Parses flags and dispatches the cmt subcommands.
//
// The tool accepts the following global flags:
//
//	-q, --quiet         Don't show progress information.
//	    --debug         Enable debug output.
//	-o, --log-file      Output runtime log to FILE instead of stderr.
//	-l, --log-priority  Set runtime log priority to LEVEL.
//	-P, --lxcpath       Use specified container path.
//
// Flags override build-time defaults set via linker flags. After parsing,
// the global logger is reconfigured to reflect the final level before the
// subcommand runs. The single-verb subcommands render one runtime command
// each and run it; 'build' drives the provisioning orchestrator.
package cli
