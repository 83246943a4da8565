package sweeps

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Count the sweep passes needed to collect a sequence in order"
	MsgCountShort      = "Print the number of passes for each sequence"
	MsgTraceShort      = "Show which values each pass collects"
	MsgDemoShort       = "Evaluate the configured demo sequences"
	MsgExplainShort    = "Describe the sweep algorithm"
	MsgWatchShort      = "Re-evaluate a sequence file whenever it changes"
	MsgConfigShort     = "Print the default configuration and the user config path"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat    = "sweeps version %s\n  commit: %s\n  built:  %s\n"
	MsgUserConfigFormat = "# user config: %s\n"
	MsgWatchReloadFail  = "reload of %s failed"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrNoSequences   = "no sequences given; pass them as arguments or with --file"
	MsgErrBadFormatFlag = "invalid --format value"
	MsgErrSomeFailed    = "%d of %d sequences could not be swept"
	MsgErrLoadConfig    = "failed to load configuration"
	MsgErrReadSequences = "failed to read sequences"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (TOML or YAML); layered over the user config"
	MsgFlagFormat  = "Output format: auto, term, text, json, yaml or xml"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagFile    = "Read sequences from a file, one per line (or .toml/.yaml); - for stdin"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/count-example.txt
	msgCountExampleRaw string
	MsgCountExample    = strings.TrimRight(msgCountExampleRaw, "\n")

	//go:embed msgs/trace-example.txt
	msgTraceExampleRaw string
	MsgTraceExample    = strings.TrimRight(msgTraceExampleRaw, "\n")

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
