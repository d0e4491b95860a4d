package advent

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Advent of Code 2023 puzzle solver"
	MsgSolveShort         = "Solve a day's puzzle"
	MsgListShort          = "List the available solvers"
	MsgListLong           = "List shows every registered day and whether its input file exists."
	MsgAlmanacShort       = "Inspect a seed almanac"
	MsgAlmanacLowestShort = "Print the lowest location reachable from the seeds"
	MsgAlmanacTraceShort  = "Show a seed's value after each map"
	MsgAlmanacCheckShort  = "Report maps whose rules overlap"
	MsgGenConfigShort     = "Generate a configuration file"
	MsgGenConfigLong      = "Output a commented configuration template, or the effective configuration, to stdout or ./advent.toml."
	MsgVersionShort       = "Print version information"
	MsgCompletionShort    = "Generate shell completion script"

	// Status messages
	MsgVersionFormat     = "advent version %s\n  commit: %s\n  built:  %s\n"
	MsgLowestLabel       = "lowest location"
	MsgConfigWritten     = "Wrote %s\n"
	MsgSkippedMissing    = "Skipping day %d: %s not found"
	MsgNoInputsAvailable = "no input files found"

	// Error messages
	MsgErrDayArg      = "day must be a number between 1 and 25, got %q"
	MsgErrSeedArg     = "seed must be a non-negative number, got %q"
	MsgErrSolveArgs   = "solve takes a day and an optional input file"
	MsgErrAllWithArgs = "--all cannot be combined with a day"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default ./advent.toml)"
	MsgFlagOutput    = "Output format: text, table or json"
	MsgFlagColor     = "Color mode: auto, always or never"
	MsgFlagPart      = "Solve only this part (1 or 2)"
	MsgFlagAll       = "Solve every day with an input file"
	MsgFlagRanges    = "Read the seeds as start/length pairs"
	MsgFlagEffective = "Print the effective configuration instead of the template"
	MsgFlagWrite     = "Write to ./advent.toml instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/solve-long.txt
	msgSolveLongRaw string
	MsgSolveLong    = strings.TrimSpace(msgSolveLongRaw)

	//go:embed msgs/solve-example.txt
	msgSolveExampleRaw string
	MsgSolveExample    = strings.TrimRight(msgSolveExampleRaw, "\n")

	//go:embed msgs/almanac-long.txt
	msgAlmanacLongRaw string
	MsgAlmanacLong    = strings.TrimSpace(msgAlmanacLongRaw)

	//go:embed msgs/almanac-example.txt
	msgAlmanacExampleRaw string
	MsgAlmanacExample    = strings.TrimRight(msgAlmanacExampleRaw, "\n")

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
