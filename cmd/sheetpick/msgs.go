package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Copy the files a spreadsheet column asks for"
	MsgRunShort        = "Match and copy the files named in a sheet"
	MsgScanShort       = "Index the source directory without copying"
	MsgGenConfigShort  = "Print or write the configuration file"
	MsgVersionShort    = "Print version information"
	MsgManShort        = "Generate man pages"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "Written %s\n"
	MsgConfigExists  = "Config file %s already exists, leaving it untouched\n"

	// Flag descriptions
	MsgFlagVerbose         = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun          = "Resolve and report without copying anything"
	MsgFlagConfig          = "Config file (default ./.sheetpick.toml, then XDG config dir)"
	MsgFlagColumn          = "Column holding the file names: header text, letter, or 1-based number"
	MsgFlagSheet           = "Worksheet name for .xlsx input (default: first sheet)"
	MsgFlagNoHeader        = "Treat the sheet as having no header row"
	MsgFlagIgnoreCase      = "Compare names case-insensitively"
	MsgFlagIgnoreExtension = "Match on the name stem, ignoring the extension"
	MsgFlagAmbiguous       = "Names matching several files: \"all\" copies every candidate, \"skip\" copies none"
	MsgFlagRecursive       = "Descend into subdirectories of the source"
	MsgFlagExclude         = "Glob patterns excluded from the scan"
	MsgFlagOverwrite       = "Replace existing output files instead of adding (1), (2) suffixes"
	MsgFlagReport          = "Report CSV path (default: sheetpick-report.csv in the output directory)"
	MsgFlagOutput          = "Output format: auto, term, text, or json"
	MsgFlagWrite           = "Write .sheetpick.toml into the current directory"
	MsgFlagEffective       = "Print the resolved configuration after file and environment merging"
	MsgFlagManDir          = "Directory to write the man pages into"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimSpace(msgRunExampleRaw)

	//go:embed msgs/scan-long.txt
	msgScanLongRaw string
	MsgScanLong    = strings.TrimSpace(msgScanLongRaw)

	//go:embed msgs/scan-example.txt
	msgScanExampleRaw string
	MsgScanExample    = strings.TrimSpace(msgScanExampleRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimSpace(msgGenConfigExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
