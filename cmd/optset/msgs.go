package optset

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Validated settings backed by a JSON file"
	MsgListShort       = "List every setting with its current value"
	MsgGetShort        = "Print the value of a setting"
	MsgSetShort        = "Change a setting"
	MsgOptionsShort    = "List the options of a setting"
	MsgOptionsLong     = "List the options of a setting in schema order. The current one is marked."
	MsgResetShort      = "Reset every setting to its default"
	MsgInitShort       = "Create an example schema and an empty settings file"
	MsgDescribeShort   = "Describe every setting and its options"
	MsgGenSchemaShort  = "Print an example schema document"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgSetDone          = "%s = %s"
	MsgResetDone        = "Settings in %s reset to defaults"
	MsgCreatedFile      = "Created %s"
	MsgFileExists       = "%s already exists, use --force to overwrite"
	MsgSchemaWritten    = "Wrote example schema to %s"
	MsgSettingsUnbound  = "No settings file, changes will not be kept"
	MsgFallbackDefaults = "settings file %s does not exist, showing defaults\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration"
	MsgErrLoadSchema = "failed to load schema"
	MsgErrNoCommand  = "no command specified"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSchema     = "Schema file (.toml, .yaml or .json)"
	MsgFlagFile       = "Settings file (.json)"
	MsgFlagOnConflict = "What to do when the settings file does not match the schema: prompt, reset or keep"
	MsgFlagFormat     = "Output format: auto, term, text or json"
	MsgFlagLiteral    = "Show stored keys instead of the values they map to"
	MsgFlagOptions    = "Include the options of each setting"
	MsgFlagForce      = "Overwrite existing files"
	MsgFlagGenFormat  = "Schema format: toml or yaml"
	MsgFlagWrite      = "Write the schema to a file instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/get-long.txt
	msgGetLongRaw string
	MsgGetLong    = strings.TrimSpace(msgGetLongRaw)

	//go:embed msgs/get-example.txt
	msgGetExampleRaw string
	MsgGetExample    = strings.TrimRight(msgGetExampleRaw, "\n")

	//go:embed msgs/set-long.txt
	msgSetLongRaw string
	MsgSetLong    = strings.TrimSpace(msgSetLongRaw)

	//go:embed msgs/set-example.txt
	msgSetExampleRaw string
	MsgSetExample    = strings.TrimRight(msgSetExampleRaw, "\n")

	//go:embed msgs/options-example.txt
	msgOptionsExampleRaw string
	MsgOptionsExample    = strings.TrimRight(msgOptionsExampleRaw, "\n")

	//go:embed msgs/reset-long.txt
	msgResetLongRaw string
	MsgResetLong    = strings.TrimSpace(msgResetLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/describe-long.txt
	msgDescribeLongRaw string
	MsgDescribeLong    = strings.TrimSpace(msgDescribeLongRaw)

	//go:embed msgs/gen-schema-long.txt
	msgGenSchemaLongRaw string
	MsgGenSchemaLong    = strings.TrimSpace(msgGenSchemaLongRaw)

	//go:embed msgs/gen-schema-example.txt
	msgGenSchemaExampleRaw string
	MsgGenSchemaExample    = strings.TrimRight(msgGenSchemaExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
