package appconfig

import (
	"exusiai.dev/hystats/internal/app/appcontext"
)

type ConfigSpec struct {
	// DevMode to indicate development mode. When true, logs are emitted at trace level.
	DevMode bool `split_words:"true"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogDir is the directory the log file is written to. Leaving this empty disables file logging.
	LogDir string `split_words:"true"`

	// MaxPayloadBytes caps the size of a payload read from a file or stdin.
	// Accepts plain bytes or a KiB/MiB suffix, e.g. "4MiB".
	MaxPayloadBytes ByteSize `required:"true" split_words:"true" default:"16MiB"`

	// DefaultCategory is the stats category used when a command is not given one.
	// Leaving this empty makes commands treat the payload itself as the category.
	DefaultCategory string `split_words:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
