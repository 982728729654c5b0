package config

const (
	// DefaultFilter selects every test
	DefaultFilter = ""
	// DefaultRepeat is the default number of passes over the test list
	DefaultRepeat = 1
	// DefaultIsolation is the default isolation mode
	DefaultIsolation = IsolationAuto
	// DefaultColor is the default colour preference
	DefaultColor = ColorAuto
	// DefaultEnvFile is the dotenv file read from the working directory
	DefaultEnvFile = ".env"
	// NoWorker marks a process that is not an isolated child
	NoWorker = -1
)

// Environment variables read by Load
const (
	EnvFilter    = "EZC_FILTER"
	EnvRepeat    = "EZC_REPEAT"
	EnvShuffle   = "EZC_SHUFFLE"
	EnvSeed      = "EZC_SEED"
	EnvIsolation = "EZC_ISOLATION"
	EnvColor     = "EZC_COLOR"
	EnvTimeout   = "EZC_TIMEOUT"
	EnvReport    = "EZC_REPORT"
)
