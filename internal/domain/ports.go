package domain

// ScheduleSource loads an activity table from an external file.
type ScheduleSource interface {
	Load(path string) ([]Activity, error)
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	Load() (*Config, error)
}

// Logger is the logging port used by use cases.
// Category groups related entries (e.g. "analyze", "loader").
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
