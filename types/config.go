/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool       `mapstructure:"verbose"`
	Config  string     `mapstructure:"config"`
	Data    DataConfig `mapstructure:"data" validate:"required"`
	Log     LogConfig  `mapstructure:"log"`
	UI      UIConfig   `mapstructure:"ui"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	File   string `mapstructure:"file" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json yaml toml sqlite"`
}

// LogConfig controls diagnostics written to stderr and crash logs.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	// CrashDir is where crash_logs/ is created; empty means the data file's directory.
	CrashDir string `mapstructure:"crashDir"`
}

// UIConfig selects the prompt implementation.
// auto picks terminal widgets when stdin and stdout are terminals, line prompts otherwise.
type UIConfig struct {
	Mode string `mapstructure:"mode" validate:"omitempty,oneof=auto prompt line"`
}
