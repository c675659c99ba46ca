package config

import "github.com/devraider/rio/internal/bytesize"

// Default configuration values.
const (
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = "text"
	DefaultLogOutput = "stderr"

	DefaultMode = ModeBytes

	// DefaultBufferSize matches the buffered reader's internal capacity.
	DefaultBufferSize = bytesize.ByteSize(8 * bytesize.KiB)

	// DefaultMaxLineSize caps one line in line mode, sentinel included.
	DefaultMaxLineSize = bytesize.ByteSize(8 * bytesize.KiB)
)

// GetDefaultConfig returns a configuration populated entirely from defaults.
func GetDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in defaults for any unset values.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = DefaultLogOutput
	}

	if cfg.Copy.Mode == "" {
		cfg.Copy.Mode = DefaultMode
	}
	if cfg.Copy.BufferSize == 0 {
		cfg.Copy.BufferSize = DefaultBufferSize
	}
	if cfg.Copy.MaxLineSize == 0 {
		cfg.Copy.MaxLineSize = DefaultMaxLineSize
	}
}
