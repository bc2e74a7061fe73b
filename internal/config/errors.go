package config

import "errors"

// Errors describing config sources that were skipped by [Load]. They never
// prevent a config from being built.
var (
	// ErrParsingEnv indicates the environment could not be mapped onto the
	// config struct.
	ErrParsingEnv = errors.New("error getting env configs")
	// ErrParsingFlags indicates malformed command-line flags.
	ErrParsingFlags = errors.New("error parsing flags")
	// ErrReadingJSONConfig indicates the JSON config file could not be opened
	// or decoded.
	ErrReadingJSONConfig = errors.New("error reading json config file")
	// ErrReadingDotEnv indicates the .env file exists but could not be read
	// or parsed.
	ErrReadingDotEnv = errors.New("error reading .env file")
)
