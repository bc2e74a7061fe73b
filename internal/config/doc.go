// Package config provides configuration loading and merging for the
// application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Defaults
//
// The main entry point is [Load]. Environment access goes through an
// [EnvReader] so that callers and tests decide where variables come from.
package config
