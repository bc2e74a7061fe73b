package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs    []*StructuredConfig
	dotEnvPath string
	err        error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:    make([]*StructuredConfig, 0, 4),
		dotEnvPath: DotEnvFile,
	}
}

// build merges the collected configs (earlier ones win) and fills the
// remaining zero fields with defaults. The config is returned even when some
// sources were skipped; b.err then describes them.
func (b *configBuilder) build() (*StructuredConfig, error) {
	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("error merging configs: %w", err))
		}
	}

	if err := mergo.Merge(config, defaultConfig(config.App.Environment)); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error merging default configs: %w", err))
	}

	if b.err != nil {
		return config, fmt.Errorf("some config sources were skipped: %w", b.err)
	}

	return config, nil
}

func (b *configBuilder) withEnv(readEnv EnvReader) *configBuilder {
	if readEnv == nil {
		readEnv = OSEnv
	}

	readEnv, err := WithDotEnv(readEnv, b.dotEnvPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
	}

	envCfg, err := parseEnv(readEnv)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	// the first source naming a file wins, same as for every other field
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
