// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/curioswitch/cookchat/assistant/internal/config"
)

const envPrefix = "COOKCHAT_"

type google struct {
	Project string `koanf:"project"`
}

// cliConfig is the subset of the server configuration the CLI needs.
type cliConfig struct {
	Google google       `koanf:"google"`
	Model  config.Model `koanf:"model"`
}

// loadConfig returns the defaults overridden by COOKCHAT_ environment variables,
// e.g. COOKCHAT_MODEL_PROVIDER=google or COOKCHAT_MODEL_AZURE_ENDPOINT=https://....
func loadConfig() (cliConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(cliConfig{Model: config.DefaultModel()}, "koanf"), nil); err != nil {
		return cliConfig{}, fmt.Errorf("main: loading default config: %w", err)
	}

	// Environment variables are upper snake case, map them back to the
	// camel case keys of the defaults.
	keys := make(map[string]string)
	for _, key := range k.Keys() {
		keys[strings.ToLower(key)] = key
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			path := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "_", ".")
			return keys[path], value
		},
	}), nil); err != nil {
		return cliConfig{}, fmt.Errorf("main: loading config from environment: %w", err)
	}

	var conf cliConfig
	if err := k.Unmarshal("", &conf); err != nil {
		return cliConfig{}, fmt.Errorf("main: unmarshalling config: %w", err)
	}
	return conf, nil
}
