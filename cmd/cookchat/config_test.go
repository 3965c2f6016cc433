// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioswitch/cookchat/assistant/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultModel(), conf.Model)
	assert.Empty(t, conf.Google.Project)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("COOKCHAT_GOOGLE_PROJECT", "cookchat-test")
	t.Setenv("COOKCHAT_MODEL_PROVIDER", "google")
	t.Setenv("COOKCHAT_MODEL_NAME", "gemini-2.5-flash")
	t.Setenv("COOKCHAT_MODEL_AZURE_ENDPOINT", "https://cookchat.openai.azure.com")
	t.Setenv("COOKCHAT_MODEL_AZURE_APIVERSION", "2025-01-01-preview")
	t.Setenv("COOKCHAT_UNKNOWN_KEY", "ignored")

	conf, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "cookchat-test", conf.Google.Project)
	assert.Equal(t, config.Model{
		Provider: config.ProviderGoogle,
		Name:     "gemini-2.5-flash",
		Azure: config.Azure{
			Endpoint:   "https://cookchat.openai.azure.com",
			APIVersion: "2025-01-01-preview",
		},
	}, conf.Model)
}
