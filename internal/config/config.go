// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

const (
	// ProviderOpenAI selects the OpenAI chat completions API, or Azure OpenAI when an
	// Azure endpoint is configured.
	ProviderOpenAI = "openai"

	// ProviderGoogle selects the Gemini API.
	ProviderGoogle = "google"
)

type Azure struct {
	// Endpoint is the Azure OpenAI resource endpoint, e.g. https://cookchat.openai.azure.com.
	// When empty, the public OpenAI API is used.
	Endpoint string `koanf:"endpoint"`

	// APIVersion is the Azure OpenAI API version.
	APIVersion string `koanf:"apiVersion"`
}

// Model configures the language model used to answer messages no tool can handle.
type Model struct {
	// Provider is the model provider, one of "openai" or "google".
	Provider string `koanf:"provider"`

	// Name is the model name, or the deployment name for Azure OpenAI.
	Name string `koanf:"name"`

	Azure Azure `koanf:"azure"`
}

type Config struct {
	config.Common

	// Model is the configuration for the fallback model.
	Model Model `koanf:"model"`
}

// DefaultModel returns the model configuration used when none is provided.
func DefaultModel() Model {
	return Model{
		Provider: ProviderOpenAI,
		Name:     "gpt-4o-mini",
		Azure: Azure{
			APIVersion: "2024-12-01-preview",
		},
	}
}
