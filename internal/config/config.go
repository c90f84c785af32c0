// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

type Grocery struct {
	// APIKey is the grocery ordering API credential. Ordering is disabled
	// for the whole process when empty.
	APIKey string `koanf:"apikey"`

	// Sandbox selects the sandbox endpoint instead of production.
	Sandbox bool `koanf:"sandbox"`

	// PartnerLinkbackURL is the linkback URL stamped on every order request.
	PartnerLinkbackURL string `koanf:"partnerlinkbackurl"`
}

type Chat struct {
	// ModelProvider is the inference backend, google-genai or openai.
	ModelProvider string `koanf:"modelprovider"`

	// Model is the model name to use with the provider.
	Model string `koanf:"model"`
}

type Config struct {
	config.Common

	// Grocery is the configuration for grocery ordering.
	Grocery Grocery `koanf:"grocery"`

	// Chat is the configuration for inference.
	Chat Chat `koanf:"chat"`
}
