// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied when the corresponding setting is not provided by any
// configuration source.
const (
	// DefaultDataset is the Sanity dataset queried when SANITY_DATASET is unset.
	DefaultDataset = "production"

	// DefaultAPIVersion is the dated Sanity API version used when
	// SANITY_API_VERSION is unset.
	DefaultAPIVersion = "2024-01-01"

	// DefaultAPIHost is the public Sanity API host.
	DefaultAPIHost = "https://api.sanity.io"

	// DefaultHTTPAddress is where the local server listens when no address
	// is configured.
	DefaultHTTPAddress = "localhost:8888"
)

// StructuredConfig is the top-level configuration container for the
// mywebclass-content binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is absent.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// log level.
	App App `envPrefix:"APP_"`

	// Sanity holds everything needed to reach the Sanity content API.
	Sanity Sanity `envPrefix:"SANITY_"`

	// Server holds network address and timeout settings for the local HTTP
	// server. The serverless entrypoint ignores it.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint and sent to
	// Sanity in the User-Agent header.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Empty means debug.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Sanity holds connection settings for the Sanity content API.
type Sanity struct {
	// ProjectID identifies the Sanity project. There is no default; an
	// empty value makes every content request fall back to static content.
	// Env: SANITY_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// Dataset is the dataset to query.
	// Env: SANITY_DATASET
	Dataset string `env:"DATASET" envDefault:"production"`

	// APIVersion is the dated API version (YYYY-MM-DD), "1" or "X".
	// Env: SANITY_API_VERSION
	APIVersion string `env:"API_VERSION" envDefault:"2024-01-01"`

	// ReadToken is an optional read token. Public datasets do not need one.
	// Env: SANITY_READ_TOKEN
	ReadToken string `env:"READ_TOKEN"`

	// UseCDN routes queries through the Sanity API CDN. nil means enabled.
	// Env: SANITY_USE_CDN
	UseCDN *bool `env:"USE_CDN"`

	// APIHost is the base API host (scheme included).
	// Env: SANITY_API_HOST
	APIHost string `env:"API_HOST" envDefault:"https://api.sanity.io"`

	// UseProjectHostname prefixes APIHost with the project id
	// (https://<project>.api.sanity.io). nil means enabled.
	// Env: SANITY_USE_PROJECT_HOSTNAME
	UseProjectHostname *bool `env:"USE_PROJECT_HOSTNAME"`

	// RequestTimeout bounds a single query. Zero means no explicit timeout.
	// Env: SANITY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the local HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// WithDefaults returns a copy of s with an empty address replaced by
// [DefaultHTTPAddress].
func (s Server) WithDefaults() Server {
	if s.HTTPAddress == "" {
		s.HTTPAddress = DefaultHTTPAddress
	}
	return s
}

// WithDefaults returns a copy of s with empty settings replaced by their
// defaults. Empty strings count as unset.
func (s Sanity) WithDefaults() Sanity {
	if s.Dataset == "" {
		s.Dataset = DefaultDataset
	}
	if s.APIVersion == "" {
		s.APIVersion = DefaultAPIVersion
	}
	if s.APIHost == "" {
		s.APIHost = DefaultAPIHost
	}
	return s
}

// CDNEnabled reports whether queries should go through the API CDN.
func (s Sanity) CDNEnabled() bool {
	return s.UseCDN == nil || *s.UseCDN
}

// ProjectHostnameEnabled reports whether the project id is used as a
// subdomain of APIHost.
func (s Sanity) ProjectHostnameEnabled() bool {
	return s.UseProjectHostname == nil || *s.UseProjectHostname
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON/YAML file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}

// GetEnvConfig reads only environment variables. Unlike
// [GetStructuredConfig] it always returns a config: variables that fail to
// parse keep their zero value and are reported in the returned error, while
// every other variable is still applied.
func GetEnvConfig() (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	return cfg, err
}
