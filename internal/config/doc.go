// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//
// The main entry point is [GetStructuredConfig]. Sanity defaults
// (dataset "production", API version "2024-01-01") come from envDefault tags
// and are applied again by [Sanity.WithDefaults] for configs built by hand.
package config
