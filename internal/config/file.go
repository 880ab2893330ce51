package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML config files.
type fileConfig struct {
	App struct {
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Sanity struct {
		ProjectID          string   `json:"project_id" yaml:"project_id"`
		Dataset            string   `json:"dataset" yaml:"dataset"`
		APIVersion         string   `json:"api_version" yaml:"api_version"`
		ReadToken          string   `json:"read_token" yaml:"read_token"`
		UseCDN             *bool    `json:"use_cdn" yaml:"use_cdn"`
		APIHost            string   `json:"api_host" yaml:"api_host"`
		UseProjectHostname *bool    `json:"use_project_hostname" yaml:"use_project_hostname"`
		RequestTimeout     Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"sanity" yaml:"sanity"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, files ending in .json (or without extension) as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	case ".json", "":
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}

	return &StructuredConfig{
		App: App{
			Version:  fc.App.Version,
			LogLevel: fc.App.LogLevel,
		},
		Sanity: Sanity{
			ProjectID:          fc.Sanity.ProjectID,
			Dataset:            fc.Sanity.Dataset,
			APIVersion:         fc.Sanity.APIVersion,
			ReadToken:          fc.Sanity.ReadToken,
			UseCDN:             fc.Sanity.UseCDN,
			APIHost:            fc.Sanity.APIHost,
			UseProjectHostname: fc.Sanity.UseProjectHostname,
			RequestTimeout:     time.Duration(fc.Sanity.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s" as well as plain nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!int" {
		var n int64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
