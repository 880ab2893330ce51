package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args on a dedicated FlagSet, so
// it can be called more than once per process (tests, warm serverless
// containers).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json or yaml file path with configs
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-project-id sanity project id
//	-dataset sanity dataset
//	-api-version sanity api version
//	-read-token sanity read token
//	-api-host sanity api host
//	-sanity-timeout sanity query timeout
//	-log-level log level
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout time.Duration
	var sanityCfg Sanity
	var logLevel string

	fs := flag.NewFlagSet("mywebclass-content", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON/YAML config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON/YAML config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.StringVar(&sanityCfg.ProjectID, "project-id", "", "Sanity project id")
	fs.StringVar(&sanityCfg.Dataset, "dataset", "", "Sanity dataset")
	fs.StringVar(&sanityCfg.APIVersion, "api-version", "", "Sanity API version")
	fs.StringVar(&sanityCfg.ReadToken, "read-token", "", "Sanity read token")
	fs.StringVar(&sanityCfg.APIHost, "api-host", "", "Sanity API host")
	fs.DurationVar(&sanityCfg.RequestTimeout, "sanity-timeout", 0, "Sanity query timeout (e.g., 5s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Sanity: sanityCfg,
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
