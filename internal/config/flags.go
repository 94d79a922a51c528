// SPDX-License-Identifier: Apache-2.0

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base address, e.g. https://bitsofme.example.com
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name (debug, info, warn, ...)
//	-credential-path file to persist the session credential to
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var requestTimeout time.Duration
	var logLevel string
	var credentialPath string
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Server base address")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, ...)")
	flag.StringVar(&credentialPath, "credential-path", "", "Session credential file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			CredentialPath: credentialPath,
		},
		JSONFilePath: jsonConfigPath,
	}
}