package main

import (
	"github.com/dmitrymomot/formkit/pkg/httpserver"
)

// envPrefix is prepended to every configuration variable.
const envPrefix = "FORMCHECK_"

// Config is loaded from FORMCHECK_* variables; flags override it.
type Config struct {
	SchemaFile   string `env:"SCHEMA_FILE"`
	MessagesFile string `env:"MESSAGES_FILE"`
	Lang         string `env:"LANG" envDefault:"en"`
	MaxDepth     int    `env:"MAX_DEPTH" envDefault:"64"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`

	// TrustedIPHeaders are proxy headers trusted to carry the client address.
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`

	HTTP httpserver.Config
}
