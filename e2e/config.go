package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

// Config points the scenarios at a running whisperd.
// Scenarios are skipped when WHISPERD_HTTP_ADDR is empty.
type Config struct {
	HTTPAddr string `envconfig:"WHISPERD_HTTP_ADDR"`
	GRPCAddr string `envconfig:"WHISPERD_GRPC_ADDR" default:"localhost:9090"`
	// E2E_DEBUG_JSON allows dumping full gRPC and HTTP bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool   `envconfig:"E2E_COLOURS" default:"true"`
	Zone    string `envconfig:"E2E_ZONE" default:"library"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
