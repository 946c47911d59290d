package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the command-line client.
type ClientConfig struct {
	// Address of the API, e.g. "localhost:8080" or "https://api.example.com".
	// Env: SKILLVANCE_API_ADDRESS
	Address string `env:"SKILLVANCE_API_ADDRESS"`

	// RequestTimeout bounds every request sent by the client.
	// Env: SKILLVANCE_API_TIMEOUT
	RequestTimeout time.Duration `env:"SKILLVANCE_API_TIMEOUT"`

	// Credentials used by commands that need an admin session.
	// Env: ADMIN_EMAIL, ADMIN_PASSWORD
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

func clientDefaults() *ClientConfig {
	return &ClientConfig{
		Address:        "localhost:8080",
		RequestTimeout: 15 * time.Second,
		Email:          DefaultAdminEmail,
		Password:       DefaultAdminPassword,
	}
}

// GetClientConfig builds the client configuration from the environment,
// the flags in args and defaults, in that order of precedence. The
// positional arguments left after the flags are returned as the command.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := new(ClientConfig)
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagCfg, command, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagCfg, clientDefaults()} {
		if err = mergo.Merge(cfg, src); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if cfg.RequestTimeout <= 0 {
		return nil, nil, fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return cfg, command, nil
}

// parseClientFlags parses the client flags from args.
//
// Flags:
//
//	-a API address
//	-t request timeout (e.g., "10s")
//	-e admin email
//	-p admin password
func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	cfg := new(ClientConfig)

	fs := flag.NewFlagSet("skillvance-client", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "a", "", "API address")
	fs.DurationVar(&cfg.RequestTimeout, "t", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.Email, "e", "", "Admin email")
	fs.StringVar(&cfg.Password, "p", "", "Admin password")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}
