package config

import "time"

// Fallback credentials of the bootstrap admin account.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer: "skillvance-api",
			Version:     "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "file:skillvance.db?_foreign_keys=on",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			PruneInterval: time.Hour,
		},
		Bootstrap: Bootstrap{
			AdminEmail:    DefaultAdminEmail,
			AdminPassword: DefaultAdminPassword,
		},
	}
}
