package config

import "time"

// defaultConfig returns the built-in development defaults. These exist so
// that a fresh checkout runs against a local PostgreSQL without any
// configuration; none of them are suitable for production use, the
// token sign key in particular.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "dev-secret-change-me",
			TokenIssuer:   "go-doc-vault",
			TokenDuration: 12 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				Host:     "localhost",
				Port:     5432,
				User:     "postgres",
				Password: "postgres",
				Name:     "doc_vault",
			},
			Files: Files{
				UploadDir: "uploads",
			},
		},
		Server: Server{
			HTTPAddress: ":8080",
		},
	}
}
