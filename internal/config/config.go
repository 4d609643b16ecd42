package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-doc-vault server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and development defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token signing
	// parameters.
	App App `envPrefix:"APP_" json:"app,omitempty"`

	// Storage holds configuration for the relational database and the
	// on-disk blob directory.
	Storage Storage `envPrefix:"STORAGE_" json:"storage,omitempty"`

	// Server holds network address settings for the HTTP server.
	Server Server `envPrefix:"SERVER_" json:"server,omitempty"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values that control token
// lifecycle and signing.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT session
	// tokens. Must be kept confidential; the development default must not
	// be relied on in production.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"token_sign_key"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" json:"token_issuer"`

	// TokenDuration specifies how long a session token remains valid
	// after issuance (e.g. "12h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" json:"-"`
}

// Storage groups the configuration for all persistence backends used by
// the application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_" json:"db,omitempty"`

	// Files holds the file-system storage settings for uploaded blobs.
	Files Files `envPrefix:"FILES_" json:"files,omitempty"`
}

// DB holds connection settings for the PostgreSQL backend. The DSN is
// assembled from discrete host/port/user/password/name values so that
// each can be overridden independently via the environment.
type DB struct {
	// Host is the database server hostname.
	// Env: STORAGE_DB_HOST
	Host string `env:"HOST" json:"host"`

	// Port is the database server TCP port.
	// Env: STORAGE_DB_PORT
	Port int `env:"PORT" json:"port"`

	// User is the connecting database principal.
	// Env: STORAGE_DB_USER
	User string `env:"USER" json:"user"`

	// Password is the database principal's password.
	// Env: STORAGE_DB_PASSWORD
	Password string `env:"PASSWORD" json:"password"`

	// Name is the target database to create (if permitted) and use.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME" json:"name"`
}

// DSN returns the PostgreSQL connection string for the target database.
func (d DB) DSN() string {
	return d.dsn(d.Name)
}

// AdminDSN returns a connection string against the "postgres"
// maintenance database, used at bootstrap to create the target database
// when it does not exist yet.
func (d DB) AdminDSN() string {
	return d.dsn("postgres")
}

func (d DB) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, database)
}

// Files holds file-system settings for the uploaded blob store.
type Files struct {
	// UploadDir is the directory where uploaded file content is stored
	// and served from. Created at startup if absent.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR" json:"upload_dir"`
}

// Server holds network settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. ":8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"http_address"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority
// order (first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Development defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
