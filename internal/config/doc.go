// Package config assembles the server configuration from environment
// variables, command-line flags, an optional JSON file, and development
// defaults. Sources are merged with dario.cat/mergo in priority order;
// see [GetStructuredConfig] for the exact precedence.
package config
