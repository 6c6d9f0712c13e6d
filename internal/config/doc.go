// Package config provides environment-based configuration.
//
// Values come from environment variables, with a .env file loaded by the
// entrypoint in development. Required fields and numeric bounds are
// validated at load time so misconfiguration fails startup, not a request.
package config
