// Package config loads and merges the go-snooze-client configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults.
//
// The merge is performed with dario.cat/mergo: sources are applied in
// priority order and a later source only fills fields that every earlier
// source left at their zero value. [GetClientConfig] is the single entry
// point used by the client binary.
package config
