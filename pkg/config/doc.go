// Package config handles configuration management for bonsai.
// It supports loading configuration from multiple sources including
// TOML files, environment variables, and command-line flags, and
// produces one immutable Config value shared by the rule loader,
// the filter policy and the tree builder.
package config
