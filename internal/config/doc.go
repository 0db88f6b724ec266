// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources. Each field takes the value
// of the first source that sets it:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (JSON, or TOML when the path ends in ".toml")
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
