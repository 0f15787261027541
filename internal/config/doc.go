// Package config loads the server settings: defaults first, then an optional
// config.yaml, then NANI_-prefixed environment variables. The merged result is
// checked with validator tags before any component sees it.
package config
