// Package file provides file-based configuration storage using TOML.
//
// Application settings (oracle provider and credentials, references
// directory, retrieval parameters) live in a single config.toml under the
// agent's config directory. A separate TOML file can override the
// built-in required-documents registry.
package file
