// Package config handles loading and parsing the Pawboard configuration
// file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pawboard/config.toml
//  3. If the file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// A missing config file is NOT an error; Pawboard works out of the box.
//
// # TOML Format
//
// Example config.toml:
//
//	roster_url = "https://api.pawboard.app/v1/dogs"
//	fetch_timeout_seconds = 8
//
// Both fields are optional. Tilde expansion is performed on the config
// file path.
package config
