// Package config loads, normalizes, and validates Scribe's TOML
// configuration.
//
// Load resolves the config file (explicit path, then the user config dir,
// then a project-local scribe.toml), decodes it over repository defaults,
// expands ~ in every path field, and validates the result. Pipeline
// directories default to subdirectories of paths.base_dir so a single
// base_dir (or the --base-dir flag) is enough to relocate the whole tree.
//
// EnsureDirectories performs the pre-run directory bootstrap; the pipeline
// itself never creates its top-level directories.
package config
