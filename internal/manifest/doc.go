// Package manifest reads and writes the project dependency manifest
// (pyproject.toml). It loads the document tolerating absence, resets the
// dependency list during bootstrap, and validates generated configuration
// files against an embedded JSON schema for the doctor command.
package manifest
