// Package config manages user-level settings stored at ~/.stencil/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the installer tool name and the default requirement and manifest file paths.
package config
