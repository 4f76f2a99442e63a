// Package config manages user-level settings stored at ~/.stackforge/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the preferred package manager used for the post-scaffold install step.
package config
