// Package config manages user-level settings stored at ~/.meta-dds/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default package repository URL handed to dds.
package config
