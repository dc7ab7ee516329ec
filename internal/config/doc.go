// Package config loads the YAML configuration shared by the guide server
// and the mdguide CLI.
package config
