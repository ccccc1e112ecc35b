// Package config carries the server's configuration. Everything the
// server needs is passed in explicitly; nothing is read from
// process-wide state.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPort     = 10000
	DefaultBindAddr = "127.0.0.1"
	DefaultDocRoot  = "webroot"
)

type Config struct {
	// Port is the TCP port to listen on.
	Port int `toml:"port"`
	// BindAddr is the IPv4 address to bind, loopback by default.
	BindAddr string `toml:"bind_addr"`
	// DocRoot is the directory every request path is resolved against.
	DocRoot string `toml:"doc_root"`
	// MimeOverrides optionally names a YAML file of extension-to-type
	// pairs consulted before the built-in table.
	MimeOverrides string `toml:"mime_overrides"`
	// AccessLog optionally names a SQLite database to record served
	// requests in. Empty disables access logging.
	AccessLog string `toml:"access_log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:     DefaultPort,
		BindAddr: DefaultBindAddr,
		DocRoot:  DefaultDocRoot,
	}
}

// Load reads a TOML file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}
