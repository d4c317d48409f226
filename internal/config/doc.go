// Package config provides configuration loading for lan-address-gen.
//
// Settings come from an optional TOML file, by default
// $XDG_CONFIG_HOME/lan-address-gen/config.toml:
//
//	salt    = "s3cret"
//	pattern = "10"
//
//	[probe]
//	method       = "icmp" # or "exec" (system ping)
//	timeout      = "1s"
//	max_attempts = 0      # 0 walks until a free address is found
//
// Command-line flags override the file. The salt additionally falls back to
// the LAN_ADDRESS_SALT environment variable (see Config.ApplyEnv), so the
// precedence for the salt is: --salt, LAN_ADDRESS_SALT, file, empty.
//
// Files are read through system.FileSystem, which tests replace with
// system.MockFS.
package config
