// Package config manages user-level settings stored at
// $XDG_CONFIG_HOME/xrpicker/config.yaml. Every key can also be set through
// an XRPICKER_-prefixed environment variable.
package config
