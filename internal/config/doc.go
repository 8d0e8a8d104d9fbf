// Package config stores persistent user settings at ~/.rek/config.yaml via
// viper: default author and license for new packages and the path of the
// bootstrap requirements file. The file is validated against an embedded
// JSON schema on load so typos surface as warnings instead of silently
// ignored keys.
package config
