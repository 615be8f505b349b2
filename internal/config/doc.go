// Package config provides configuration management for bootware.
//
// Configuration is read from a single directory. The default directory is
// ~/.config/bootware; commands accept --config-path to point elsewhere.
//
// # Configuration File
//
// The directory may contain a config.yaml. When the file is absent the
// built-in defaults from GetDefaultConfig are used unchanged. When it is
// present it is decoded on top of the defaults, so only the keys that differ
// need to be written:
//
//	catalog: data/roles.json
//	linux_distros:
//	  version: v2
//	e2e:
//	  distros: [alpine, debian]
//	  runtimes: [podman, docker]
//	  image_tag: "docker.io/scruffaluff/bootware:{{ .Distro }}"
//
// # Linux Distro Sets
//
// The set of operating system names that count as "linux" for skip conditions
// and test selection has changed between releases. It is therefore expressed
// as a versioned value: linux_distros.version names a known set, while
// linux_distros.names overrides it with an explicit list.
//
// # Errors
//
// A malformed file or an invalid value yields a *ConfigurationError carrying
// the file path and the kind of failure.
package config
