package config

import (
	_ "embed"
)

//go:embed defaults/coil.yaml
var defaultConfigYAML []byte
