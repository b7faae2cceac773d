package config

import (
	"embed"
	"os"
)

//go:embed tuning.yaml
var defaultsFS embed.FS

const defaultsName = "tuning.yaml"

// read prefers the disk copy so edited values take effect without a
// rebuild; the embedded file is the fallback.
func read(path string) ([]byte, error) {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}
	return defaultsFS.ReadFile(defaultsName)
}
