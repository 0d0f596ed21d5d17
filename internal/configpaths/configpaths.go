// Package configpaths resolves where padlink looks for its config files.
package configpaths

import (
	"os"
	"path/filepath"
	"strings"
)

const baseName = "padlink"

// DefaultConfigDir returns the per-user config directory for padlink.
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName), nil
}

// ConfigCandidatePaths returns JSON, YAML and TOML config file candidates in
// priority order. An explicit userCfg path goes first in the list matching
// its extension; files without a known extension are tried as every format.
func ConfigCandidatePaths(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userCfg != "" {
		switch strings.ToLower(filepath.Ext(userCfg)) {
		case ".json":
			jsonPaths = append(jsonPaths, userCfg)
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userCfg)
		case ".toml":
			tomlPaths = append(tomlPaths, userCfg)
		default:
			jsonPaths = append(jsonPaths, userCfg)
			yamlPaths = append(yamlPaths, userCfg)
			tomlPaths = append(tomlPaths, userCfg)
		}
	}

	var dirs []string
	if d, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, d)
	}
	if d, err := SystemConfigDir(); err == nil && (len(dirs) == 0 || d != dirs[0]) {
		dirs = append(dirs, d)
	}

	for _, d := range dirs {
		base := filepath.Join(d, baseName)
		jsonPaths = append(jsonPaths, base+".json")
		yamlPaths = append(yamlPaths, base+".yaml", base+".yml")
		tomlPaths = append(tomlPaths, base+".toml")
	}
	return jsonPaths, yamlPaths, tomlPaths
}
