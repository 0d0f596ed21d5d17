//go:build windows

package configpaths

// SystemConfigDir returns the machine-wide config directory.
func SystemConfigDir() (string, error) {
	return DefaultConfigDir()
}
