package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// configName is the base name of the local and global config files.
const configName = "procedure"

var (
	getEnv      = os.Getenv
	userHomeDir = os.UserHomeDir
)

// GlobalConfigPath resolves the global config file path using XDG conventions.
func GlobalConfigPath() (string, error) {
	if xdgHome := getEnv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, configName, "config.yaml"), nil
	}

	homeDir, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}

	return filepath.Join(homeDir, ".config", configName, "config.yaml"), nil
}

// LocalConfigPath returns the path of the config file in dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, configName+".yaml")
}
