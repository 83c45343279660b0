// Config loading for the pylaunch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/pylaunch/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyVenvDir          = "venv_dir"
	cfgKeyRequirementsFile = "requirements_file"
	cfgKeyIndexURL         = "index_url"
	cfgKeyRequiredImports  = "required_imports"
	cfgKeyRequiredPackages = "required_packages"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# pylaunch configuration

# Isolated environment directory created next to the script.
venv_dir: .venv

# Optional dependency manifest looked up next to the script. Its
# contents belong to pip, not to pylaunch.
requirements_file: requirements.txt

# Package index mirror every pip invocation is pointed at.
index_url: https://pypi.tuna.tsinghua.edu.cn/simple

# Import-time names checked before and after bootstrap.
required_imports:
  - rich
  - tomli

# Install-time names handed to pip when no manifest exists. Keep these
# parallel to required_imports.
required_packages:
  - rich
  - tomli
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on
// first run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyVenvDir, types.DefaultVenvDirName)
	v.SetDefault(cfgKeyRequirementsFile, types.DefaultRequirementsFile)
	v.SetDefault(cfgKeyIndexURL, types.DefaultIndexURL)
	v.SetDefault(cfgKeyRequiredImports, types.DefaultRequiredImports)
	v.SetDefault(cfgKeyRequiredPackages, types.DefaultRequiredPackages)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// buildLauncherConfig maps the viper view onto the launcher Config.
func buildLauncherConfig(v *viper.Viper) types.Config {
	return types.Config{
		VenvDirName:      v.GetString(cfgKeyVenvDir),
		RequirementsFile: v.GetString(cfgKeyRequirementsFile),
		IndexURL:         v.GetString(cfgKeyIndexURL),
		RequiredImports:  v.GetStringSlice(cfgKeyRequiredImports),
		RequiredPackages: v.GetStringSlice(cfgKeyRequiredPackages),
	}
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
