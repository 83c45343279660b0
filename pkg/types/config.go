package types

import "errors"

// Defaults for a zero-configured launcher. RequiredImports holds
// import-time module names; RequiredPackages holds the names pip
// understands. The two lists describe the same logical dependencies and
// stay index-aligned.
var (
	DefaultRequiredImports  = []string{"rich", "tomli"}
	DefaultRequiredPackages = []string{"rich", "tomli"}
)

const (
	// DefaultVenvDirName is the environment directory created under
	// the script root.
	DefaultVenvDirName = ".venv"

	// DefaultRequirementsFile is the optional manifest consulted under
	// the script root. Its content is pip's business, not ours.
	DefaultRequirementsFile = "requirements.txt"

	// DefaultIndexURL is the package index mirror every pip invocation
	// is pointed at.
	DefaultIndexURL = "https://pypi.tuna.tsinghua.edu.cn/simple"
)

// Config holds the launcher settings consumed by the bootstrap
// procedure.
type Config struct {
	VenvDirName      string   `json:"venv_dir" yaml:"venv_dir"`
	RequirementsFile string   `json:"requirements_file" yaml:"requirements_file"`
	IndexURL         string   `json:"index_url" yaml:"index_url"`
	RequiredImports  []string `json:"required_imports" yaml:"required_imports"`
	RequiredPackages []string `json:"required_packages" yaml:"required_packages"`
}

// Config validation errors.
var (
	ErrVenvDirEmpty          = errors.New("venv directory name must not be empty")
	ErrIndexURLEmpty         = errors.New("index url must not be empty")
	ErrNoRequiredImports     = errors.New("required imports must not be empty")
	ErrPackageImportMismatch = errors.New("required packages must parallel required imports")
)

// DefaultConfig returns the launcher defaults, matching a config file
// that was never edited.
func DefaultConfig() Config {
	return Config{
		VenvDirName:      DefaultVenvDirName,
		RequirementsFile: DefaultRequirementsFile,
		IndexURL:         DefaultIndexURL,
		RequiredImports:  append([]string(nil), DefaultRequiredImports...),
		RequiredPackages: append([]string(nil), DefaultRequiredPackages...),
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.VenvDirName == "" {
		return ErrVenvDirEmpty
	}
	if c.IndexURL == "" {
		return ErrIndexURLEmpty
	}
	if len(c.RequiredImports) == 0 {
		return ErrNoRequiredImports
	}
	if len(c.RequiredPackages) != len(c.RequiredImports) {
		return ErrPackageImportMismatch
	}
	return nil
}
