package cli

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/depscope/depscope/pkg/errors"
)

// Config holds the analysis settings loaded from a TOML file.
//
// The first four fields are required and validated for presence and type;
// the remaining toggles are optional and default to false so older config
// files keep loading.
type Config struct {
	PackageName        string `toml:"package_name"`
	RepositoryURL      string `toml:"repository_url"`
	TestRepositoryMode bool   `toml:"test_repository_mode"`
	ASCIITreeOutput    bool   `toml:"ascii_tree_output"`
	ReverseMode        bool   `toml:"reverse_mode"`
	GraphExport        bool   `toml:"graph_export"`
}

// requiredFields are validated for presence after decoding.
var requiredFields = []string{
	"package_name",
	"repository_url",
	"test_repository_mode",
	"ascii_tree_output",
}

// LoadConfig reads and validates the TOML configuration at path.
//
// Errors carry structured codes: CONFIG_NOT_FOUND when the file does not
// exist, INVALID_CONFIG for TOML syntax or type errors, MISSING_FIELD when
// a required field is absent, and INVALID_FIELD when a present field fails
// validation.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeConfigNotFound, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "stat %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	for _, field := range requiredFields {
		if !md.IsDefined(field) {
			return nil, errors.New(errors.ErrCodeMissingField, "missing required config field: %s", field)
		}
	}

	if strings.TrimSpace(cfg.PackageName) == "" {
		return nil, errors.New(errors.ErrCodeInvalidField,
			"invalid value %q for field %q: must be non-empty string", cfg.PackageName, "package_name")
	}
	if strings.TrimSpace(cfg.RepositoryURL) == "" {
		return nil, errors.New(errors.ErrCodeInvalidField,
			"invalid value %q for field %q: must be non-empty string", cfg.RepositoryURL, "repository_url")
	}

	return &cfg, nil
}
