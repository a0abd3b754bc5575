package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/sheetpick/sheetpick/pkg/errors"
)

// GenerateConfigContent generates the configuration file content with
// commented values, suitable for writing as a starting .sheetpick.toml.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// EffectiveTOML renders a resolved configuration as TOML.
func EffectiveTOML(cfg *Config) (string, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(data), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [input], [match]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
