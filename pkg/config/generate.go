package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent generates the configuration file content with commented values
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines, comments and section headers as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
			(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
			result = append(result, line)
			continue
		}

		if strings.Contains(trimmed, "=") {
			result = append(result, "# "+line)
			continue
		}

		result = append(result, line)
	}

	return strings.Join(result, "\n")
}

// Marshal renders the effective configuration as TOML
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
