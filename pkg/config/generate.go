package config

import (
	"bytes"
	"strings"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Generate renders cfg as TOML
func Generate(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// GenerateTemplate returns the defaults file with every value commented out,
// ready to be saved as a user config
func GenerateTemplate() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues comments out assignment lines, keeping comments,
// blank lines and section headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
