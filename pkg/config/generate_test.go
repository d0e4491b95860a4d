package config

import (
	"strings"
	"testing"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_RoundTrips(t *testing.T) {
	cfg := defaults(t)
	cfg.Output.Format = FormatTable

	data, err := Generate(cfg)
	require.NoError(t, err)

	k := koanf.New(".")
	require.NoError(t, k.Load(&rawBytesProvider{bytes: data}, toml.Parser()))
	back, err := unmarshal(k)
	require.NoError(t, err)

	assert.Equal(t, cfg, back)
}

func TestGenerateTemplate(t *testing.T) {
	out := GenerateTemplate()

	assert.Contains(t, out, "[inputs]")
	assert.Contains(t, out, `# dir = "inputs"`)
	assert.Contains(t, out, "# expansion = 1000000")
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value: %q", line)
	}
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# header\n\n[section]\nkey = 1\n  other = \"x\"\n"
	want := "# header\n\n[section]\n# key = 1\n#   other = \"x\"\n"
	assert.Equal(t, want, commentOutConfigValues(in))
}
