package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConf = `
[log]
level = "info"
mode = "console"

[api]
builder_url = "http://localhost:9001"
marketplace_url = "http://localhost:9002"
metadata_url = "http://localhost:9003"
indexer_url = "http://localhost:9004"

[cache]
ttl_seconds = 30

[project]
name = "easyswap"
project_id = 7

[[chain_supported]]
name = "eth"
chain_id = 1

[[chain_supported]]
name = "sepolia"
chain_id = 11155111
`

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUnmarshalConfig(t *testing.T) {
	c, err := UnmarshalConfig(writeConf(t, testConf))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9002", c.Api.MarketplaceURL)
	assert.Equal(t, 7, c.Project.ProjectID)
	require.Len(t, c.ChainSupported, 2)
	assert.Equal(t, "eth", c.ChainSupported[0].Name)
	assert.Equal(t, float64(30), c.Cache.TTL().Seconds())
}

func TestUnmarshalConfig_InvalidChain(t *testing.T) {
	conf := `
[api]
marketplace_url = "http://localhost:9002"

[[chain_supported]]
name = ""
chain_id = 1
`
	_, err := UnmarshalConfig(writeConf(t, conf))
	require.Error(t, err)
}

func TestCacheCfg_DefaultTTL(t *testing.T) {
	assert.Equal(t, float64(60), CacheCfg{}.TTL().Seconds())
}
