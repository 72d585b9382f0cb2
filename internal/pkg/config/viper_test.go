package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
app:
  name: mailbridge
  server:
    cors: "http://a.test, ,http://b.test"
    http:
      read_timeout_seconds: 5
mail:
  integration: AWS
instrument:
  enabled: false
  trace_sample_ratio: 0.5
  log_mask_fields:
    - authorization
    - body
`

func TestNewViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	require.NoError(t, err)

	assert.Equal(t, "mailbridge", cfg.GetString("app.name"))
	assert.Equal(t, "AWS", cfg.GetString("mail.integration"))
	assert.False(t, cfg.GetBool("instrument.enabled"))
	assert.Equal(t, 0.5, cfg.GetFloat64("instrument.trace_sample_ratio"))
	assert.Equal(t, 5*time.Second, cfg.GetSecond("app.server.http.read_timeout_seconds"))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.GetArray("app.server.cors"))
	assert.Equal(t, []string{"authorization", "body"}, cfg.GetArray("instrument.log_mask_fields"))
	assert.Nil(t, cfg.GetArray("missing.key"))
	assert.NoError(t, cfg.Close())
}

func TestNewViperFromBytes_RequiresType(t *testing.T) {
	_, err := NewViperFromBytes(" ", []byte(testYAML))

	assert.ErrorIs(t, err, ErrConfigTypeRequired)
}

func TestViper_SetNotifiesCallbacks(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	require.NoError(t, err)

	var seen string
	cfg.OnChange(func() { seen = cfg.GetString("mail.integration") })
	cfg.OnChange(nil)

	cfg.Set("mail.integration", "OCI")

	assert.Equal(t, "OCI", seen)
}

func TestNewViper_File(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(testYAML), 0o600))

	cfg, err := NewViper(file)
	require.NoError(t, err)

	assert.Equal(t, "AWS", cfg.GetString("mail.integration"))
}

func TestNewViper_MissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}
