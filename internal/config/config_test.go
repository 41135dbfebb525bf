package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gradebook-go/pkg/gradebook"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/report"
)

var keys = []string{EnvMode, EnvHeaderScanRows, EnvInstitution, EnvLogLevel}

// unsetAll clears every gradebook variable for the test and restores it afterwards.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnvDefaults(t *testing.T) {
	unsetAll(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, report.DefaultInstitution, cfg.Institution)
	assert.Equal(t, gradebook.ModeStrictPattern, cfg.Options().Mode)
}

func TestFromEnvOverrides(t *testing.T) {
	unsetAll(t)
	t.Setenv(EnvMode, "keyword-exclusion")
	t.Setenv(EnvHeaderScanRows, "14")
	t.Setenv(EnvInstitution, "Example Institute")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "keyword-exclusion", cfg.Mode)
	assert.Equal(t, 14, cfg.HeaderScanRows)
	assert.Equal(t, "Example Institute", cfg.Institution)
	assert.Equal(t, "debug", cfg.LogLevel)

	opts := cfg.Options()
	assert.Equal(t, gradebook.ModeKeywordExclusion, opts.Mode)
	assert.Equal(t, 14, opts.HeaderScanRows)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvMode, "loose"},
		{EnvHeaderScanRows, "ten"},
		{EnvHeaderScanRows, "0"},
		{EnvLogLevel, "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			unsetAll(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestValidateReportsField(t *testing.T) {
	cfg := Default()
	cfg.Mode = "loose"

	err := cfg.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Mode", verrs[0].Field())
}

func TestLoadDotEnv(t *testing.T) {
	unsetAll(t)
	path := filepath.Join(t.TempDir(), "gradebook.env")
	content := EnvMode + "=keyword-exclusion\n" + EnvInstitution + "=\"Dotenv Institute\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "keyword-exclusion", cfg.Mode)
	assert.Equal(t, "Dotenv Institute", cfg.Institution)
}

func TestLoadDoesNotOverrideEnvironment(t *testing.T) {
	unsetAll(t)
	t.Setenv(EnvMode, "strict-pattern")
	path := filepath.Join(t.TempDir(), "gradebook.env")
	require.NoError(t, os.WriteFile(path, []byte(EnvMode+"=keyword-exclusion\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "strict-pattern", cfg.Mode)
}

func TestLoadMissingFileIgnored(t *testing.T) {
	unsetAll(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
