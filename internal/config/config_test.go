package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "DATABASE_URL=postgres://u:p@localhost/db\n" +
		"SUPABASE_URL=https://abc.supabase.co/\n" +
		"SUPABASE_ANON_KEY=anon\n" +
		"SESSION_SECRET=s3cret\n" +
		"SITE_URL=https://tiers.example.com/\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	cfg, err := Load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@localhost/db", cfg.DatabaseURL)
	assert.Equal(t, "https://abc.supabase.co", cfg.SupabaseURL)
	assert.Equal(t, "https://tiers.example.com", cfg.SiteURL)
	assert.Equal(t, "https://tiers.example.com/api/auth/callback", cfg.CallbackURL())
	assert.True(t, cfg.SecureCookies())
	assert.Equal(t, "twitch", cfg.OAuthProvider)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.AutoMigrate)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("OAUTH_PROVIDER", "github")
	t.Setenv("AUTO_MIGRATE", "false")

	cfg, err := Load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "github", cfg.OAuthProvider)
	assert.False(t, cfg.AutoMigrate)
	assert.False(t, cfg.SecureCookies())
}

func TestValidate_ReportsMissingKeys(t *testing.T) {
	err := (&Config{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "SUPABASE_URL")
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}
