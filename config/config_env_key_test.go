package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"tokenTTL": "168h",
			"signIn": map[string]any{
				"ratePerMinute": 10,
			},
		},
		"secretKey": map[string]any{
			"jwt":        "",
			"encryption": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "AUTH_SIGNIN_RATEPERMINUTE", want: "auth.signIn.ratePerMinute"},
		{envKey: "SECRETKEY_JWT", want: "secretKey.jwt"},
		{envKey: "SECRETKEY_ENCRYPTION", want: "secretKey.encryption"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "admin", cfg.Auth.PrivilegedRole)
	assert.Equal(t, "regular", cfg.Auth.DefaultRole)
	assert.Equal(t, "SpecialSalt", cfg.Auth.Cipher.Salt)
	assert.Equal(t, 16384, cfg.Auth.Cipher.N)
	assert.Equal(t, 8, cfg.Auth.Cipher.R)
	assert.Equal(t, 1, cfg.Auth.Cipher.P)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Storage: StorageConfig{Driver: StorageDriverMemory},
		Auth: &AuthConfig{
			BcryptCost:     12,
			TokenTTL:       time.Hour,
			PrivilegedRole: "moderator",
		},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "moderator", cfg.Auth.PrivilegedRole)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing jwt secret", mutate: func(cfg *Config) { cfg.SecretKey.JWT = "" }, wantErr: true},
		{name: "missing encryption secret", mutate: func(cfg *Config) { cfg.SecretKey.Encryption = "" }, wantErr: true},
		{name: "unknown driver", mutate: func(cfg *Config) { cfg.Storage.Driver = "sqlite" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SecretKey: SecretKeyConfig{JWT: "jwt-secret", Encryption: "enc-secret"}}
			cfg.ApplyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
