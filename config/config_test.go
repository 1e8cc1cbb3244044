package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := fromViper(newViper())
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, StorageMongo, cfg.Storage)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "mddrc1", cfg.DefaultParticipantPassword)
	assert.Equal(t, "Asia/Kuala_Lumpur", cfg.Timezone)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9100")
	t.Setenv("STORAGE", "MEMORY")
	t.Setenv("JWT_TTL", "2h")

	cfg, err := fromViper(newViper())
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"JWT_SECRET": ""}},
		{"placeholder secret", map[string]string{"JWT_SECRET": placeholderSecret}},
		{"unknown storage", map[string]string{"JWT_SECRET": "x", "STORAGE": "redis"}},
		{"bad timezone", map[string]string{"JWT_SECRET": "x", "TIMEZONE": "Mars/Olympus"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := fromViper(newViper())
			assert.Error(t, err)
		})
	}
}
