package authctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParse(t *testing.T) {
	tok, err := Sign("secret", "u1", PurposeAccess, time.Hour, time.Now())
	require.NoError(t, err)

	uid, err := Parse("secret", tok, PurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)

	_, err = Parse("other", tok, PurposeAccess)
	assert.Error(t, err)
}

func TestParseRejectsOtherPurpose(t *testing.T) {
	tok, err := Sign("secret", "u1", PurposeReset, time.Hour, time.Now())
	require.NoError(t, err)

	_, err = Parse("secret", tok, PurposeAccess)
	assert.Error(t, err)

	uid, err := Parse("secret", tok, PurposeReset)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
}

func TestParseExpired(t *testing.T) {
	tok, err := Sign("secret", "u1", PurposeAccess, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = Parse("secret", tok, PurposeAccess)
	assert.Error(t, err)
}
