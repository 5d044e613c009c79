package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestT(t *testing.T) {
	require.NoError(t, Init("id"))

	ctx := context.Background()
	assert.Equal(t, "Kuota cuti tahunan Anda sudah habis.", T(ctx, "error.quota_exhausted"))

	en := WithLocale(ctx, "en")
	assert.Equal(t, "Your annual leave (Cuti) quota is used up.", T(en, "error.quota_exhausted"))
	assert.Equal(t, "3 synced, 1 failed.", T(en, "flash.palm_synced", map[string]any{"Synced": 3, "Failed": 1}))

	assert.Equal(t, "no.such.message", T(en, "no.such.message"))
}

func TestMatch(t *testing.T) {
	require.NoError(t, Init("id"))

	assert.Equal(t, "en", Match("en-US,en;q=0.9"))
	assert.Equal(t, "id", Match("id-ID,id;q=0.9,en;q=0.5"))
	assert.Equal(t, "id", Match(""))
	assert.Equal(t, "id", Match("ja-JP"))
}
