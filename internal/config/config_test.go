package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.Set("SESSION_SECRET", "test-session-secret")
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4000", cfg.API.BaseURL)
	assert.Equal(t, 3000, cfg.App.Port)
	assert.Equal(t, "memory", cfg.Session.Driver)
	assert.Equal(t, 15*time.Second, cfg.Poll.PendingInterval)
	assert.Equal(t, 30*time.Second, cfg.Poll.NotificationInterval)
	assert.Equal(t, 30*time.Second, cfg.Poll.ProfileInterval)
	assert.Equal(t, 800*time.Millisecond, cfg.App.ViewSwitchDelay)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
}

func TestFromViper_TrimsAPIURL(t *testing.T) {
	v := newTestViper()
	v.Set("API_URL", "https://hr.example.com/")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "https://hr.example.com", cfg.API.BaseURL)
}

func TestValidate_Failures(t *testing.T) {
	cases := []struct {
		name  string
		setup func(v *viper.Viper)
	}{
		{"missing secret", func(v *viper.Viper) { v.Set("SESSION_SECRET", "") }},
		{"unknown driver", func(v *viper.Viper) { v.Set("SESSION_DRIVER", "etcd") }},
		{"postgres without password", func(v *viper.Viper) { v.Set("SESSION_DRIVER", "postgres") }},
		{"poll too fast", func(v *viper.Viper) { v.Set("POLL_PENDING_INTERVAL", "100ms") }},
		{"bad device key", func(v *viper.Viper) { v.Set("DEVICE_SECRET_KEY", "c2hvcnQ=") }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := newTestViper()
			c.setup(v)
			_, err := fromViper(v)
			assert.Error(t, err)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a , ,b "))
}
