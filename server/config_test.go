package server_test

import (
	"testing"

	"github.com/pysugar/invoker/errors"
	. "github.com/pysugar/invoker/server"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "0.0.0.0:9000", cfg.Address())
	assert.True(t, cfg.H2C)
	assert.False(t, cfg.ProxyProtocol)
	assert.False(t, cfg.EnableInitializer)
	assert.Zero(t, cfg.ReadHeaderTimeout)
	assert.Zero(t, cfg.IdleTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfigAddressIPv6(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BindAddress = "::"
	assert.Equal(t, "[::]:9000", cfg.Address())
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BindAddress = ""
	cfg.Port = 70000

	err := cfg.Validate()
	assert.True(t, errors.Is(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "bind address is empty")
	assert.Contains(t, err.Error(), "port 70000 out of range")

	cfg = DefaultConfig()
	cfg.Port = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Port = 0
	assert.NoError(t, cfg.Validate())
}
