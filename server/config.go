package server

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/pysugar/invoker/errors"
)

const (
	DefaultBindAddress = "0.0.0.0"
	DefaultPort        = 9000
)

// Config describes where and how the worker listens.
type Config struct {
	// BindAddress is the interface to listen on. 0.0.0.0 means all of them.
	BindAddress string
	// Port is the TCP port. 0 picks an ephemeral one.
	Port int

	// H2C serves cleartext HTTP/2 next to HTTP/1.1.
	H2C bool
	// ProxyProtocol expects a PROXY v1/v2 header from the upstream proxy.
	ProxyProtocol      bool
	ProxyHeaderTimeout time.Duration

	// EnableInitializer also answers POST /initialize.
	EnableInitializer bool
	// Verbose dumps every request and response to the log.
	Verbose bool

	// Zero leaves the net/http defaults in place.
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration

	ShutdownTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		BindAddress:        DefaultBindAddress,
		Port:               DefaultPort,
		H2C:                true,
		ProxyHeaderTimeout: 3 * time.Second,
		ShutdownTimeout:    5 * time.Second,
	}
}

func (c Config) Address() string {
	return net.JoinHostPort(c.BindAddress, strconv.Itoa(c.Port))
}

func (c Config) Validate() error {
	var problems []error
	if c.BindAddress == "" {
		problems = append(problems, errors.New("bind address is empty"))
	}
	if c.Port < 0 || c.Port > 65535 {
		problems = append(problems, fmt.Errorf("port %d out of range [0, 65535]", c.Port))
	}
	if c.ProxyHeaderTimeout < 0 {
		problems = append(problems, fmt.Errorf("proxy header timeout %v is negative", c.ProxyHeaderTimeout))
	}
	return errors.Multi(errors.ErrConfig, problems)
}
