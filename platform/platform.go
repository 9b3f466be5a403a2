package platform

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	ServerBind          = "fc.server.bind"
	ServerPort          = "fc.server.port"
	ServerProxyProtocol = "fc.server.proxy_protocol"
	ServerH2C           = "fc.server.h2c"
	ServerInitializer   = "fc.server.initializer"
	ServerVerbose       = "fc.server.verbose"
)

type EnvFlag struct {
	Name    string
	AltName string
}

func NewEnvFlag(name string) EnvFlag {
	return EnvFlag{
		Name:    name,
		AltName: NormalizeEnvName(name),
	}
}

func (f EnvFlag) Lookup() (string, bool) {
	_, v, found := f.lookup()
	return v, found
}

func (f EnvFlag) lookup() (string, string, bool) {
	if v, found := os.LookupEnv(f.Name); found {
		return f.Name, v, true
	}
	if len(f.AltName) > 0 {
		if v, found := os.LookupEnv(f.AltName); found {
			return f.AltName, v, true
		}
	}
	return "", "", false
}

func (f EnvFlag) GetValue(defaultValue func() string) string {
	if v, found := f.Lookup(); found {
		return v
	}
	return defaultValue()
}

// LookupInt parses the variable when it is set. A malformed value is an error, not a default.
func (f EnvFlag) LookupInt() (int, bool, error) {
	name, s, found := f.lookup()
	if !found {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, true, fmt.Errorf("env %s=%q is not an integer", name, s)
	}
	return int(v), true, nil
}

// LookupBool accepts anything strconv.ParseBool does.
func (f EnvFlag) LookupBool() (bool, bool, error) {
	name, s, found := f.lookup()
	if !found {
		return false, false, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, true, fmt.Errorf("env %s=%q is not a boolean", name, s)
	}
	return v, true, nil
}

func NormalizeEnvName(name string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), ".", "_")
}
