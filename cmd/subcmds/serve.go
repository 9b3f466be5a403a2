package subcmds

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pysugar/invoker/cmd/base"
	"github.com/pysugar/invoker/errors"
	"github.com/pysugar/invoker/platform"
	"github.com/pysugar/invoker/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   `serve [-b 0.0.0.0] [-p 9000]`,
	Short: "Start the function worker",
	Long: `
Start the function worker and answer POST /invoke until terminated.

Every flag falls back to an environment variable, then to its default:

  --bind            FC_SERVER_BIND            0.0.0.0
  --port            FC_SERVER_PORT            9000
  --proxy-protocol  FC_SERVER_PROXY_PROTOCOL  false
  --h2c             FC_SERVER_H2C             true
  --initializer     FC_SERVER_INITIALIZER     false
  --verbose         FC_SERVER_VERBOSE         false

Start the worker: invoker serve --port=9000
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromCommand(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Start(ctx, cfg)
	},
}

func init() {
	registerServeFlags(serveCmd)
	base.AddSubCommands(serveCmd)
	base.SetDefaultCommand("serve")
}

func registerServeFlags(cmd *cobra.Command) {
	defaults := server.DefaultConfig()
	cmd.Flags().StringP("bind", "b", defaults.BindAddress, "interface to listen on")
	cmd.Flags().IntP("port", "p", defaults.Port, "TCP port to listen on")
	cmd.Flags().Bool("proxy-protocol", defaults.ProxyProtocol, "expect a PROXY protocol header from the upstream proxy")
	cmd.Flags().Bool("h2c", defaults.H2C, "serve cleartext HTTP/2")
	cmd.Flags().Bool("initializer", defaults.EnableInitializer, "also answer POST /initialize")
	cmd.Flags().BoolP("verbose", "V", defaults.Verbose, "Verbose mode")
}

// configFromCommand resolves every setting as flag, then environment, then default.
func configFromCommand(cmd *cobra.Command) (server.Config, error) {
	cfg := server.DefaultConfig()
	flags := cmd.Flags()

	cfg.BindAddress = platform.NewEnvFlag(platform.ServerBind).GetValue(func() string { return cfg.BindAddress })
	if err := envInt(platform.ServerPort, &cfg.Port); err != nil {
		return cfg, err
	}
	for name, dst := range map[string]*bool{
		platform.ServerProxyProtocol: &cfg.ProxyProtocol,
		platform.ServerH2C:           &cfg.H2C,
		platform.ServerInitializer:   &cfg.EnableInitializer,
		platform.ServerVerbose:       &cfg.Verbose,
	} {
		if err := envBool(name, dst); err != nil {
			return cfg, err
		}
	}

	var err error
	if flags.Changed("bind") {
		if cfg.BindAddress, err = flags.GetString("bind"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("port") {
		if cfg.Port, err = flags.GetInt("port"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("proxy-protocol") {
		if cfg.ProxyProtocol, err = flags.GetBool("proxy-protocol"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("h2c") {
		if cfg.H2C, err = flags.GetBool("h2c"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("initializer") {
		if cfg.EnableInitializer, err = flags.GetBool("initializer"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("verbose") {
		if cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func envInt(name string, dst *int) error {
	v, found, err := platform.NewEnvFlag(name).LookupInt()
	if err != nil {
		return errors.Single(errors.ErrConfig, err)
	}
	if found {
		*dst = v
	}
	return nil
}

func envBool(name string, dst *bool) error {
	v, found, err := platform.NewEnvFlag(name).LookupBool()
	if err != nil {
		return errors.Single(errors.ErrConfig, err)
	}
	if found {
		*dst = v
	}
	return nil
}
