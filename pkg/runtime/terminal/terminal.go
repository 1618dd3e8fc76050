package terminal

import (
	"context"
	"io"
	"os"

	"github.com/idfwu/ccem/pkg/runtime/terminal/commands"
	"github.com/idfwu/ccem/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env       *commands.Env
	home      string
	errOutput io.Writer
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Stdin     io.Reader
	Output    io.Writer
	ErrOutput io.Writer
	// Home roots the default status marker, profiles and config paths.
	Home string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{
		env: &commands.Env{
			Viper: config.NewViper(opts.Home),
			Stdin: opts.Stdin,
		},
		home:      opts.Home,
		errOutput: opts.ErrOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOutput)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args[1:], mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "ccem",
		Short:         "CCEM hooks and Linear issue tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(cli.env.Viper, cli.home, configPath)
			if err != nil {
				return err
			}
			level, err := settings.Level()
			if err != nil {
				return err
			}

			logger := zerolog.New(cli.errOutput).Level(level).With().Timestamp().Logger()
			cmd.SetContext(logger.WithContext(cmd.Context()))
			cli.env.Settings = settings

			logger.Debug().Str("command", cmd.Name()).Msg("settings loaded")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.claude/ccem/config.yaml when present)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default warn)")
	_ = cli.env.Viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(commands.NewSecurityAuditCmd(cli.env))
	cmd.AddCommand(commands.NewLinearIssuesCmd(cli.env))
	cmd.AddCommand(commands.NewServeCmd(cli.env))

	return cmd
}
