package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/idfwu/ccem/pkg/runtime/terminal/export"
	"github.com/idfwu/ccem/pkg/server"
	"github.com/idfwu/ccem/pkg/services/audit"
	"github.com/idfwu/ccem/pkg/store/status"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ServeCmd struct {
	env *Env
}

func NewServeCmd(env *Env) *cobra.Command {
	sc := &ServeCmd{env: env}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the issue document and audit status over HTTP (read-only)",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}

	cmd.Flags().String("host", "", "Interface to bind (default 127.0.0.1)")
	cmd.Flags().Int("port", 0, "Port to listen on (default 8080)")
	_ = env.Viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	_ = env.Viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}

func (sc *ServeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Msg("failed to load .env file")
	}

	settings := sc.env.Settings
	emitter, err := newEmitter(settings, export.NewIssueReporter(io.Discard))
	if err != nil {
		return err
	}
	if _, err := emitter.Document(ctx); err != nil {
		return err
	}

	store, err := status.NewStore(settings.StatusPath)
	if err != nil {
		return fmt.Errorf("failed to open status marker: %w", err)
	}
	notifier := audit.NewNotifier(store, export.NewAuditReporter(io.Discard))

	// .env values arrive after settings were loaded, so read the address again
	if err := sc.env.Viper.UnmarshalKey("server", &settings.Server); err != nil {
		return fmt.Errorf("failed to parse server settings: %w", err)
	}
	addr := settings.ServerAddr()
	fmt.Fprintf(cmd.OutOrStdout(), "Serving issue document on http://%s/api/v1/linear/issues\n", addr)

	webAPI := server.NewWebAPI(server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Issues: emitter,
			Audit:  notifier,
			Logger: *logger,
		},
	})
	return webAPI.Start(ctx)
}
