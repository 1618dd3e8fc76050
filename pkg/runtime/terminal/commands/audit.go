package commands

import (
	"fmt"

	"github.com/idfwu/ccem/pkg/runtime/terminal/export"
	"github.com/idfwu/ccem/pkg/services/audit"
	"github.com/idfwu/ccem/pkg/store/status"
	"github.com/spf13/cobra"
)

type SecurityAuditCmd struct {
	env *Env
}

func NewSecurityAuditCmd(env *Env) *cobra.Command {
	sc := &SecurityAuditCmd{env: env}
	cmd := &cobra.Command{
		Use:   "security-audit",
		Short: "Show the post-merge security audit once per environment",
		Long: `Reads the hook payload from stdin and prints the security audit banner
unless it has already been shown. Intended to run as a post-merge hook;
always exits 0 unless the status marker cannot be written.`,
		Args: cobra.NoArgs,
		RunE: sc.run,
	}

	cmd.Flags().String("status-file", "", "Path to the status marker (default ~/.claude/ccem/security-audit-status.json)")
	_ = env.Viper.BindPFlag("status_path", cmd.Flags().Lookup("status-file"))

	return cmd
}

func (sc *SecurityAuditCmd) run(cmd *cobra.Command, _ []string) error {
	store, err := status.NewStore(sc.env.Settings.StatusPath)
	if err != nil {
		return fmt.Errorf("failed to open status marker: %w", err)
	}

	notifier := audit.NewNotifier(store, export.NewAuditReporter(cmd.OutOrStdout()))
	_, err = notifier.Run(cmd.Context(), sc.env.Stdin)
	return err
}
