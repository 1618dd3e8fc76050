package commands

import (
	"fmt"

	"github.com/idfwu/ccem/pkg/runtime/terminal/export"
	"github.com/idfwu/ccem/pkg/services/config"
	"github.com/idfwu/ccem/pkg/services/issues"
	"github.com/idfwu/ccem/pkg/services/registry"
	"github.com/spf13/cobra"
)

type LinearIssuesCmd struct {
	env *Env
}

func NewLinearIssuesCmd(env *Env) *cobra.Command {
	lc := &LinearIssuesCmd{env: env}
	cmd := &cobra.Command{
		Use:   "linear-issues",
		Short: "Write the CCEM epic and phase issues for manual Linear import",
		Args:  cobra.NoArgs,
		RunE:  lc.run,
	}

	cmd.Flags().String("epic-description", "", "Markdown file with the epic description (default linear-epic-ccem.md)")
	cmd.Flags().String("output", "", "Output JSON file (default linear-issues-created.json)")
	cmd.Flags().String("profile", "", "Linear target profile from the profiles file")
	_ = env.Viper.BindPFlag("epic_description_path", cmd.Flags().Lookup("epic-description"))
	_ = env.Viper.BindPFlag("output_path", cmd.Flags().Lookup("output"))
	_ = env.Viper.BindPFlag("linear.profile", cmd.Flags().Lookup("profile"))

	return cmd
}

func (lc *LinearIssuesCmd) run(cmd *cobra.Command, _ []string) error {
	emitter, err := newEmitter(lc.env.Settings, export.NewIssueReporter(cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	return emitter.Run(cmd.Context())
}

func newEmitter(settings *config.Settings, reporter issues.Reporter) (*issues.Emitter, error) {
	target, err := registry.Resolve(settings.Linear.ProfilesPath, settings.Linear.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve Linear target: %w", err)
	}

	return issues.NewEmitter(issues.Config{
		Target:              target,
		EpicDescriptionPath: settings.EpicDescriptionPath,
		OutputPath:          settings.OutputPath,
	}, reporter), nil
}
