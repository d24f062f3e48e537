package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/pairwise/internal/registry"
	"github.com/pablasso/pairwise/internal/tui/styles"
)

func newCodesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "Assign survey codes to the generated forms",
		Long: `Gives every survey file in the output directory a short participant code
and records the mapping in code-to-form.json. Existing codes are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCodes(cmd, flags)
		},
	}
}

func runCodes(cmd *cobra.Command, flags *globalFlags) error {
	cfg, logger, err := loadSettings(cmd, flags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	forms, err := registry.ListForms(cfg.OutputDir)
	if err != nil {
		return err
	}
	if len(forms) == 0 {
		return fmt.Errorf("no survey files found in %s", cfg.OutputDir)
	}

	reg, err := registry.Load(cfg.OutputDir)
	if err != nil {
		return err
	}
	assignments, err := reg.Assign(forms)
	if err != nil {
		return err
	}
	if err := reg.Save(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, a := range assignments {
		marker := ""
		if a.New {
			marker = styles.SuccessStyle.Render(" (new)")
		}
		fmt.Fprintf(out, "%s  %s%s\n", styles.MethodStyle.Render(a.Code), a.Form, marker)
	}
	fmt.Fprintf(out, "%s\n", styles.SubtleStyle.Render("Wrote "+reg.Path()))
	return nil
}
