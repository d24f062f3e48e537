package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/pairwise/internal/batch"
	"github.com/pablasso/pairwise/internal/display"
	"github.com/pablasso/pairwise/internal/survey"
	"github.com/pablasso/pairwise/internal/tui"
)

type batchFlags struct {
	baseline string
	exclude  []string
	useTUI   bool
}

func newBatchCmd(flags *globalFlags) *cobra.Command {
	bf := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compare every method folder against the baseline",
		Long: `Builds one survey per folder under the generation directory, each
compared against the baseline method. The baseline itself and folders whose
name contains an underscore are skipped. A failing pair is reported and the
batch moves on to the next one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, flags, bf)
		},
	}

	cmd.Flags().StringVarP(&bf.baseline, "baseline", "b", "", "Method every folder is compared against (default from config)")
	cmd.Flags().StringSliceVar(&bf.exclude, "exclude", nil, "Additional folder names to skip")
	cmd.Flags().BoolVar(&bf.useTUI, "tui", false, "Show an interactive progress view")
	return cmd
}

func runBatch(cmd *cobra.Command, flags *globalFlags, bf *batchFlags) error {
	cfg, logger, err := loadSettings(cmd, flags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cmd.Flags().Changed("baseline") {
		cfg.Baseline = bf.baseline
	}
	exclude := append(append([]string(nil), cfg.Exclude...), bf.exclude...)

	opts := batch.Options{
		GenerationDir: cfg.GenerationDir,
		OutputDir:     cfg.OutputDir,
		Baseline:      cfg.Baseline,
		Exclude:       exclude,
	}

	builderOpts := append(cfg.BuilderOptions(), survey.WithLogger(logger))
	runner := batch.New(survey.NewBuilder(builderOpts...)).WithLogger(logger)

	if bf.useTUI {
		_, err := tui.Run(cmd.Context(), runner, opts, tui.Options{})
		return err
	}

	_, err = runner.WithEvents(display.New(cmd.OutOrStdout())).Run(cmd.Context(), opts)
	return err
}
