package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/pairwise/internal/display"
	"github.com/pablasso/pairwise/internal/survey"
)

func newBuildCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "build <method-a> <method-b>",
		Short: "Build one comparison survey between two methods",
		Long: `Pairs every image the two method folders have in common, looks up its
prompt in index2prompt.json and writes <output-dir>/<method-a>-<method-b>.json.
Left/right placement is drawn independently for every page.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, flags, args[0], args[1])
		},
	}
}

func runBuild(cmd *cobra.Command, flags *globalFlags, methodA, methodB string) error {
	cfg, logger, err := loadSettings(cmd, flags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := append(cfg.BuilderOptions(), survey.WithLogger(logger))
	builder := survey.NewBuilder(opts...)

	path, doc, err := builder.BuildDocument(methodA, methodB, cfg.GenerationDir, cfg.OutputDir)
	if err != nil {
		return err
	}
	display.New(cmd.OutOrStdout()).Created(path, len(doc.Pages))
	return nil
}
