package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/pairwise/internal/version"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath    string
	generationDir string
	outputDir     string
	seed          uint64
	verbose       bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "pairwise",
		Short: "Build paired image-comparison surveys",
		Long: `Pairwise turns two folders of generated images into a survey definition
where raters pick the better of two candidates for each prompt.`,
		Version:      version.String(),
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to a YAML config file (default ./pairwise.yaml if present)")
	pf.StringVarP(&flags.generationDir, "generation-dir", "g", "", "Directory holding method folders, index2prompt.json and reference images")
	pf.StringVarP(&flags.outputDir, "output-dir", "o", "", "Directory the survey JSON files are written to")
	pf.Uint64Var(&flags.seed, "seed", 0, "Seed for the left/right placement (0 = random)")
	pf.BoolVar(&flags.verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newBuildCmd(flags),
		newBatchCmd(flags),
		newCodesCmd(flags),
		newVersionCmd(),
	)
	return rootCmd
}

// ExecuteArgs runs the root command with the given arguments.
func ExecuteArgs(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
