package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "churnlens",
	Short: "Employee churn risk in the terminal",
	Long: "churnlens scores an employee profile with a pre-trained classifier and shows the churn " +
		"probability with tiered retention recommendations.\n\n" +
		"Configuration comes from the YAML file named by CHURNLENS_CONFIG and from CHURNLENS_* " +
		"environment variables (CHURNLENS_MODEL_PATH, CHURNLENS_DATASET_PATH, CHURNLENS_LOG_LEVEL, " +
		"CHURNLENS_LOG_FILE, CHURNLENS_LOCALE).",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
}
