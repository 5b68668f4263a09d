package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "medconnect",
	Short: "MedConnect - healthcare appointment booking",
	Long: `MedConnect manages a doctor catalog and patient appointments from
the command line. Sessions and booked appointments persist in Redis
between invocations; the doctor catalog is reseeded on every start, so
administrator edits last for the session only.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}
