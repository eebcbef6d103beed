package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/windgap/sensoryprofile/cmd/cli/assess"
	"github.com/windgap/sensoryprofile/cmd/cli/export"
)

func init() {
	// A missing .env is fine; the defaults cover local use.
	_ = godotenv.Load()
	rootCmd.AddGroup(assess.Group)
	rootCmd.AddCommand(assess.Status, assess.Answer, assess.Note, assess.Dictate)
	rootCmd.AddGroup(export.Group)
	rootCmd.AddCommand(export.Text, export.PDF, export.Submit)
}

var rootCmd = &cobra.Command{
	Use:  "sensoryprofile-cli",
	Long: `Command line companion for the sensory profile assessment`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
