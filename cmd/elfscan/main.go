package main

import (
	"os"

	"github.com/elf-tools/elfscan/lib/inspect"
	"github.com/elf-tools/elfscan/lib/logging"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "elfscan FILE...",
		Short: "Compare ELF headers across object files",
		Long: "elfscan decodes the leading header of each given file and prints " +
			"the fields side by side, one column per file. Files that are not " +
			"ELF are reported on their own line.",
		Args: cobra.MinimumNArgs(1),
		Run:  run,
	}
	rootCmd.Flags().Bool("debug", false, "Print debug logs")

	if err := rootCmd.Execute(); err != nil {
		logging.Fatalf("elfscan: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logging.SetDebugLevel(3)
	}

	report := inspect.Run(args)
	for _, o := range report.Outcomes {
		if o.Err != nil {
			logging.Debugf("%s: %v", o.Path, o.Err)
		}
	}
	report.Render(os.Stdout)

	// scripts can tell "nothing decoded" apart from a partial report
	if len(report.Headers()) == 0 {
		os.Exit(1)
	}
}
