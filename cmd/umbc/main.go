// Command umbc is the schema compiler driver: it turns a UMB schema source
// file into a compiled, analyzed model and can diff two compiled schemas for
// wire-footprint regressions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "umbc",
	Short: "umbc compiles and inspects UMB schema files",
	Long:  "umbc compiles and inspects UMB schema files",
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "umbc: error: "+format+"\n", args...)
	os.Exit(1)
}
