package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wireumb/umb/sizecheck"
)

var checkAllowShrink bool

var checkCmd = &cobra.Command{
	Use:   "check before-schema-file after-schema-file",
	Short: "Compare two schema files and report wire-footprint regressions",
	Long: "Compare two schema files and report wire-footprint regressions: messages that grew, " +
		"became multipart, or grew their packed-bool-byte count. Exits non-zero if any regression is found.",
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		before, err := compileSchemaFile(args[0])
		if err != nil {
			fail("%s", err)
		}
		after, err := compileSchemaFile(args[1])
		if err != nil {
			fail("%s", err)
		}

		var opts []sizecheck.CompareOption
		if checkAllowShrink {
			opts = append(opts, sizecheck.WithShrinkageReported())
		}

		report := sizecheck.Compare(before, after, opts...)
		if len(report.Findings) == 0 {
			fmt.Println("no footprint changes")
			return
		}

		for _, f := range report.Findings {
			fmt.Println(f)
		}
		if report.Regressed() {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkAllowShrink, "report-shrinkage", false, "also report messages whose footprint shrank")
}
