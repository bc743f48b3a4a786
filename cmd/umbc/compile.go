package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wireumb/umb/schema"
)

var compileJSON bool

var compileCmd = &cobra.Command{
	Use:   "compile schema-file",
	Short: "Compile a schema file and print a summary of every message",
	Long:  "Compile a schema file and print a summary of every message: type id, static/dynamic size, bool-pack layout, and fingerprint",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := compileSchemaFile(args[0])
		if err != nil {
			fail("%s", err)
		}

		if compileJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(s); err != nil {
				fail("marshal compiled schema: %s", err)
			}
			return
		}

		printSummary(s)
	},
}

func init() {
	compileCmd.Flags().BoolVar(&compileJSON, "json", false, "dump the compiled schema as JSON instead of a text summary")
}

func compileSchemaFile(path string) (*schema.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := schema.LoadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	s, err := schema.Compile(doc)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return s, nil
}

func printSummary(s *schema.Schema) {
	fmt.Printf("fingerprint: %016x\n", s.Fingerprint)
	fmt.Printf("%-24s %6s %6s %-10s %s\n", "MESSAGE", "TYPE", "SIZE", "KIND", "NOTES")
	for _, a := range s.Messages {
		kind := "static"
		size := fmt.Sprintf("%d", a.StaticSize)
		notes := ""
		if !a.HasStaticSize {
			kind = "dynamic"
			size = fmt.Sprintf(">=%d", a.StaticPart)
		} else if !a.AlwaysSinglePart {
			notes = "multipart"
		}
		if a.BoolPackBytes > 0 {
			if notes != "" {
				notes += ", "
			}
			notes += fmt.Sprintf("%d bool-pack byte(s)", a.BoolPackBytes)
		}
		fmt.Printf("%-24s %6d %6s %-10s %s\n", a.Name, a.TypeID, size, kind, notes)
	}
}
