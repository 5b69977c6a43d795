package main

import (
	"fmt"
	"io"

	"github.com/jonathan/resumeforge/internal/export"
	"github.com/jonathan/resumeforge/internal/observability"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf>",
	Short: "Show the pages and text of an exported resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var inspectContains []string

func init() {
	inspectCmd.Flags().StringArrayVar(&inspectContains, "contains", nil, "Fail unless the text contains this string (repeatable)")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	return inspect(cmd.OutOrStdout(), args[0], inspectContains)
}

func inspect(out io.Writer, path string, needles []string) error {
	doc, err := export.InspectFile(path)
	if err != nil {
		return err
	}
	observability.NewPrinter(out).PrintDocument(path, doc)

	for _, n := range needles {
		if !doc.Contains(n) {
			return fmt.Errorf("%s does not contain %q", path, n)
		}
	}
	return nil
}
