package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jonathan/resumeforge/internal/actions"
	"github.com/jonathan/resumeforge/internal/export"
	"github.com/jonathan/resumeforge/internal/observability"
	"github.com/jonathan/resumeforge/internal/preview"
	"github.com/jonathan/resumeforge/internal/rendering"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Apply a scripted list of form actions",
	Long:  "Reads a YAML or JSON script of form actions, applies them to a fresh resume, prints the preview, and optionally exports and verifies the PDF.",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

type replayOptions struct {
	Format     string
	Layout     string
	OutputPath string
	Export     bool
	Verify     bool
	Progress   bool
}

var replayOpts replayOptions

func init() {
	replayCmd.Flags().StringVarP(&replayOpts.Format, "format", "f", "text", "Preview format: text, html or latex")
	replayCmd.Flags().StringVarP(&replayOpts.Layout, "layout", "l", "", "Form layout, overrides the script and config")
	replayCmd.Flags().StringVarP(&replayOpts.OutputPath, "out", "o", "", "Path to exported PDF (default from config)")
	replayCmd.Flags().BoolVar(&replayOpts.Export, "export", false, "Export to PDF after the script runs")
	replayCmd.Flags().BoolVar(&replayOpts.Verify, "verify", false, "Read the exported PDF back and check it (implies --export)")
	replayCmd.Flags().BoolVar(&replayOpts.Progress, "progress", false, "Print the progress box after the preview")

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return replay(ctx, cmd.OutOrStdout(), args[0], replayOpts)
}

func replay(ctx context.Context, out io.Writer, path string, opts replayOptions) error {
	format, err := rendering.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	script, err := actions.LoadScript(path)
	if err != nil {
		return err
	}

	layout := opts.Layout
	if layout == "" {
		layout = script.Layout
	}
	a, err := newApp(appConfig, appLog, layout, opts.OutputPath)
	if err != nil {
		return err
	}

	appLog.Info("replaying script", "path", path, "actions", len(script.Actions))
	if err := a.session.Run(ctx, script.Actions); err != nil {
		return err
	}

	snapshot := a.session.Store.Snapshot()
	if err := a.renderers[format].Render(out, preview.Build(snapshot)); err != nil {
		return err
	}

	boxes := observability.NewPrinter(out)
	if opts.Progress {
		boxes.PrintProgress(a.session.View.Progress(), a.session.View.Active())
	}

	if !opts.Export && !opts.Verify {
		return nil
	}
	if _, err := a.session.Apply(ctx, actions.Action{Op: actions.OpExport}); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if !opts.Verify {
		return nil
	}

	doc, err := export.InspectFile(a.printer.OutputPath())
	if err != nil {
		return fmt.Errorf("failed to verify export: %w", err)
	}
	boxes.PrintDocument(a.printer.OutputPath(), doc)
	if doc.Pages == 0 {
		return fmt.Errorf("exported PDF %s has no pages", a.printer.OutputPath())
	}
	needles := preview.Build(snapshot).Blocks()
	for i, b := range needles {
		needles[i] = strings.ToUpper(b)
	}
	if name := snapshot.Personal.FullName; name != "" {
		needles = append(needles, name)
	}
	for _, n := range needles {
		if !doc.Contains(n) {
			return fmt.Errorf("exported PDF %s does not contain %q", a.printer.OutputPath(), n)
		}
	}
	return nil
}
