package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/jonathan/resumeforge/internal/console"
	"github.com/jonathan/resumeforge/internal/rendering"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Fill in the resume form interactively",
	Long:  "Starts an interactive session: edit each section, check progress, preview the resume and export it to PDF once it is at least half complete.",
	Args:  cobra.NoArgs,
	RunE:  runEdit,
}

var (
	editLayout     string
	editOutputFile string
)

func init() {
	editCmd.Flags().StringVarP(&editLayout, "layout", "l", "", "Form layout: tabs or steps (default from config)")
	editCmd.Flags().StringVarP(&editOutputFile, "out", "o", "", "Path to exported PDF (default from config)")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, _ []string) error {
	a, err := newApp(appConfig, appLog, editLayout, editOutputFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	appLog.Debug("starting editor", "layout", a.session.View.Layout(), "output", a.printer.OutputPath())

	var opts []console.Option
	for _, f := range rendering.Formats {
		opts = append(opts, console.WithRenderer(a.renderers[f]))
	}
	if err := console.New(a.session, cmd.InOrStdin(), cmd.OutOrStdout(), opts...).Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		appLog.Error("editor stopped", "error", err)
		return err
	}
	return nil
}
