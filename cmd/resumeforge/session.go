package main

import (
	"fmt"
	"time"

	"github.com/jonathan/resumeforge/internal/actions"
	"github.com/jonathan/resumeforge/internal/builder"
	"github.com/jonathan/resumeforge/internal/config"
	"github.com/jonathan/resumeforge/internal/export"
	"github.com/jonathan/resumeforge/internal/logger"
	"github.com/jonathan/resumeforge/internal/rendering"
	"github.com/jonathan/resumeforge/internal/view"
)

// pdfRenderer is swapped out by tests that have no browser.
var pdfRenderer export.RenderFunc = export.RenderPDF

// pageOptions maps config values onto the print settings.
func pageOptions(cfg config.Config) (export.PageOptions, error) {
	opts := export.DefaultPageOptions()
	if cfg.Paper != "" {
		size, ok := export.PaperSizes[cfg.Paper]
		if !ok {
			return opts, fmt.Errorf("unknown paper size %q", cfg.Paper)
		}
		opts.PaperWidth, opts.PaperHeight = size[0], size[1]
	}
	if cfg.MarginInches != nil {
		opts.Margin = *cfg.MarginInches
	}
	if cfg.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	opts.Landscape = cfg.Landscape
	return opts, nil
}

// loadRenderers builds one renderer per format, honouring template overrides.
func loadRenderers(cfg config.Config) (map[rendering.Format]rendering.Renderer, error) {
	renderers := make(map[rendering.Format]rendering.Renderer, len(rendering.Formats))
	for _, f := range rendering.Formats {
		r, err := rendering.New(f, cfg.Templates[string(f)])
		if err != nil {
			return nil, err
		}
		renderers[f] = r
	}
	return renderers, nil
}

// app bundles everything one editing session needs.
type app struct {
	session   *actions.Session
	printer   *export.PDFPrinter
	renderers map[rendering.Format]rendering.Renderer
}

// newApp wires a fresh store, its controller and the PDF printer.
// Empty layout and outputPath fall back to the configured values.
func newApp(cfg config.Config, log *logger.Logger, layout, outputPath string) (*app, error) {
	if layout == "" {
		layout = cfg.Layout
	}
	l, err := view.ParseLayout(layout)
	if err != nil {
		return nil, err
	}
	if outputPath == "" {
		outputPath = cfg.OutputPath
	}

	opts, err := pageOptions(cfg)
	if err != nil {
		return nil, err
	}
	renderers, err := loadRenderers(cfg)
	if err != nil {
		return nil, err
	}

	store := builder.New()
	printer := export.NewPDFPrinter(
		export.PreviewSource(store, renderers[rendering.FormatHTML]),
		outputPath, opts, log,
	).WithRenderer(pdfRenderer)
	ctrl := view.New(store, printer, l)

	return &app{
		session:   actions.NewSession(store, ctrl, log),
		printer:   printer,
		renderers: renderers,
	}, nil
}
