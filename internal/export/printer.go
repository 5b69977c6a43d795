package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resumeforge/internal/builder"
	"github.com/jonathan/resumeforge/internal/logger"
	"github.com/jonathan/resumeforge/internal/preview"
	"github.com/jonathan/resumeforge/internal/rendering"
)

// HTMLSource produces the document to print at the moment of printing.
type HTMLSource func() (string, error)

// PreviewSource renders the store's current preview with r on every call.
func PreviewSource(store *builder.Store, r rendering.Renderer) HTMLSource {
	return func() (string, error) {
		return rendering.RenderString(r, preview.Build(store.Snapshot()))
	}
}

// RenderFunc turns HTML into PDF bytes. RenderPDF is the production implementation.
type RenderFunc func(ctx context.Context, html string, opts PageOptions) ([]byte, error)

// PDFPrinter prints the current preview to a PDF file.
type PDFPrinter struct {
	source     HTMLSource
	render     RenderFunc
	outputPath string
	opts       PageOptions
	log        *logger.Logger
}

// NewPDFPrinter creates a printer writing to outputPath via headless Chrome.
func NewPDFPrinter(source HTMLSource, outputPath string, opts PageOptions, log *logger.Logger) *PDFPrinter {
	if log == nil {
		log = logger.Nop()
	}
	return &PDFPrinter{
		source:     source,
		render:     RenderPDF,
		outputPath: outputPath,
		opts:       opts,
		log:        log,
	}
}

// WithRenderer swaps the HTML-to-PDF step.
func (p *PDFPrinter) WithRenderer(render RenderFunc) *PDFPrinter {
	p.render = render
	return p
}

// OutputPath is where Print writes.
func (p *PDFPrinter) OutputPath() string {
	return p.outputPath
}

// Print renders the preview and writes the PDF.
func (p *PDFPrinter) Print(ctx context.Context) error {
	html, err := p.source()
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	p.log.Debug("printing resume", "bytes", len(html), "output", p.outputPath)
	pdf, err := p.render(ctx, html, p.opts)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(p.outputPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(p.outputPath, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	p.log.Info("exported resume", "output", p.outputPath, "bytes", len(pdf))
	return nil
}

// FuncPrinter adapts a function to the printer capability.
type FuncPrinter func(ctx context.Context) error

// Print calls f.
func (f FuncPrinter) Print(ctx context.Context) error {
	return f(ctx)
}
