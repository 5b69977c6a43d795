// Package export prints the resume preview to PDF with headless Chrome and
// reads exported documents back for verification.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PageOptions controls the printed page. Sizes are in inches.
type PageOptions struct {
	PaperWidth  float64
	PaperHeight float64
	Margin      float64
	Landscape   bool
	Timeout     time.Duration
}

// DefaultPageOptions is US Letter with half-inch margins.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		PaperWidth:  8.5,
		PaperHeight: 11,
		Margin:      0.5,
		Timeout:     30 * time.Second,
	}
}

// PaperSizes maps the accepted paper names to width/height in inches.
var PaperSizes = map[string][2]float64{
	"letter": {8.5, 11},
	"legal":  {8.5, 14},
	"a4":     {8.27, 11.69},
}

// RenderPDF loads html into a headless browser and prints it.
// Requires Chrome/Chromium to be installed on the system.
func RenderPDF(ctx context.Context, html string, opts PageOptions) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultPageOptions().Timeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		// Replace the blank document with the rendered preview
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(opts.Landscape).
				WithPaperWidth(opts.PaperWidth).
				WithPaperHeight(opts.PaperHeight).
				WithMarginTop(opts.Margin).
				WithMarginBottom(opts.Margin).
				WithMarginLeft(opts.Margin).
				WithMarginRight(opts.Margin).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser print failed: %w", err)
	}

	return pdf, nil
}
