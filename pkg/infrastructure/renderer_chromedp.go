package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromedpOptions configures the headless browser used for printing.
type ChromedpOptions struct {
	ExecPath    string
	Timeout     time.Duration
	PaperWidth  float64 // inches
	PaperHeight float64 // inches
}

// ChromedpRenderer prints HTML pages to PDF with headless Chrome. The browser
// paginates overflowing content on its own.
type ChromedpRenderer struct {
	opts ChromedpOptions
}

func NewChromedpRenderer(opts ChromedpOptions) *ChromedpRenderer {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	// A4: 210mm x 297mm -> inches: 8.27 x 11.69
	if opts.PaperWidth <= 0 {
		opts.PaperWidth = 8.27
	}
	if opts.PaperHeight <= 0 {
		opts.PaperHeight = 11.69
	}
	return &ChromedpRenderer{opts: opts}
}

func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html []byte) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.opts.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, r.opts.Timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = r.printParams().Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return pdfBuf, nil
}

// printParams sizes the sheet from the configured paper. The page stylesheet
// only sets margins, so the CSS page size is not consulted.
func (r *ChromedpRenderer) printParams() *page.PrintToPDFParams {
	return page.PrintToPDF().
		WithPaperWidth(r.opts.PaperWidth).
		WithPaperHeight(r.opts.PaperHeight).
		WithPreferCSSPageSize(false)
}
