package utils

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// HTMLToPDF rasterizes a rendered document with headless Chrome. Letter
// size, backgrounds on, so the output matches the on-screen preview.
func HTMLToPDF(htmlContent string) ([]byte, error) {
	// Chrome needs a navigable URL, so stage the markup in a temp file.
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "document_"+time.Now().Format("20060102150405.000")+".html")
	if err := os.WriteFile(tmpHTML, []byte(htmlContent), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err := chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).   // Letter width
				WithPaperHeight(11.0). // Letter height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
