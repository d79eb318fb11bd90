package utils

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ScreenShotDebugger captures full-page screenshots when a scraper hits a
// block page or an unexpected layout.
type ScreenShotDebugger struct {
	outputDir string
	logger    *slog.Logger
}

func NewScreenShotDebugger(logger *slog.Logger) *ScreenShotDebugger {
	dir := filepath.Join(".", "logs", "screenshots")
	os.MkdirAll(dir, 0755)
	return &ScreenShotDebugger{
		outputDir: dir,
		logger:    logger,
	}
}

func (s *ScreenShotDebugger) CaptureAndLog(page playwright.Page, name, message string) error {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", name, timestamp)
	path := filepath.Join(s.outputDir, filename)
	s.logger.Warn(message)

	//Take screenshot
	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		s.logger.Warn("failed to capture screenshot", "error", err)
		return err
	}

	s.logger.Info("screenshot saved", "path", path)
	return nil
}
