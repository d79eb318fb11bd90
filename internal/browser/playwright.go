package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"

// Manager owns the playwright driver and a headless Chromium instance.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

func NewManager() (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright driver: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args: []string{
			"--no-sandbox",
			"--disable-gpu",
			"--disable-blink-features=AutomationControlled",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	return &Manager{pw: pw, browser: browser}, nil
}

// NewPage opens a page in a fresh browser context with a desktop user agent.
func (m *Manager) NewPage() (playwright.Page, error) {
	ctx, err := m.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(userAgent),
	})
	if err != nil {
		return nil, fmt.Errorf("creating browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	return page, nil
}

func (m *Manager) Close() error {
	if m.browser != nil {
		if err := m.browser.Close(); err != nil {
			return err
		}
	}
	if m.pw != nil {
		return m.pw.Stop()
	}
	return nil
}
