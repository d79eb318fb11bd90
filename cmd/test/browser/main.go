package main

import (
	"fmt"
	"os"

	"go-jobradar-automation/internal/browser"
)

// smoke test for the playwright install: launch, load a page, report title
func main() {
	mgr, err := browser.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "browser start failed: %v\n", err)
		os.Exit(1)
	}
	defer mgr.Close()

	page, err := mgr.NewPage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "page creation failed: %v\n", err)
		os.Exit(1)
	}

	if _, err := page.Goto("https://example.com/"); err != nil {
		fmt.Fprintf(os.Stderr, "navigation failed: %v\n", err)
		os.Exit(1)
	}

	title, err := page.Title()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading title failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("browser OK, page title: %q\n", title)
}
