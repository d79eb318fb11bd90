// Define an interface for all scrapers
// Ensure consistency

package scraper

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

type Job struct {
	ID          string
	Title       string
	Company     string
	Location    string
	Salary      *int //nil when the listing shows no figure
	Skills      []string
	Description string
	ValidUntil  string //UTC expiry timestamp "2006-01-02T15:04:05Z", "" when the site gives none
	Source      string
}

//Scraper defines the interface that all site scrapers must implement
type Scraper interface {
	//Scrape jobs from the site
	Scrape(ctx context.Context, page playwright.Page) ([]Job, error)

	//Name is the site name (Indeed, ...)
	Name() string
}
