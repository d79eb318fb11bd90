package indeed

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"go-jobradar-automation/internal/browser"
	"go-jobradar-automation/internal/config"
	"go-jobradar-automation/internal/scraper"
	"go-jobradar-automation/utils"
)

type IndeedScraper struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewIndeedScraper(cfg *config.Config, logger *slog.Logger) *IndeedScraper {
	return &IndeedScraper{
		cfg:    cfg,
		logger: logger,
	}
}

func (s *IndeedScraper) Name() string {
	return "Indeed"
}

// Scrape visits one search results page per job title and location pair and
// collects the cards on the first page. Card-level extraction failures are
// skipped, not fatal; the filter engine copes with missing fields.
func (s *IndeedScraper) Scrape(ctx context.Context, page playwright.Page) ([]scraper.Job, error) {
	var allJobs []scraper.Job

	//screenshot debugger for block pages
	shot := utils.NewScreenShotDebugger(s.logger)

	for _, title := range s.cfg.JobTitles {
		for _, location := range s.cfg.Locations {
			select {
			case <-ctx.Done():
				return allJobs, ctx.Err()
			default:
			}

			url := searchURL(title, location)
			s.logger.Info("searching", "site", s.Name(), "title", title, "location", location)

			//navigate
			if _, err := page.Goto(url, playwright.PageGotoOptions{
				WaitUntil: playwright.WaitUntilStateDomcontentloaded,
				Timeout:   playwright.Float(30000),
			}); err != nil {
				s.logger.Warn("navigation failed", "url", url, "error", err)
				continue
			}

			//block page check
			if blocked(page) {
				shot.CaptureAndLog(page, "indeed-blocked", "Indeed: verification page detected, skipping search")
				continue
			}

			//human behavior, also triggers lazy loading
			browser.MouseJiggle(page)
			browser.HumanScroll(page)

			//wait for job cards
			cards := page.Locator("li.job_seen_beacon")
			if err := cards.First().WaitFor(playwright.LocatorWaitForOptions{
				Timeout: playwright.Float(10000),
			}); err != nil {
				s.logger.Warn("no job cards found", "title", title, "location", location)
				continue
			}

			count, err := cards.Count()
			if err != nil {
				s.logger.Warn("counting job cards failed", "error", err)
				continue
			}

			for i := 0; i < count; i++ {
				if job, ok := s.parseCard(cards.Nth(i)); ok {
					allJobs = append(allJobs, job)
				}
			}

			//be polite before the next search
			browser.RandomDelay(2000, 4000)
		}
	}

	s.logger.Info("scrape finished", "site", s.Name(), "jobs", len(allJobs))
	return allJobs, nil
}

func (s *IndeedScraper) parseCard(card playwright.Locator) (scraper.Job, bool) {
	title := textOf(card.Locator("h2.title"))
	if title == "" {
		return scraper.Job{}, false
	}

	id, err := card.GetAttribute("data-jk")
	if err != nil {
		id = ""
	}

	location := textOf(card.Locator("div.location"))
	if location == "" {
		location = "N/A"
	}

	return scraper.Job{
		ID:       cleanText(id),
		Title:    cleanText(title),
		Company:  cleanText(textOf(card.Locator("span.company"))),
		Location: cleanText(location),
		Salary:   parseSalary(textOf(card.Locator("span.salaryText"))),
		//skills, description and expiry need the detail page; left empty here
		Source: "Indeed",
	}, true
}

func searchURL(title, location string) string {
	q := strings.ReplaceAll(title, " ", "+")
	l := strings.ReplaceAll(location, " ", "+")
	return fmt.Sprintf("https://in.indeed.com/jobs?q=%s&l=%s", q, l)
}

func blocked(page playwright.Page) bool {
	title, err := page.Title()
	if err != nil {
		return false
	}
	for _, marker := range []string{"Just a moment", "Attention Required", "Cloudflare", "Additional Verification"} {
		if strings.Contains(title, marker) {
			return true
		}
	}
	return false
}

// textOf returns the trimmed text of the first match, "" when the element
// is absent.
func textOf(loc playwright.Locator) string {
	count, err := loc.Count()
	if err != nil || count == 0 {
		return ""
	}
	text, err := loc.First().TextContent()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

// parseSalary pulls the first rupee figure out of a salary snippet, eg
// "₹75,000 a month" -> 75000. Anything without a rupee sign is treated as
// no salary.
func parseSalary(text string) *int {
	if !strings.Contains(text, "₹") {
		return nil
	}
	cleaned := strings.NewReplacer("₹", "", ",", "").Replace(text)
	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return nil
	}
	value, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil
	}
	return &value
}

// cleanText normalizes scraped text: NFC form, control runes stripped,
// whitespace collapsed.
func cleanText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Cc)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.Join(strings.Fields(result), " ")
}
