package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"go-jobradar-automation/internal/browser"
	"go-jobradar-automation/internal/config"
	"go-jobradar-automation/internal/dedup"
	"go-jobradar-automation/internal/filter"
	"go-jobradar-automation/internal/logging"
	"go-jobradar-automation/internal/reporter"
	"go-jobradar-automation/internal/scraper"
	"go-jobradar-automation/internal/scraper/indeed"
)

const configPath = "configs/config.yaml"

func main() {
	logger := logging.New("")

	//load config, fail fast on anything missing
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger = logging.New(cfg.LogLevel)
	logger.Info("config loaded", "titles", cfg.JobTitles, "locations", cfg.Locations)

	//open the dedup cache for the whole run; a second concurrent run is
	//rejected here instead of racing on the store
	cache, err := dedup.Open(cfg.CachePath)
	if err != nil {
		logger.Error("opening dedup cache", "error", err)
		os.Exit(1)
	}
	defer cache.Close()
	logger.Info("dedup cache loaded", "known", cache.Len())

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	jobs := collectJobs(ctx, cfg, logger)
	logger.Info("jobs collected", "total", len(jobs))

	engine := filter.NewEngine(cfg, cache, logger)
	result, err := engine.FilterJobs(jobs)
	if err != nil {
		logger.Error("filtering failed", "error", err)
		os.Exit(1)
	}

	if err := saveResult(cfg.OutputPath, result); err != nil {
		logger.Error("writing output", "error", err)
		os.Exit(1)
	}
	logger.Info("results saved", "path", cfg.OutputPath)

	report(cfg, result, logger)

	logger.Info("run complete",
		"scraped", result.Stats.TotalScraped,
		"matched", result.Stats.Filtered,
		"match_rate", result.Stats.MatchRate,
	)
}

// collectJobs launches the browser and runs every configured scraper. A
// scraper failure loses that site's jobs, not the run.
func collectJobs(ctx context.Context, cfg *config.Config, logger *slog.Logger) []scraper.Job {
	mgr, err := browser.NewManager()
	if err != nil {
		logger.Error("starting browser", "error", err)
		os.Exit(1)
	}
	defer mgr.Close()

	page, err := mgr.NewPage()
	if err != nil {
		logger.Error("creating page", "error", err)
		os.Exit(1)
	}

	scrapers := []scraper.Scraper{
		indeed.NewIndeedScraper(cfg, logger),
	}

	var all []scraper.Job
	for _, s := range scrapers {
		jobs, err := s.Scrape(ctx, page)
		if err != nil {
			logger.Warn("scraper failed", "site", s.Name(), "error", err)
			continue
		}
		all = append(all, jobs...)
	}
	return all
}

func saveResult(path string, result filter.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func report(cfg *config.Config, result filter.Result, logger *slog.Logger) {
	if !reporter.Enabled(cfg) {
		return
	}

	rep, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		logger.Warn("telegram reporter unavailable", "error", err)
		return
	}

	for _, job := range result.MatchedJobs {
		if err := rep.SendJob(job); err != nil {
			logger.Warn("failed to send job to telegram", "job", job.Title, "error", err)
		}
		//1 second delay to avoid 429
		time.Sleep(1 * time.Second)
	}
	if err := rep.SendSummary(result.Stats); err != nil {
		logger.Warn("failed to send summary to telegram", "error", err)
	}
}
