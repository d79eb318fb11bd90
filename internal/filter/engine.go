package filter

import (
	"fmt"
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"

	"go-jobradar-automation/internal/config"
	"go-jobradar-automation/internal/dedup"
	"go-jobradar-automation/internal/scraper"
)

const (
	PriorityHigh   = "high"
	PriorityNormal = "normal"
)

// MatchedJob is one accepted listing. SalaryCompliance is always true for
// emitted records since the salary filter runs before acceptance.
type MatchedJob struct {
	Title            string `json:"title"`
	MatchScore       int    `json:"match_score"`
	SalaryCompliance bool   `json:"salary_compliance"`
	Priority         string `json:"priority"`
	ValidUntil       string `json:"valid_until"`
}

type Stats struct {
	TotalScraped int    `json:"total_scraped"`
	Filtered     int    `json:"filtered"`
	MatchRate    string `json:"match_rate"`
}

type Result struct {
	MatchedJobs []MatchedJob `json:"matched_jobs"`
	Stats       Stats        `json:"stats"`
}

// Engine applies the configured filters to scraped jobs. The dedup cache
// and logger are injected so runs can be tested in isolation.
type Engine struct {
	cfg    *config.Config
	cache  *dedup.Cache
	logger *slog.Logger
}

func NewEngine(cfg *config.Config, cache *dedup.Cache, logger *slog.Logger) *Engine {
	return &Engine{cfg: cfg, cache: cache, logger: logger}
}

// FilterJobs runs every job through the filter chain in input order:
// blocklist, dedup, salary, location, skill match. The first failing filter
// skips the job with a logged reason. Accepted jobs are recorded in the
// dedup cache immediately, so a duplicate later in the same batch is
// rejected too. Only a cache write failure is fatal; a malformed field on a
// single job never aborts the batch.
func (e *Engine) FilterJobs(jobs []scraper.Job) (Result, error) {
	blocked := mapset.NewThreadUnsafeSet(e.cfg.BlocklistCompanies...)
	matched := make([]MatchedJob, 0, len(jobs))

	for _, job := range jobs {
		id := job.ID
		if id == "" {
			id = job.Title
		}

		if blocked.Contains(job.Company) {
			e.logger.Info("skip: company blocked", "job", id, "company", job.Company)
			continue
		}

		if e.cache.Contains(id) {
			e.logger.Info("skip: already processed", "job", id)
			continue
		}

		if !WithinSalary(job.Salary, *e.cfg.SalaryRange) {
			e.logger.Info("skip: salary out of range", "job", id, "salary", salaryValue(job.Salary))
			continue
		}

		if !WithinRadius(job.Location, e.cfg.Locations) {
			e.logger.Info("skip: location not desired", "job", id, "location", job.Location)
			continue
		}

		score := SkillMatchScore(job.Skills, e.cfg.RequiredSkills)
		if score < SkillThreshold {
			e.logger.Info("skip: low skill match", "job", id, "score", score)
			continue
		}

		priority := PriorityNormal
		if IsPriority(job.Description) {
			priority = PriorityHigh
		}

		matched = append(matched, MatchedJob{
			Title:            job.Title,
			MatchScore:       score,
			SalaryCompliance: true,
			Priority:         priority,
			ValidUntil:       ConvertTime(job.ValidUntil, e.cfg.Timezone),
		})

		//record before moving on so a same-batch duplicate is caught above
		if err := e.cache.Record(id); err != nil {
			return Result{}, fmt.Errorf("recording accepted job %q: %w", id, err)
		}

		e.logger.Info("accepted", "job", id, "score", score, "priority", priority)
	}

	rate := "0%"
	if len(jobs) > 0 {
		rate = fmt.Sprintf("%d%%", len(matched)*100/len(jobs))
	}

	return Result{
		MatchedJobs: matched,
		Stats: Stats{
			TotalScraped: len(jobs),
			Filtered:     len(matched),
			MatchRate:    rate,
		},
	}, nil
}

func salaryValue(salary *int) any {
	if salary == nil {
		return "none"
	}
	return *salary
}
