package filter

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"go-jobradar-automation/internal/config"
)

// SkillThreshold is the minimum match score a job must reach to survive
// filtering. Fixed on purpose: making it configurable would change what
// the filter observably accepts.
const SkillThreshold = 60

//priorityTerms is likewise a fixed constant, not a config knob
var priorityTerms = []string{"urgent", "immediate joiner", "priority"}

// SkillMatchScore is the percentage of required skills present in the job's
// skill list, case-insensitive, truncated to an integer. An empty job skill
// list always scores 0. requiredSkills must be non-empty; config validation
// guarantees that.
func SkillMatchScore(jobSkills, requiredSkills []string) int {
	if len(jobSkills) == 0 {
		return 0
	}

	have := mapset.NewThreadUnsafeSet[string]()
	for _, s := range jobSkills {
		have.Add(strings.ToLower(s))
	}
	want := mapset.NewThreadUnsafeSet[string]()
	for _, s := range requiredSkills {
		want.Add(strings.ToLower(s))
	}

	matched := have.Intersect(want).Cardinality()
	return matched * 100 / len(requiredSkills)
}

// WithinSalary reports whether the salary falls inside r. A listing without
// a salary figure never passes.
func WithinSalary(salary *int, r config.SalaryRange) bool {
	if salary == nil {
		return false
	}
	return r.Min <= *salary && *salary <= r.Max
}

// WithinRadius reports whether any target location is a case-insensitive
// substring of the job's location. An empty target list matches nothing.
func WithinRadius(location string, targets []string) bool {
	loc := strings.ToLower(location)
	for _, target := range targets {
		if strings.Contains(loc, strings.ToLower(target)) {
			return true
		}
	}
	return false
}

// IsPriority flags listings whose description carries urgency keywords.
func IsPriority(description string) bool {
	desc := strings.ToLower(description)
	for _, term := range priorityTerms {
		if strings.Contains(desc, term) {
			return true
		}
	}
	return false
}
