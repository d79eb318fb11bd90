package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobradar-automation/internal/config"
)

func TestSkillMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		job      []string
		required []string
		expected int
	}{
		{
			name:     "empty job skills score zero",
			job:      nil,
			required: []string{"python", "sql"},
			expected: 0,
		},
		{
			name:     "full match",
			job:      []string{"Python", "SQL", "AWS"},
			required: []string{"python", "sql"},
			expected: 100,
		},
		{
			name:     "half match",
			job:      []string{"python"},
			required: []string{"python", "sql"},
			expected: 50,
		},
		{
			name:     "truncated not rounded",
			job:      []string{"go"},
			required: []string{"go", "sql", "docker"},
			expected: 33,
		},
		{
			name:     "case insensitive",
			job:      []string{"PYTHON", "Sql"},
			required: []string{"python", "sql"},
			expected: 100,
		},
		{
			name:     "no overlap",
			job:      []string{"java"},
			required: []string{"python", "sql"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SkillMatchScore(tt.job, tt.required))
		})
	}
}

func TestWithinSalary(t *testing.T) {
	r := config.SalaryRange{Min: 50000, Max: 100000}
	salary := func(v int) *int { return &v }

	assert.False(t, WithinSalary(nil, r), "missing salary never passes")
	assert.False(t, WithinSalary(salary(49999), r))
	assert.True(t, WithinSalary(salary(50000), r), "min is inclusive")
	assert.True(t, WithinSalary(salary(75000), r))
	assert.True(t, WithinSalary(salary(100000), r), "max is inclusive")
	assert.False(t, WithinSalary(salary(100001), r))
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, WithinRadius("Pune, MH", []string{"Pune"}))
	assert.True(t, WithinRadius("pune, mh", []string{"PUNE"}), "case insensitive")
	assert.False(t, WithinRadius("Mumbai", []string{"Pune"}))
	assert.False(t, WithinRadius("Pune", nil), "empty target list matches nothing")
	assert.True(t, WithinRadius("Remote - Bengaluru", []string{"Pune", "Bengaluru"}))
}

func TestIsPriority(t *testing.T) {
	assert.True(t, IsPriority("URGENT hire for Q3"))
	assert.True(t, IsPriority("looking for an immediate joiner"))
	assert.True(t, IsPriority("high priority role"))
	assert.False(t, IsPriority("steady long-term position"))
	assert.False(t, IsPriority(""))
}
