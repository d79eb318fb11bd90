package main

import (
	"fmt"
	"os"

	"go-jobradar-automation/internal/config"
)

// quick check that configs/config.yaml loads and validates
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("job titles:   %v\n", cfg.JobTitles)
	fmt.Printf("locations:    %v\n", cfg.Locations)
	fmt.Printf("skills:       %v\n", cfg.RequiredSkills)
	fmt.Printf("salary range: %d - %d\n", cfg.SalaryRange.Min, cfg.SalaryRange.Max)
	fmt.Printf("timezone:     %s\n", cfg.Timezone)
	fmt.Printf("cache path:   %s\n", cfg.CachePath)
	fmt.Println("config OK")
}
