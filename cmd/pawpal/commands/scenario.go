package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/pawpal/pawpal/internal/models"
	"gopkg.in/yaml.v3"
)

// scenarioFile is the YAML shape for a planning scenario: one owner, one pet
// and their candidate tasks.
type scenarioFile struct {
	Owner struct {
		Name           string  `yaml:"name"`
		AvailableHours float64 `yaml:"available_hours"`
	} `yaml:"owner"`
	Pet struct {
		Name         string   `yaml:"name"`
		Species      string   `yaml:"species"`
		Age          int      `yaml:"age"`
		SpecialNeeds []string `yaml:"special_needs"`
	} `yaml:"pet"`
	Tasks []scenarioTask `yaml:"tasks"`
}

type scenarioTask struct {
	Name            string  `yaml:"name"`
	Category        string  `yaml:"category"`
	DurationMinutes float64 `yaml:"duration_minutes"`
	Priority        int     `yaml:"priority"`
	PreferredTime   string  `yaml:"preferred_time"`
	Notes           string  `yaml:"notes"`
	Frequency       string  `yaml:"frequency"`
	DueDate         string  `yaml:"due_date"`
}

// loadScenario reads and validates a scenario file
func loadScenario(path string) (*models.Owner, *models.Pet, []*models.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	owner, err := models.NewOwner(file.Owner.Name, file.Owner.AvailableHours)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid owner: %w", err)
	}

	pet, err := models.NewPet(file.Pet.Name, file.Pet.Species, file.Pet.Age, file.Pet.SpecialNeeds)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid pet: %w", err)
	}

	tasks := make([]*models.Task, 0, len(file.Tasks))
	for i, st := range file.Tasks {
		task, err := buildTask(st)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid task %d (%q): %w", i+1, st.Name, err)
		}
		tasks = append(tasks, task)
	}

	return owner, pet, tasks, nil
}

func buildTask(st scenarioTask) (*models.Task, error) {
	opts := []models.TaskOption{}
	if st.PreferredTime != "" {
		opts = append(opts, models.WithPreferredTime(models.TimeOfDay(st.PreferredTime)))
	}
	if st.Notes != "" {
		opts = append(opts, models.WithNotes(st.Notes))
	}
	if st.Frequency != "" {
		opts = append(opts, models.WithFrequency(models.TaskFrequency(st.Frequency)))
	}
	if st.DueDate != "" {
		due, err := time.Parse("2006-01-02", st.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due_date %q: %w", st.DueDate, err)
		}
		opts = append(opts, models.WithDueDate(due))
	}
	return models.NewTask(st.Name, models.TaskCategory(st.Category), st.DurationMinutes, st.Priority, opts...)
}
