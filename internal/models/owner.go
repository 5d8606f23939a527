package models

// Owner is the person the daily plan is built for. AvailableHoursPerDay is
// the time budget the scheduler fits tasks into.
type Owner struct {
	Name                 string            `json:"name"`
	AvailableHoursPerDay float64           `json:"available_hours_per_day"`
	Preferences          map[string]string `json:"preferences,omitempty"`
}

// NewOwner creates a validated owner. Available hours must fit in a day.
func NewOwner(name string, availableHoursPerDay float64) (*Owner, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if availableHoursPerDay < 0 || availableHoursPerDay > 24 {
		return nil, &ValidationError{Field: "available_hours_per_day", Message: "must be between 0 and 24"}
	}
	return &Owner{
		Name:                 name,
		AvailableHoursPerDay: availableHoursPerDay,
		Preferences:          make(map[string]string),
	}, nil
}

// AvailableMinutes returns the daily time budget in task duration units
func (o *Owner) AvailableMinutes() float64 {
	return o.AvailableHoursPerDay * 60.0
}

// UpdatePreferences merges the given preferences into the owner's existing ones
func (o *Owner) UpdatePreferences(prefs map[string]string) {
	if o.Preferences == nil {
		o.Preferences = make(map[string]string)
	}
	for k, v := range prefs {
		o.Preferences[k] = v
	}
}
