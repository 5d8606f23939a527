package models

// Pet identifies the animal the plan is for. The scheduler treats it as an
// opaque identity; species, age and special needs are carried for display.
type Pet struct {
	Name         string   `json:"name"`
	Species      string   `json:"species"`
	Age          int      `json:"age"`
	SpecialNeeds []string `json:"special_needs,omitempty"`
}

// NewPet creates a validated pet
func NewPet(name, species string, age int, specialNeeds []string) (*Pet, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if species == "" {
		return nil, &ValidationError{Field: "species", Message: "must not be empty"}
	}
	if age < 0 {
		return nil, &ValidationError{Field: "age", Message: "must be non-negative"}
	}
	if specialNeeds == nil {
		specialNeeds = []string{}
	}
	return &Pet{Name: name, Species: species, Age: age, SpecialNeeds: specialNeeds}, nil
}
