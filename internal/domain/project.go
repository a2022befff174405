package domain

// DefaultProjectColor is assigned when a project is created without a color.
const DefaultProjectColor = "#3B82F6"

// Project represents a named grouping that tasks reference by id.
// This is a pure domain model without database-specific concerns.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
}

// NewProject creates a new Project with the given name and the default color.
func NewProject(name string) Project {
	return Project{
		Name:  name,
		Color: DefaultProjectColor,
	}
}

// IsValid checks if the project has valid data.
func (p Project) IsValid() bool {
	return p.Name != "" && p.Color != ""
}

// String returns the project name for display purposes.
func (p Project) String() string {
	return p.Name
}
