package models

// Personal holds the identity block of a resume. FirstName/LastName are the
// only fields the pipeline requires; everything else degrades to an omitted
// segment when empty.
type Personal struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	Website   string `json:"website,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

// Education represents a single education entry
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// Experience represents a single work experience entry
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// Project represents a personal or professional project entry
type Project struct {
	Name        string `json:"name"`
	Date        string `json:"date,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// ResumeRecord is the structured resume supplied by the persistence layer.
// The generation pipeline treats it as read-only input.
type ResumeRecord struct {
	Personal   Personal            `json:"personal"`
	Education  []Education         `json:"education,omitempty"`
	Experience []Experience        `json:"experience,omitempty"`
	Projects   []Project           `json:"projects,omitempty"`
	Skills     map[string][]string `json:"skills,omitempty"`
	Template   string              `json:"template,omitempty" validate:"omitempty,template_name"`
	Format     string              `json:"format,omitempty"`
}

// DateRange renders a start/end pair the way every section does it:
// "start -- end", with current=true overriding any end date with "Present".
func DateRange(start, end string, current bool) string {
	parts := make([]string, 0, 2)
	if start != "" {
		parts = append(parts, start)
	}
	if current {
		parts = append(parts, "Present")
	} else if end != "" {
		parts = append(parts, end)
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + " -- " + parts[1]
	}
}

// HasSkills reports whether any skill category carries at least one entry.
// Categories with empty lists are never rendered.
func (r *ResumeRecord) HasSkills() bool {
	for _, list := range r.Skills {
		if len(list) > 0 {
			return true
		}
	}
	return false
}
