package domain

import (
	"strings"
	"time"
)

type Profile struct {
	ID                    int             `json:"id" db:"id"`
	UserID                int             `json:"user_id" db:"user_id"`
	Skills                []string        `json:"skills" db:"skills"`
	PreferredLocation     *string         `json:"preferred_location" db:"preferred_location"`
	DesiredExperience     ExperienceLevel `json:"desired_experience" db:"desired_experience"`
	DesiredLocationType   *LocationType   `json:"desired_location_type" db:"desired_location_type"`
	DesiredEmploymentType *EmploymentType `json:"desired_employment_type" db:"desired_employment_type"`
	CreatedAt             time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at" db:"updated_at"`
}

// WantsRemote reports whether the profile prefers remote work, either via an
// explicit desired location type or a "remote" preferred location string.
func (p *Profile) WantsRemote() bool {
	if p.DesiredLocationType != nil && *p.DesiredLocationType == LocationRemote {
		return true
	}
	return p.PreferredLocation != nil && strings.EqualFold(*p.PreferredLocation, "remote")
}
