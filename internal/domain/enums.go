package domain

import "strings"

// Closed enumerations for job classification. Import payloads carry these as
// free text; NormalizeX is the single total mapping from raw string to enum,
// including the unrecognized→default branch. The bool reports whether the
// input matched a known variant, so callers can surface a warning instead of
// silently swallowing data.

type LocationType string

const (
	LocationRemote LocationType = "Remote"
	LocationHybrid LocationType = "Hybrid"
	LocationOnSite LocationType = "On-site"
)

const DefaultLocationType = LocationRemote

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
)

const DefaultEmploymentType = EmploymentFullTime

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "Entry"
	ExperienceMid       ExperienceLevel = "Mid"
	ExperienceSenior    ExperienceLevel = "Senior"
	ExperienceLead      ExperienceLevel = "Lead"
	ExperienceExecutive ExperienceLevel = "Executive"
)

const DefaultExperienceLevel = ExperienceMid

func canon(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

// NormalizeLocationType maps a raw string to a LocationType. Unrecognized
// values fall back to DefaultLocationType with ok=false.
func NormalizeLocationType(raw string) (LocationType, bool) {
	switch canon(raw) {
	case "remote":
		return LocationRemote, true
	case "hybrid":
		return LocationHybrid, true
	case "on-site", "onsite", "in-office", "office":
		return LocationOnSite, true
	}
	return DefaultLocationType, false
}

// NormalizeEmploymentType maps a raw string to an EmploymentType.
// Unrecognized values fall back to DefaultEmploymentType with ok=false.
func NormalizeEmploymentType(raw string) (EmploymentType, bool) {
	switch canon(raw) {
	case "full-time", "fulltime":
		return EmploymentFullTime, true
	case "part-time", "parttime":
		return EmploymentPartTime, true
	case "contract", "contractor", "freelance":
		return EmploymentContract, true
	case "internship", "intern":
		return EmploymentInternship, true
	}
	return DefaultEmploymentType, false
}

// NormalizeExperienceLevel maps a raw string to an ExperienceLevel.
// Unrecognized values fall back to DefaultExperienceLevel with ok=false.
func NormalizeExperienceLevel(raw string) (ExperienceLevel, bool) {
	switch canon(raw) {
	case "entry", "junior", "entry-level":
		return ExperienceEntry, true
	case "mid", "middle", "mid-level":
		return ExperienceMid, true
	case "senior", "senior-level":
		return ExperienceSenior, true
	case "lead", "staff", "principal":
		return ExperienceLead, true
	case "executive", "director", "c-level":
		return ExperienceExecutive, true
	}
	return DefaultExperienceLevel, false
}
