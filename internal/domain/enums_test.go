package domain_test

import (
	"testing"

	"github.com/joblens/joblens-backend/internal/domain"
)

func TestNormalizeLocationType(t *testing.T) {
	cases := []struct {
		in     string
		want   domain.LocationType
		wantOK bool
	}{
		{"Remote", domain.LocationRemote, true},
		{"remote", domain.LocationRemote, true},
		{"HYBRID", domain.LocationHybrid, true},
		{"on-site", domain.LocationOnSite, true},
		{"onsite", domain.LocationOnSite, true},
		{"On Site", domain.LocationOnSite, true},
		{"in_office", domain.LocationOnSite, true},
		{"moon base", domain.DefaultLocationType, false},
		{"", domain.DefaultLocationType, false},
	}
	for _, c := range cases {
		got, ok := domain.NormalizeLocationType(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("NormalizeLocationType(%q) = (%s, %v), want (%s, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestNormalizeEmploymentType(t *testing.T) {
	cases := []struct {
		in     string
		want   domain.EmploymentType
		wantOK bool
	}{
		{"Full-time", domain.EmploymentFullTime, true},
		{"fulltime", domain.EmploymentFullTime, true},
		{"FULL_TIME", domain.EmploymentFullTime, true},
		{"part-time", domain.EmploymentPartTime, true},
		{"contract", domain.EmploymentContract, true},
		{"freelance", domain.EmploymentContract, true},
		{"intern", domain.EmploymentInternship, true},
		{"gig", domain.DefaultEmploymentType, false},
	}
	for _, c := range cases {
		got, ok := domain.NormalizeEmploymentType(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("NormalizeEmploymentType(%q) = (%s, %v), want (%s, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestNormalizeExperienceLevel(t *testing.T) {
	cases := []struct {
		in     string
		want   domain.ExperienceLevel
		wantOK bool
	}{
		{"Entry", domain.ExperienceEntry, true},
		{"junior", domain.ExperienceEntry, true},
		{"mid", domain.ExperienceMid, true},
		{"Middle", domain.ExperienceMid, true},
		{"SENIOR", domain.ExperienceSenior, true},
		{"staff", domain.ExperienceLead, true},
		{"principal", domain.ExperienceLead, true},
		{"director", domain.ExperienceExecutive, true},
		{"wizard", domain.DefaultExperienceLevel, false},
	}
	for _, c := range cases {
		got, ok := domain.NormalizeExperienceLevel(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("NormalizeExperienceLevel(%q) = (%s, %v), want (%s, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}
