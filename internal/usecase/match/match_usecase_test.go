package match_test

import (
	"fmt"
	"testing"

	"github.com/joblens/joblens-backend/internal/domain"
	"github.com/joblens/joblens-backend/internal/usecase/match"
)

func profileWith(skills []string, exp domain.ExperienceLevel) *domain.Profile {
	return &domain.Profile{ID: 1, UserID: 1, Skills: skills, DesiredExperience: exp}
}

func jobWith(id int, skills []string) *domain.Job {
	return &domain.Job{
		ID:              id,
		Title:           fmt.Sprintf("Job %d", id),
		Skills:          skills,
		LocationType:    domain.LocationOnSite,
		ExperienceLevel: domain.ExperienceMid,
	}
}

// ── Score ──────────────────────────────────────────────────────────────────

func TestScore_Deterministic(t *testing.T) {
	profile := profileWith([]string{"go", "postgres"}, domain.ExperienceSenior)
	job := jobWith(10, []string{"go", "postgres", "kubernetes"})
	job.ExperienceLevel = domain.ExperienceSenior
	job.LocationType = domain.LocationRemote

	s1, r1 := match.Score(profile, job)
	for i := 0; i < 50; i++ {
		s2, r2 := match.Score(profile, job)
		if s1 != s2 {
			t.Fatalf("score not deterministic: %v vs %v", s1, s2)
		}
		if len(r1) != len(r2) {
			t.Fatalf("reasons not deterministic: %v vs %v", r1, r2)
		}
	}
}

func TestScore_Bounded(t *testing.T) {
	remote := domain.LocationRemote
	profiles := []*domain.Profile{
		profileWith(nil, ""),
		profileWith([]string{"go"}, domain.ExperienceSenior),
		profileWith([]string{"go", "postgres", "redis", "docker"}, domain.ExperienceMid),
		{ID: 1, Skills: []string{"go"}, DesiredExperience: domain.ExperienceSenior, DesiredLocationType: &remote},
	}
	jobs := []*domain.Job{
		jobWith(1, nil),
		jobWith(2, []string{"go"}),
		jobWith(3, []string{"go", "postgres", "redis", "docker", "kafka"}),
	}
	jobs[1].ExperienceLevel = domain.ExperienceSenior
	jobs[1].LocationType = domain.LocationRemote

	for _, p := range profiles {
		for _, j := range jobs {
			score, _ := match.Score(p, j)
			if score < 0 || score > 1 {
				t.Errorf("score out of bounds: %v for profile %v, job %d", score, p.Skills, j.ID)
			}
		}
	}
}

func TestScore_MonotoneInSkillOverlap(t *testing.T) {
	jobSkills := []string{"go", "postgres", "redis", "docker"}
	prev := -1.0
	for n := 0; n <= len(jobSkills); n++ {
		profile := profileWith(jobSkills[:n], "")
		score, _ := match.Score(profile, jobWith(1, jobSkills))
		if score < prev {
			t.Errorf("score decreased with larger overlap: %d skills -> %v (previous %v)", n, score, prev)
		}
		prev = score
	}
}

func TestScore_RewardsCoverageFraction(t *testing.T) {
	// A job with few, fully matched skills should score like one with many,
	// half matched — the signal is fraction covered, not raw overlap count.
	profile := profileWith([]string{"go", "postgres"}, "")
	small := jobWith(1, []string{"go", "postgres"})
	big := jobWith(2, []string{"go", "postgres", "kafka", "terraform"})

	smallScore, _ := match.Score(profile, small)
	bigScore, _ := match.Score(profile, big)
	if smallScore <= bigScore {
		t.Errorf("full coverage of a short list (%v) should beat half coverage of a long one (%v)", smallScore, bigScore)
	}
}

func TestScore_EmptySkillSets(t *testing.T) {
	// Neither side being empty may panic or yield a non-zero skill signal.
	cases := []struct {
		profileSkills []string
		jobSkills     []string
	}{
		{nil, []string{"go"}},
		{[]string{"go"}, nil},
		{nil, nil},
	}
	for _, c := range cases {
		score, _ := match.Score(profileWith(c.profileSkills, ""), jobWith(1, c.jobSkills))
		if score != 0 {
			t.Errorf("empty skill sets should contribute 0, got %v (profile=%v job=%v)", score, c.profileSkills, c.jobSkills)
		}
	}
}

func TestScore_CaseInsensitiveSkills(t *testing.T) {
	profile := profileWith([]string{"Go", "PostgreSQL "}, "")
	job := jobWith(1, []string{"go", "postgresql"})
	score, _ := match.Score(profile, job)
	if score != 1.0 {
		t.Errorf("skill comparison should ignore case and padding, got %v", score)
	}
}

func TestScore_SeniorRemoteScenario(t *testing.T) {
	profile := profileWith([]string{"go", "postgres"}, domain.ExperienceSenior)
	job := jobWith(1, []string{"go", "postgres", "kubernetes"})
	job.ExperienceLevel = domain.ExperienceSenior
	job.LocationType = domain.LocationRemote

	score, reasons := match.Score(profile, job)
	if score <= 0.6 {
		t.Errorf("expected score > 0.6, got %v", score)
	}

	hasSkillReason := false
	hasRemoteReason := false
	for _, r := range reasons {
		if r == "Good skill match" || r == "Excellent skill match" {
			hasSkillReason = true
		}
		if r == "Remote position" {
			hasRemoteReason = true
		}
	}
	if !hasSkillReason {
		t.Errorf("expected a skill match reason, got %v", reasons)
	}
	if !hasRemoteReason {
		t.Errorf("expected \"Remote position\" reason, got %v", reasons)
	}
}

func TestScore_RemoteReasonRegardlessOfScore(t *testing.T) {
	profile := profileWith(nil, "")
	job := jobWith(1, []string{"cobol"})
	job.LocationType = domain.LocationRemote

	score, reasons := match.Score(profile, job)
	if score >= 0.6 {
		t.Fatalf("setup error: expected a low score, got %v", score)
	}
	found := false
	for _, r := range reasons {
		if r == "Remote position" {
			found = true
		}
	}
	if !found {
		t.Errorf("remote job must always carry the \"Remote position\" reason, got %v", reasons)
	}
}

func TestScore_RemotePreferenceIgnoresLocationString(t *testing.T) {
	remote := domain.LocationRemote
	profile := &domain.Profile{ID: 1, Skills: []string{"go"}, DesiredLocationType: &remote}
	job := jobWith(1, []string{"go", "kafka"})
	job.LocationType = domain.LocationRemote
	job.Location = "Anywhere, Earth"

	withBonus, _ := match.Score(profile, job)

	noPref := &domain.Profile{ID: 1, Skills: []string{"go"}}
	without, _ := match.Score(noPref, job)

	if withBonus <= without {
		t.Errorf("remote preference should add a bonus for any remote job: %v vs %v", withBonus, without)
	}
}

// ── Rank ───────────────────────────────────────────────────────────────────

func TestRank_SortsDescendingAndTruncates(t *testing.T) {
	profile := profileWith([]string{"go", "postgres", "redis"}, "")

	var jobs []*domain.Job
	for i := 1; i <= match.TopK+10; i++ {
		var skills []string
		switch i % 3 {
		case 0:
			skills = []string{"go", "postgres", "redis"}
		case 1:
			skills = []string{"go", "java"}
		default:
			skills = []string{"cobol"}
		}
		jobs = append(jobs, jobWith(i, skills))
	}

	results, err := match.Rank(profile, jobs)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	if len(results) != match.TopK {
		t.Fatalf("expected %d results, got %d", match.TopK, len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted descending at %d: %v after %v", i, results[i].Score, results[i-1].Score)
		}
	}
}

func TestRank_StableTieBreak(t *testing.T) {
	profile := profileWith([]string{"go"}, "")

	// All jobs score identically; output order must equal input order.
	var jobs []*domain.Job
	for i := 1; i <= 10; i++ {
		jobs = append(jobs, jobWith(i, []string{"go"}))
	}

	results, err := match.Rank(profile, jobs)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	for i, r := range results {
		if r.Job.ID != i+1 {
			t.Errorf("tie-break not stable: position %d has job %d", i, r.Job.ID)
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	profile := profileWith([]string{"go", "postgres"}, domain.ExperienceSenior)
	var jobs []*domain.Job
	for i := 1; i <= 40; i++ {
		jobs = append(jobs, jobWith(i, []string{"go", "postgres", fmt.Sprintf("skill%d", i%7)}))
	}

	first, err := match.Rank(profile, jobs)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}
	for run := 0; run < 20; run++ {
		again, err := match.Rank(profile, jobs)
		if err != nil {
			t.Fatalf("Rank returned error: %v", err)
		}
		for i := range first {
			if first[i].Job.ID != again[i].Job.ID || first[i].Score != again[i].Score {
				t.Fatalf("run %d: position %d differs (%d/%v vs %d/%v)",
					run, i, first[i].Job.ID, first[i].Score, again[i].Job.ID, again[i].Score)
			}
		}
	}
}

func TestRank_MissingIdentifier(t *testing.T) {
	noID := &domain.Profile{Skills: []string{"go"}}
	if _, err := match.Rank(noID, []*domain.Job{jobWith(1, nil)}); err == nil {
		t.Error("expected error for profile without ID")
	}

	profile := profileWith([]string{"go"}, "")
	badJob := &domain.Job{Skills: []string{"go"}}
	if _, err := match.Rank(profile, []*domain.Job{badJob}); err == nil {
		t.Error("expected error for job without ID")
	}
}

func TestRank_EmptyCandidateSet(t *testing.T) {
	results, err := match.Rank(profileWith([]string{"go"}, ""), nil)
	if err != nil {
		t.Fatalf("Rank on empty set returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result, got %d", len(results))
	}
}
