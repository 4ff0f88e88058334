package content

import (
	"strings"
	"testing"
)

func TestDefault_NavTargetsExist(t *testing.T) {
	site := Default()
	sections := map[string]bool{}
	for _, s := range []Section{site.Services, site.Approach, site.Outcomes, site.Programs, site.Resources, site.About.Section, site.Contact.Section} {
		sections[s.ID] = true
	}

	for _, l := range site.Nav {
		id := strings.TrimPrefix(l.Href, "#")
		if !sections[id] {
			t.Errorf("nav link %q targets missing section %q", l.Label, id)
		}
	}
	for _, id := range RequiredSectionIDs {
		if !sections[id] {
			t.Errorf("required section %q missing", id)
		}
	}
}

func TestDefault_Counts(t *testing.T) {
	site := Default()

	if len(site.ServiceList) != 6 {
		t.Errorf("expected 6 services, got %d", len(site.ServiceList))
	}
	if len(site.Steps) != 4 {
		t.Errorf("expected 4 approach steps, got %d", len(site.Steps))
	}
	if len(site.OutcomeList) != 3 {
		t.Errorf("expected 3 outcome groups, got %d", len(site.OutcomeList))
	}
	if len(site.ProgramList) != 3 {
		t.Errorf("expected 3 programs, got %d", len(site.ProgramList))
	}
	if len(site.Library) != 3 {
		t.Errorf("expected 3 resources, got %d", len(site.Library))
	}
	if len(site.Hero.Stats) != 3 {
		t.Errorf("expected 3 hero stats, got %d", len(site.Hero.Stats))
	}
}
