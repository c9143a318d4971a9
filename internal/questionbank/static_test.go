package questionbank

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStaticProvider_KnownCombination(t *testing.T) {
	p := NewStaticProvider()
	source := defaultBanks()["technical"]["Software Engineer"]["backend"]

	got := p.Questions(context.Background(), "Software Engineer", "backend", "technical", 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(got))
	}

	seen := make(map[string]bool)
	for _, q := range got {
		if seen[q] {
			t.Errorf("duplicate question selected: %q", q)
		}
		seen[q] = true

		found := false
		for _, s := range source {
			if s == q {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("question %q not drawn from the backend list", q)
		}
	}
}

func TestStaticProvider_CountExceedsAvailable(t *testing.T) {
	p := NewStaticProvider()
	source := defaultBanks()["technical"]["Data Scientist"]["machine learning"]

	got := p.Questions(context.Background(), "Data Scientist", "machine learning", "technical", 50)
	if !reflect.DeepEqual(got, source) {
		t.Errorf("expected full list in source order, got %v", got)
	}
}

func TestStaticProvider_UnknownRoleFallsBack(t *testing.T) {
	p := NewStaticProvider()

	got := p.Questions(context.Background(), "Astronaut", "orbital mechanics", "technical", 10)
	if len(got) != 5 {
		t.Fatalf("expected the 5-item fallback list, got %d items", len(got))
	}
	for i, q := range got {
		want := fmt.Sprintf("Generic technical question %d for Astronaut", i+1)
		if q != want {
			t.Errorf("fallback[%d] = %q, want %q", i, q, want)
		}
	}
}

func TestStaticProvider_UnknownInterviewTypeFallsBack(t *testing.T) {
	p := NewStaticProvider()

	got := p.Questions(context.Background(), "Software Engineer", "general", "architectural", 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 fallback questions, got %d", len(got))
	}
	if got[0] != "Generic architectural question 1 for Software Engineer" {
		t.Errorf("unexpected fallback question: %q", got[0])
	}
}

func TestStaticProvider_UnknownDomainUsesGeneral(t *testing.T) {
	p := NewStaticProvider()
	general := defaultBanks()["technical"]["Software Engineer"]["general"]

	got := p.Questions(context.Background(), "Software Engineer", "quantum computing", "technical", 10)
	if !reflect.DeepEqual(got, general) {
		t.Errorf("expected the general list, got %v", got)
	}
}

func TestStaticProvider_ZeroCount(t *testing.T) {
	p := NewStaticProvider()

	got := p.Questions(context.Background(), "Software Engineer", "backend", "technical", 0)
	if len(got) != 0 {
		t.Errorf("expected no questions for count=0, got %d", len(got))
	}
}

func TestFillGeneral(t *testing.T) {
	banks := Banks{
		"technical": {
			"QA Engineer": {
				"automation": {"How do you structure an end-to-end test suite?"},
			},
		},
	}
	fillGeneral(banks)

	general := banks["technical"]["QA Engineer"]["general"]
	if len(general) != 5 {
		t.Fatalf("expected 5 filler questions, got %d", len(general))
	}
	if general[2] != "Generic technical question 3 for QA Engineer" {
		t.Errorf("unexpected filler question: %q", general[2])
	}
}

func TestNewStaticProviderFromFile(t *testing.T) {
	const bank = `
technical:
  SRE:
    incident response:
      - "Walk me through how you would run a sev-1 incident."
      - "How do you decide what belongs in a runbook?"
`
	path := filepath.Join(t.TempDir(), "bank.yaml")
	if err := os.WriteFile(path, []byte(bank), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := NewStaticProviderFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := p.Questions(context.Background(), "SRE", "incident response", "technical", 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}

	// roles loaded from a file still get a general domain
	general := p.Questions(context.Background(), "SRE", "unknown domain", "technical", 10)
	if len(general) != 5 {
		t.Errorf("expected 5 filler questions for the general domain, got %d", len(general))
	}
}

func TestNewStaticProviderFromFile_Missing(t *testing.T) {
	if _, err := NewStaticProviderFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSample_WithoutReplacement(t *testing.T) {
	list := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 20; i++ {
		got := Sample(list, 3)
		if len(got) != 3 {
			t.Fatalf("expected 3 items, got %d", len(got))
		}
		seen := make(map[string]bool)
		for _, v := range got {
			if seen[v] {
				t.Fatalf("item %q drawn twice", v)
			}
			seen[v] = true
		}
	}
}
