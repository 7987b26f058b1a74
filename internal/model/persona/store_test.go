package persona_test

import (
	"testing"

	"github.com/evenlode/parley/backend/internal/model/persona"
)

func TestSeedIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range persona.Seed() {
		if p.ID == "" {
			t.Fatalf("persona %q has empty id", p.Name)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate persona id %q", p.ID)
		}
		seen[p.ID] = true
		if p.SystemPrompt == "" || p.OpeningQuestion == "" {
			t.Fatalf("persona %q missing prompt or opening question", p.ID)
		}
	}
}

func TestMemoryStoreFindByID(t *testing.T) {
	store := persona.NewMemoryStore(persona.Seed())

	record, ok := store.FindByID("rubber-duck")
	if !ok {
		t.Fatal("expected rubber-duck to exist")
	}
	if record.Name != "Rubber Duck" {
		t.Fatalf("unexpected name %q", record.Name)
	}

	if _, ok := store.FindByID("missing"); ok {
		t.Fatal("expected missing persona lookup to fail")
	}
}

func TestMemoryStoreListIsCopy(t *testing.T) {
	store := persona.NewMemoryStore(persona.Seed())

	list := store.List()
	list[0].Name = "mutated"

	fresh := store.List()
	if fresh[0].Name == "mutated" {
		t.Fatal("List should return a copy, not the backing slice")
	}
}
