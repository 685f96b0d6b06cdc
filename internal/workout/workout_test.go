package workout

import "testing"

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Catalog {
		if seen[p.ID] {
			t.Fatalf("duplicate program id %s", p.ID)
		}
		seen[p.ID] = true
		if p.Title == "" || len(p.Exercises) == 0 {
			t.Fatalf("program %s is incomplete: %+v", p.ID, p)
		}
	}
	if len(Catalog) != 34 {
		t.Fatalf("catalog has %d programs", len(Catalog))
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("W21")
	if !ok {
		t.Fatal("W21 not found")
	}
	if p.BodyRegion != "Legs" || p.Level != "Advanced" {
		t.Fatalf("W21 = %+v", p)
	}
	if _, ok := Lookup("W99"); ok {
		t.Fatal("unknown id resolved")
	}
}

func TestProgramFor(t *testing.T) {
	cases := map[int][]string{
		3: {"W33", "W29", "W21"},
		4: {"W25", "W21", "W25", "W21"},
		5: {"W03", "W07", "W11", "W15", "W21"},
	}
	for days, want := range cases {
		got := ProgramFor(days)
		if len(got) != len(want) {
			t.Fatalf("days=%d: %v", days, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("days=%d: got %v want %v", days, got, want)
			}
		}
	}
	// Out-of-map values fall back to the 4-day split.
	if got := ProgramFor(7); len(got) != 4 || got[0] != "W25" {
		t.Fatalf("days=7: %v", got)
	}
	for days := range cases {
		rot := ProgramFor(days)
		for _, id := range rot {
			if _, ok := Lookup(id); !ok {
				t.Fatalf("rotation for %d days references unknown program %s", days, id)
			}
		}
	}
}

func TestProgramForReturnsCopy(t *testing.T) {
	a := ProgramFor(3)
	a[0] = "mutated"
	if b := ProgramFor(3); b[0] != "W33" {
		t.Fatal("ProgramFor shares its backing array with callers")
	}
}
