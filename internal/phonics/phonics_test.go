package phonics

import (
	"testing"
	"time"
)

func TestTableLength(t *testing.T) {
	if Len() != 6 {
		t.Fatalf("rotation length = %d, want 6", Len())
	}
}

func TestForWeekRepeats(t *testing.T) {
	for week := -3; week <= 60; week++ {
		a := ForWeek(week)
		b := ForWeek(week + Len())
		if a.Name != b.Name {
			t.Fatalf("week %d: %q != %q", week, a.Name, b.Name)
		}
	}
}

func TestForWeekSlots(t *testing.T) {
	if got := ForWeek(0).Name; got != "short a (-at)" {
		t.Fatalf("week 0 = %q", got)
	}
	if got := ForWeek(11).Name; got != "magic e" {
		t.Fatalf("week 11 = %q", got)
	}
}

func TestForDateUsesISOWeek(t *testing.T) {
	// 2024-12-30 falls in ISO week 1 of 2025.
	d := time.Date(2024, 12, 30, 9, 0, 0, 0, time.Local)
	if got, want := ForDate(d).Name, ForWeek(1).Name; got != want {
		t.Fatalf("ForDate = %q, want %q", got, want)
	}

	mon := time.Date(2025, 3, 3, 8, 0, 0, 0, time.Local)
	sun := time.Date(2025, 3, 9, 22, 0, 0, 0, time.Local)
	if ForDate(mon).Name != ForDate(sun).Name {
		t.Fatal("days in the same ISO week should share a pattern")
	}
}

func TestPatternsComplete(t *testing.T) {
	for _, p := range All() {
		if p.Name == "" || p.Hint == "" || len(p.Words) == 0 {
			t.Fatalf("incomplete pattern %+v", p)
		}
		if p.WordList() == "" {
			t.Fatalf("empty word list for %s", p.Name)
		}
	}
}
