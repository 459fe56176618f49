package domain_test

import (
	"testing"

	"healthmate/internal/domain"
)

func TestParseMeals(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCount int
		wantNote  string
		isCount   bool
	}{
		{"plain count", "3", 3, "", true},
		{"zero count", "0", 0, "", true},
		{"free text", "two snacks and dinner", 0, "two snacks and dinner", false},
		{"negative number is text", "-1", 0, "-1", false},
		{"decimal is text", "2.5", 0, "2.5", false},
		{"empty", "", 0, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ParseMeals(tc.raw)
			if tc.isCount {
				if got.Count == nil || *got.Count != tc.wantCount {
					t.Fatalf("ParseMeals(%q) = %+v; want count %d", tc.raw, got, tc.wantCount)
				}
				if got.Note != "" {
					t.Errorf("ParseMeals(%q) set both variants: %+v", tc.raw, got)
				}
				return
			}
			if got.Count != nil {
				t.Fatalf("ParseMeals(%q) = count %d; want note %q", tc.raw, *got.Count, tc.wantNote)
			}
			if got.Note != tc.wantNote {
				t.Errorf("ParseMeals(%q).Note = %q; want %q", tc.raw, got.Note, tc.wantNote)
			}
		})
	}
}

func TestMealsString(t *testing.T) {
	n := 4
	if got := (domain.Meals{Count: &n}).String(); got != "4" {
		t.Errorf("count variant String() = %q; want %q", got, "4")
	}
	if got := (domain.Meals{Note: "light lunch"}).String(); got != "light lunch" {
		t.Errorf("note variant String() = %q; want %q", got, "light lunch")
	}
	if got := (domain.Meals{}).String(); got != "" {
		t.Errorf("zero value String() = %q; want empty", got)
	}
}
