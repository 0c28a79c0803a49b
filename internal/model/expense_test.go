package model

import "testing"

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Food", "Food", true},
		{"food", "Food", true},
		{"  Health ", "Health", true},
		{"credit card", "Credit Card", true},
		{"ccard", "Credit Card", true},
		{"lsr", "Leisure", true},
		{"", "", false},
		{"zzzz", "", false},
	}
	for _, tt := range tests {
		got, ok := ResolveCategory(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ResolveCategory(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLegacyCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Alimentação", "Food", true},
		{"Outros", "Other", true},
		{"Food", "", false},
		{"alimentação", "", false},
	}
	for _, tt := range tests {
		got, ok := LegacyCategory(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LegacyCategory(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && !IsCategory(got) {
			t.Errorf("LegacyCategory(%q) = %q, not a category", tt.in, got)
		}
	}
}

func TestIsCategoryIsCaseSensitive(t *testing.T) {
	if !IsCategory("Other") {
		t.Fatal("Other should be a category")
	}
	if IsCategory("other") {
		t.Fatal("lowercase other should not be an exact category")
	}
}

func TestSummaryLabelsAndAmounts(t *testing.T) {
	s := Summary{ByCategory: []CategoryTotal{{"Food", 10}, {"Home", 2.5}}, Total: 12.5}
	labels := s.Labels()
	amounts := s.Amounts()
	if len(labels) != 2 || labels[1] != "Home" {
		t.Fatalf("Labels() = %v", labels)
	}
	if amounts[0] != 10 || amounts[1] != 2.5 {
		t.Fatalf("Amounts() = %v", amounts)
	}
}
