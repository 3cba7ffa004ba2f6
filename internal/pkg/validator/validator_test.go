package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-01-15"); !ok {
		t.Error("IsValidDate(2025-01-15) = false, want true")
	}
	invalid := []string{"2025-13-01", "15-01-2025", "2025-01-15T00:00:00Z", "", "yesterday"}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseNonNegativeAmount(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"300", "300", true},
		{"  12.50 ", "12.5", true},
		{"0", "0", true},
		{"-5", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseNonNegativeAmount(c.input)
		if ok != c.ok {
			t.Errorf("ParseNonNegativeAmount(%q) ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && got.String() != c.want {
			t.Errorf("ParseNonNegativeAmount(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestSplitIDList(t *testing.T) {
	got := SplitIDList("a, b,,c ")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("SplitIDList = %v, want [a b c]", got)
	}
	if SplitIDList("") != nil {
		t.Error("SplitIDList(\"\") should be nil")
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}
