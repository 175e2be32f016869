package listing

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"spaces only", "   \t\n ", ""},
		{"inner runs collapsed", "dainty   gold \t necklace", "dainty gold necklace"},
		{"trimmed", "  boho style ", "boho style"},
		{"already clean", "leather wallet", "leather wallet"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "  a  b  ", "x", " mixed\ttabs and\nnewlines "}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestSplitKeywords(t *testing.T) {
	got := SplitKeywords(" dainty necklace ,, gift  for her , ")
	want := []string{"dainty necklace", "gift for her"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keyword %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"you@email.com", "  Mixed.Case+tag@Example.ORG  ", "a_b%c@sub.domain.co"}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Fatalf("expected %q to be valid", e)
		}
	}
	invalid := []string{"", "plain", "missing@tld", "@nobody.com", "two@@ats.com", "name@domain.c"}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Fatalf("expected %q to be invalid", e)
		}
	}
}

func TestCanonicalEmail(t *testing.T) {
	if got := CanonicalEmail("  You@Email.COM "); got != "you@email.com" {
		t.Fatalf("got %q", got)
	}
}
