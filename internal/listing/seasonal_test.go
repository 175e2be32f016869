package listing

import "testing"

func TestSeasonalPackOrder(t *testing.T) {
	cases := []struct {
		season string
		want   []string
	}{
		{"Spring", []string{"spring", "easter", "mother's day"}},
		{"Summer", []string{"summer", "beach", "vacation"}},
		{"Autumn", []string{"fall", "autumn", "halloween", "thanksgiving"}},
		{"Winter", []string{"christmas", "winter", "new year"}},
		{"None", nil},
	}
	for _, tc := range cases {
		t.Run(tc.season, func(t *testing.T) {
			pack := SeasonalPack(tc.season)
			if len(pack) != len(tc.want) {
				t.Fatalf("pack = %v, want %v", pack, tc.want)
			}
			for i := range tc.want {
				if pack[i] != tc.want[i] {
					t.Fatalf("pack[%d] = %q, want %q", i, pack[i], tc.want[i])
				}
			}
		})
	}
}

func TestSeasonKeywordAnchors(t *testing.T) {
	cases := []struct {
		season string
		want   string
	}{
		{"Spring", "spring"},
		{"Summer", "summer"},
		{"Autumn", "fall"},
		{"Winter", "christmas"},
		{"None", ""},
		{"unknown", ""},
	}
	for _, tc := range cases {
		if got := seasonKeyword(tc.season); got != tc.want {
			t.Fatalf("seasonKeyword(%q) = %q, want %q", tc.season, got, tc.want)
		}
	}
}
