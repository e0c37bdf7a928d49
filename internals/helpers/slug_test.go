package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Festa de final de curs", "festa-de-final-de-curs"},
		{"  Reunió   general  ", "reunió-general"},
		{"Català & Castellano!", "català-castellano"},
		{"---", ""},
		{"2026/2027: quotes", "2026-2027-quotes"},
	}

	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
