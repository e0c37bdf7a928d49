package helper

import "testing"

func TestResolveContent(t *testing.T) {
	fields := map[string]string{
		"title":    "Títol antic",
		"title_ca": "Títol en català",
		"title_es": "Título en castellano",
		"title_en": "English title",
	}

	cases := []struct {
		name   string
		fields map[string]string
		base   string
		lang   string
		want   string
	}{
		{"requested language wins", fields, "title", LangEnglish, "English title"},
		{"catalan when requested", fields, "title", LangCatalan, "Títol en català"},
		{"spanish when requested", fields, "title", LangSpanish, "Título en castellano"},
		{
			"missing requested falls back to catalan",
			map[string]string{"title_ca": "Català", "title_es": "Castellano", "title": "Legacy"},
			"title", LangEnglish, "Català",
		},
		{
			"missing catalan falls back to spanish",
			map[string]string{"title_es": "Castellano", "title": "Legacy"},
			"title", LangEnglish, "Castellano",
		},
		{
			"all localized empty falls back to legacy",
			map[string]string{"title": "Legacy"},
			"title", LangEnglish, "Legacy",
		},
		{
			"whitespace-only values are skipped",
			map[string]string{"title_en": "   ", "title_ca": "\t", "title": "Legacy"},
			"title", LangEnglish, "Legacy",
		},
		{"nothing set returns empty", map[string]string{}, "title", LangCatalan, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveContent(tc.fields, tc.base, tc.lang); got != tc.want {
				t.Errorf("ResolveContent(%q, %q) = %q, want %q", tc.base, tc.lang, got, tc.want)
			}
		})
	}
}

func TestNormalizeLang(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ca", LangCatalan},
		{"es", LangSpanish},
		{"en", LangEnglish},
		{"EN", LangEnglish},
		{" es ", LangSpanish},
		{"", LangCatalan},
		{"fr", LangCatalan},
	}

	for _, tc := range cases {
		if got := NormalizeLang(tc.in); got != tc.want {
			t.Errorf("NormalizeLang(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
