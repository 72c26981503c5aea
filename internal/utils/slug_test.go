package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Umrah Plus Turki 12 Hari", "umrah-plus-turki-12-hari"},
		{"  Paket  Hemat!! ", "paket-hemat"},
		{"Eropa (Barat) — 2026", "eropa-barat-2026"},
		{"---", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
