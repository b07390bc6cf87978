package resolver_service_test

import (
	"testing"

	resolver_service "github.com/dexel-inc/ia-cc-test/src/resolver/service"
)

func TestStripMarkdownFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `[{"item":"ajedrez"}]`, `[{"item":"ajedrez"}]`},
		{"plain fences", "```\n[{\"item\":\"ajedrez\"}]\n```", `[{"item":"ajedrez"}]`},
		{"json fences", "```json\n[{\"item\":\"ajedrez\"}]\n```", `[{"item":"ajedrez"}]`},
		{"null with fences", "```json\nnull\n```", "null"},
		{"surrounding whitespace", "  null \n", "null"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolver_service.StripMarkdownFences(tc.in)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStripMarkdownFences_Idempotent(t *testing.T) {
	in := "```json\n[{\"item\":\"lego\"}]\n```"
	once := resolver_service.StripMarkdownFences(in)
	twice := resolver_service.StripMarkdownFences(once)
	if once != twice {
		t.Fatalf("stripping is not idempotent: %q vs %q", once, twice)
	}
}
