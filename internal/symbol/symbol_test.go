package symbol

import "testing"

func TestNormalizeTrimsAndUppercases(t *testing.T) {
	if got := Normalize("  reliance \n"); got != "RELIANCE" {
		t.Fatalf("expected RELIANCE, got %q", got)
	}
}

func TestNormalizeFixesTypos(t *testing.T) {
	cases := map[string]string{
		"relaince": "RELIANCE",
		"Infosys":  "INFY",
		"airtel":   "BHARTIARTL",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizePassesUnknownThrough(t *testing.T) {
	if got := Normalize("ZOMATO"); got != "ZOMATO" {
		t.Fatalf("expected pass-through, got %q", got)
	}
}

func TestUniverseIsCopied(t *testing.T) {
	u := Universe()
	if len(u) != 15 {
		t.Fatalf("expected 15 candidates, got %d", len(u))
	}
	u[0] = "MUTATED"
	if Universe()[0] != "RELIANCE" {
		t.Fatal("Universe must return a copy")
	}
}
