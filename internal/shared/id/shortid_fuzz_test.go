package id

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzParsePrefixedID(f *testing.F) {
	for _, seed := range []string{
		"ofr_xK9mP2vL3nQ",
		"ptn_abc123",
		"qrg_patio",
		"",
		"nounderscore",
		"_leading",
		"trailing_",
		"multiple_under_scores",
		"中文_测试",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			return
		}

		prefix, shortID, err := ParsePrefixedID(input)
		if !strings.Contains(input, "_") {
			if err == nil {
				t.Errorf("ParsePrefixedID(%q) accepted an ID without separator", input)
			}
			return
		}
		if err != nil {
			t.Fatalf("ParsePrefixedID(%q): %v", input, err)
		}
		if prefix+"_"+shortID != input {
			t.Errorf("ParsePrefixedID(%q) = (%q, %q), does not round-trip", input, prefix, shortID)
		}
		if strings.Contains(prefix, "_") {
			t.Errorf("ParsePrefixedID(%q) prefix %q contains separator", input, prefix)
		}
	})
}

func FuzzValidatePrefix(f *testing.F) {
	f.Add("ofr_test", "ofr")
	f.Add("ofr_test", "ptn")
	f.Add("qr_T1", "qrg")
	f.Add("", "ofr")

	f.Fuzz(func(t *testing.T, prefixedID, expected string) {
		if !utf8.ValidString(prefixedID) || !utf8.ValidString(expected) {
			return
		}
		err := ValidatePrefix(prefixedID, expected)
		want := strings.HasPrefix(prefixedID, expected+"_") && !strings.Contains(expected, "_")
		if (err == nil) != want {
			t.Errorf("ValidatePrefix(%q, %q) error = %v, want ok=%v", prefixedID, expected, err, want)
		}
	})
}

func TestNewOfferID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 5000; i++ {
		sid, err := NewOfferID()
		if err != nil {
			t.Fatalf("NewOfferID: %v", err)
		}
		shortID, err := ExtractShortID(sid, PrefixOffer)
		if err != nil {
			t.Fatalf("ExtractShortID(%q): %v", sid, err)
		}
		if len(shortID) != DefaultLength {
			t.Fatalf("short ID %q has length %d", shortID, len(shortID))
		}
		for _, c := range shortID {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("short ID %q contains %q", shortID, c)
			}
		}
		if seen[sid] {
			t.Fatalf("duplicate offer ID %s", sid)
		}
		seen[sid] = true
	}
}

func TestFormatWithPrefix(t *testing.T) {
	if got := FormatWithPrefix(PrefixQRCode, "T1"); got != "qr_T1" {
		t.Errorf("FormatWithPrefix = %q", got)
	}
	if got := FormatWithPrefix(PrefixQRCode, ""); got != "" {
		t.Errorf("FormatWithPrefix with empty ID = %q", got)
	}
}
