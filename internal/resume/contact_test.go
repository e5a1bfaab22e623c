package resume

import (
	"reflect"
	"testing"
)

func TestExtractEmail(t *testing.T) {
	text := "John Smith\njohn.smith+work@example.co\nBackup: other@example.com"
	if got := ExtractEmail(text); got != "john.smith+work@example.co" {
		t.Fatalf("expected first email to win, got %q", got)
	}

	if got := ExtractEmail("no contact details here"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestExtractPhoneNormalization(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"dashed", "call 555-123-4567 anytime", "(555) 123-4567"},
		{"dotted", "555.123.4567", "(555) 123-4567"},
		{"parenthesized", "(555) 123-4567", "(555) 123-4567"},
		{"us country code", "+1 555-123-4567", "(555) 123-4567"},
		{"leading one", "1 555 123 4567", "(555) 123-4567"},
		{"none", "no digits", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractPhone(tc.text); got != tc.want {
				t.Fatalf("ExtractPhone(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractName(t *testing.T) {
	text := "Professional Summary\nSenior Software Engineer with ten years of experience\nJane Doe\njane@example.com\n555-123-4567"
	if got := ExtractName(text); got != "Jane Doe" {
		t.Fatalf("expected Jane Doe, got %q", got)
	}
}

func TestExtractNameSkipsHeadersAndContacts(t *testing.T) {
	lines := []string{
		"Work Experience",                  // section header
		"jane@example.com",                 // email
		"https://github.com/janedoe",       // url
		"linkedin.com/in/janedoe",          // url fragment
		"555-123-4567",                     // phone
		"a very long line that runs well past fifty characters in total length", // too long
		"lowercase name here",              // not capitalized
		"Jane",                             // single word
	}
	text := ""
	for _, l := range lines {
		text += l + "\n"
	}
	if got := ExtractName(text); got != "" {
		t.Fatalf("expected no name, got %q", got)
	}
}

func TestMissingFieldsOrdering(t *testing.T) {
	// Name found, email and phone missing: email must be requested first.
	parsed := &Parsed{Name: "Jane Doe"}
	want := []string{"email", "phone"}
	if got := parsed.MissingFields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMissingFieldsAllAbsent(t *testing.T) {
	parsed := &Parsed{Text: "∆∆∆ unstructured noise without any contact info"}
	want := []string{"name", "email", "phone"}
	if got := parsed.MissingFields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
