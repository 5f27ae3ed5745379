package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "lower-cases", input: "Harsh", expected: "harsh"},
		{name: "trims and removes inner spaces", input: "  Web Engineering ", expected: "webengineering"},
		{name: "removes hyphens", input: "Wirtschafts-Informatik", expected: "wirtschaftsinformatik"},
		{name: "removes periods", input: "Prof. Dr. Kessel", expected: "profdrkessel"},
		{name: "removes tabs and newlines", input: "web\teng\n", expected: "webeng"},
		{name: "keeps digits", input: "S 1001", expected: "s1001"},
		{name: "keeps umlauts", input: "Dr. Müller", expected: "drmüller"},
		{name: "only separators", input: " .- ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Harsh Sharma",
		"Wirtschafts-Informatik",
		" WIRTSCHAFTSINFORMATIK ",
		"Prof. Dr.-Ing. K. Kessel",
		" non breaking ",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_CaseAndSeparatorInsensitive(t *testing.T) {
	want := Normalize("wirtschaftsinformatik")

	assert.Equal(t, want, Normalize("Wirtschafts-Informatik"))
	assert.Equal(t, want, Normalize(" WIRTSCHAFTSINFORMATIK "))
	assert.Equal(t, want, Normalize("Wirtschafts Informatik."))
}
