package main

import "testing"

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"valiate", "validate"},
		{"validat", "validate"},
		{"vlidate", "validate"},
		{"fmtt", "fmt"},
		{"frmt", "fmt"},
		{"reslve", "resolve"},
		{"resolv", "resolve"},
		{"exmple", "example"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"validatation", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		want    int
	}{
		{"help", "help", nil, 0},
		{"unknown", "frobnicate", nil, 1},
		{"fmt without file", "fmt", nil, 1},
		{"fmt help", "fmt", []string{"--help"}, 0},
		{"resolve missing ref", "resolve", []string{"openapi.yaml"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.command, tt.args); got != tt.want {
				t.Errorf("run(%q, %v) = %d, want %d", tt.command, tt.args, got, tt.want)
			}
		})
	}
}
