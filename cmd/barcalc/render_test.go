package main

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, "-"},
		{[]string{"Mex"}, "Mex"},
		{[]string{"Mex", "Wind", "Mex"}, "2×Mex, Wind"},
	}

	for _, tt := range tests {
		if got := summarize(tt.names); got != tt.want {
			t.Errorf("summarize(%v): expected %q, got %q", tt.names, tt.want, got)
		}
	}
}

func TestFormatting(t *testing.T) {
	if got := formatSeconds(125.7); got != "02:05" {
		t.Errorf("Expected 02:05, got %s", got)
	}
	if got := formatAmount(964); got != "964" {
		t.Errorf("Expected 964, got %s", got)
	}
	if got := formatAmount(3.8); got != "3.80" {
		t.Errorf("Expected 3.80, got %s", got)
	}
	if got := formatRatio(math.Inf(1)); got != "∞" {
		t.Errorf("Expected ∞, got %s", got)
	}
	if got := formatIncome(-3); got != "-3" {
		t.Errorf("Expected -3, got %s", got)
	}
}
