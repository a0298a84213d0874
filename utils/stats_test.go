package utils

import (
	"math"
	"testing"
)

func TestStatsStatus(t *testing.T) {
	tests := []struct {
		name        string
		hashes      []string
		populations []int
		want        string
	}{
		{"first generation", []string{"a"}, []int{3}, StatusActive},
		{"changing", []string{"a", "b", "c"}, []int{3, 4, 5}, StatusActive},
		{"static", []string{"a", "b", "b"}, []int{3, 4, 4}, StatusStatic},
		{"period two", []string{"a", "b", "a"}, []int{3, 3, 3}, StatusOscillating},
		{"extinct", []string{"a", "z"}, []int{3, 0}, StatusExtinct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStats()
			for i, h := range tt.hashes {
				s.Update(i, tt.populations[i], h)
			}
			if s.Status != tt.want {
				t.Fatalf("Status = %s, want %s", s.Status, tt.want)
			}
			if s.Generation != len(tt.hashes)-1 {
				t.Fatalf("Generation = %d, want %d", s.Generation, len(tt.hashes)-1)
			}
		})
	}
}

func TestStatsHistoryIsBounded(t *testing.T) {
	s := NewStats()
	for i := range 20 {
		s.Update(i, 1, string(rune('a'+i)))
	}
	if len(s.history) != historySize {
		t.Fatalf("history length = %d, want %d", len(s.history), historySize)
	}
	// "a" has left the history window
	s.Update(20, 1, "a")
	if s.Status != StatusActive {
		t.Fatalf("Status = %s, want %s", s.Status, StatusActive)
	}
}

func TestStatsAveragePopulation(t *testing.T) {
	s := NewStats()
	s.Update(0, 10, "a")
	s.Update(1, 20, "b")
	if math.Abs(s.AveragePopulation-11) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, want 11", s.AveragePopulation)
	}
}
