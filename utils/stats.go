package utils

import "time"

const historySize = 5

const (
	StatusActive      = "Active"
	StatusStatic      = "Static"
	StatusOscillating = "Oscillating"
	StatusExtinct     = "Extinct"
)

// Stats tracks a session's progress across generations
type Stats struct {
	Generation        int
	Population        int
	AveragePopulation float64
	StartTime         time.Time
	Status            string
	history           []string // hashes of recent boards for cycle detection
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now(), Status: StatusActive}
}

// Update records the board of the given generation by its population and hash
func (s *Stats) Update(generation int, population int, hash string) {
	s.Generation = generation
	s.Population = population

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.Status = s.classify(population, hash)

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

func (s *Stats) classify(population int, hash string) string {
	if population == 0 {
		return StatusExtinct
	}
	n := len(s.history)
	if n >= 1 && s.history[n-1] == hash {
		return StatusStatic
	}
	for i := n - 2; i >= 0; i-- {
		if s.history[i] == hash {
			return StatusOscillating
		}
	}
	return StatusActive
}

// Runtime returns the time elapsed since the session started
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
