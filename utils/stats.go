package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Runs                 int
	Halts                map[string]int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now(), Halts: map[string]int{}}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// RecordHalt counts a finished run by cause
func (s *Stats) RecordHalt(cause string) {
	if s.Halts == nil {
		s.Halts = map[string]int{}
	}
	s.Runs++
	s.Halts[cause]++
}
