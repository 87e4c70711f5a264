// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"tank-arena/internal/config"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Perm возвращает случайную перестановку чисел [0, n).
func (s *PRNGService) Perm(n int) []int {
	return s.rng.Perm(n)
}

// Angle returns a uniformly random direction in radians.
func (s *PRNGService) Angle() float64 {
	return (s.rng.Float64()*2 - 1) * math.Pi
}

// ChooseWeighted picks a name from the table with probability proportional
// to its weight.
func (s *PRNGService) ChooseWeighted(entries []config.PickupWeight) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Name
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Name
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Name
}
