// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"sentinel-siege/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей симуляции.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// IntInclusive возвращает случайное целое число в диапазоне [0, n].
func (s *PRNGService) IntInclusive(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n + 1)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Uniform возвращает случайное число в диапазоне [min, max).
func (s *PRNGService) Uniform(min, max float64) float64 {
	return min + (max-min)*s.rng.Float64()
}

// Angle возвращает случайный угол в радианах в диапазоне [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.Uniform(0, 2*math.Pi)
}

// ChooseWeighted выполняет взвешенный случайный выбор архетипа.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(entries []defs.WeightedEntry) defs.ArchetypeID {
	if len(entries) == 0 {
		return defs.ArchetypeGrunt
	}

	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}

	if totalWeight <= 0 {
		// Если сумма весов некорректна, возвращаем первый элемент по умолчанию
		return entries[0].ID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.ID
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].ID
}
