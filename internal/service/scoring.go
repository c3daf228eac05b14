package service

import (
	"math"
	"math/rand/v2"
	"sort"

	"careerquest/internal/domain"
)

// SampleQuestions elige n preguntas distintas del banco, sin reposicion,
// aproximadamente uniforme. No garantiza balance por rasgo y no es
// reproducible entre sesiones.
func SampleQuestions(bank []domain.Question, n int) []domain.Question {
	if n > len(bank) {
		n = len(bank)
	}
	picked := make([]domain.Question, len(bank))
	copy(picked, bank)
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:n]
}

// Aggregate deriva el resultado de una sesion. Funcion pura y deterministica:
// mismas entradas producen salidas identicas. Una respuesta ausente cuenta
// como 0 en el promedio de su rasgo en lugar de fallar.
func Aggregate(questions []domain.Question, responses map[int]int) domain.ScoredResult {
	type tally struct {
		total int
		count int
	}
	tallies := make(map[string]*tally, len(domain.TraitOrder))
	totalScore := 0
	for _, q := range questions {
		score := responses[q.ID]
		t, ok := tallies[q.Trait]
		if !ok {
			t = &tally{}
			tallies[q.Trait] = t
		}
		t.total += score
		t.count++
		totalScore += score
	}

	averages := make(map[string]int, len(tallies))
	ranked := make([]domain.TraitScore, 0, len(tallies))
	// Se itera en orden canonico para que el sort estable resuelva empates
	// por orden de rasgo.
	for _, trait := range domain.TraitOrder {
		t, ok := tallies[trait]
		if !ok {
			continue
		}
		pct := int(math.Round(float64(t.total) / float64(t.count) * 20))
		averages[trait] = pct
		ranked = append(ranked, domain.TraitScore{Trait: trait, Percentage: pct})
	}
	var extras []string
	for trait := range tallies {
		if _, ok := averages[trait]; !ok {
			extras = append(extras, trait)
		}
	}
	sort.Strings(extras)
	for _, trait := range extras {
		t := tallies[trait]
		pct := int(math.Round(float64(t.total) / float64(t.count) * 20))
		averages[trait] = pct
		ranked = append(ranked, domain.TraitScore{Trait: trait, Percentage: pct})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percentage > ranked[j].Percentage
	})

	dominant := domain.TraitAnalytical
	if len(ranked) > 0 {
		dominant = ranked[0].Trait
	}

	overall := 0
	if len(questions) > 0 {
		maxPossible := len(questions) * domain.LikertMax
		overall = int(math.Round(float64(totalScore) / float64(maxPossible) * 100))
	}

	return domain.ScoredResult{
		TraitAverages:     averages,
		RankedTraits:      ranked,
		DominantTrait:     dominant,
		TotalScore:        totalScore,
		OverallPercentage: overall,
	}
}
