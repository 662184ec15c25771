package suggest

import (
	"sort"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Suggester подбирает похожие идентификаторы аудиторий при опечатке
type Suggester struct {
	limit  int
	cutoff float64
}

// NewSuggester создает подборщик: не более limit вариантов со схожестью не ниже cutoff (0..1)
func NewSuggester(limit int, cutoff float64) *Suggester {
	return &Suggester{limit: limit, cutoff: cutoff}
}

type scored struct {
	candidate string
	score     float64
	order     int
}

// Suggest возвращает кандидатов по убыванию схожести, при равенстве в исходном порядке
func (s *Suggester) Suggest(query string, candidates []string) []string {
	if query == "" || s.limit <= 0 {
		return []string{}
	}

	matches := make([]scored, 0)
	for i, c := range candidates {
		score := Similarity(query, c)
		if score >= s.cutoff {
			matches = append(matches, scored{candidate: c, score: score, order: i})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].order < matches[j].order
	})

	if len(matches) > s.limit {
		matches = matches[:s.limit]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.candidate
	}
	return out
}

// Similarity нормированная схожесть строк: 1 - расстояние Левенштейна / длина большей строки
func Similarity(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
