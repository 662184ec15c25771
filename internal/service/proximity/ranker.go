package proximity

import (
	"container/heap"
	"math"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// Candidate аудитория и расстояние до нее
type Candidate struct {
	Venue    *domain.Venue
	Distance float64
}

// Distance планарное евклидово расстояние в градусах.
// На масштабе кампуса погрешность относительно геодезического расстояния несущественна.
func Distance(a, b domain.Coordinates) float64 {
	return math.Hypot(a.Lat-b.Lat, a.Long-b.Long)
}

// Ranker строит ранжирование аудиторий по удаленности от точки пользователя
type Ranker struct{}

// NewRanker создает ранжировщик
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank возвращает ленивое ранжирование. Аудитории без координат пропускаются.
// Построение O(n), каждый Next O(log n): хвост не сортируется, пока его не запросили.
func (r *Ranker) Rank(origin domain.Coordinates, venues []*domain.Venue) *Ranking {
	h := make(candidateHeap, 0, len(venues))
	for _, v := range venues {
		if v == nil || !v.HasCoordinates() {
			continue
		}
		h = append(h, rankedCandidate{
			Candidate: Candidate{Venue: v, Distance: Distance(origin, *v.Coordinates)},
			seq:       len(h),
		})
	}
	heap.Init(&h)

	return &Ranking{heap: h}
}

// Ranking очередь ближайших аудиторий. Не предназначена для конкурентного использования.
type Ranking struct {
	heap candidateHeap
}

// Next извлекает следующую ближайшую аудиторию
func (r *Ranking) Next() (Candidate, bool) {
	if r.heap.Len() == 0 {
		return Candidate{}, false
	}
	c := heap.Pop(&r.heap).(rankedCandidate)
	return c.Candidate, true
}

// Len количество еще не извлеченных аудиторий
func (r *Ranking) Len() int {
	return r.heap.Len()
}

// Drain извлекает все оставшиеся аудитории по возрастанию расстояния
func (r *Ranking) Drain() []Candidate {
	out := make([]Candidate, 0, r.heap.Len())
	for {
		c, ok := r.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

// TakeMatching извлекает аудитории, пока не наберет n подходящих под keep или не исчерпает очередь.
// Отброшенные аудитории из очереди удаляются.
func (r *Ranking) TakeMatching(n int, keep func(*domain.Venue) (bool, error)) ([]Candidate, error) {
	out := make([]Candidate, 0, n)
	for len(out) < n {
		c, ok := r.Next()
		if !ok {
			break
		}
		match, err := keep(c.Venue)
		if err != nil {
			return nil, err
		}
		if match {
			out = append(out, c)
		}
	}
	return out, nil
}

type rankedCandidate struct {
	Candidate
	seq int
}

// candidateHeap min-heap по расстоянию, при равенстве сохраняется порядок снапшота
type candidateHeap []rankedCandidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].Distance != h[j].Distance {
		return h[i].Distance < h[j].Distance
	}
	return h[i].seq < h[j].seq
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) {
	*h = append(*h, x.(rankedCandidate))
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
