// Package insights projects session data into chart-ready series.
// Everything here is read-only and allocation-only; inputs are never modified.
package insights

import (
	"sort"
	"time"

	"github.com/abhisek/mindset/internal/session"
)

// Series is an ordered list of labelled values.
type Series struct {
	Labels []string
	Values []int
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.Labels)
}

// Total returns the sum of all values.
func (s Series) Total() int {
	total := 0
	for _, v := range s.Values {
		total += v
	}
	return total
}

// Shares returns each value as a fraction of Total. An empty or all-zero
// series yields zero shares.
func (s Series) Shares() []float64 {
	out := make([]float64, len(s.Values))
	total := s.Total()
	if total == 0 {
		return out
	}
	for i, v := range s.Values {
		out[i] = float64(v) / float64(total)
	}
	return out
}

// Max returns the largest value, or 0 for an empty series.
func (s Series) Max() int {
	m := 0
	for _, v := range s.Values {
		m = max(m, v)
	}
	return m
}

// Tail returns the last n points of the series.
func (s Series) Tail(n int) Series {
	if n < 0 {
		n = 0
	}
	if n >= s.Len() {
		return s
	}
	start := s.Len() - n
	return Series{Labels: s.Labels[start:], Values: s.Values[start:]}
}

// GoalStatusCounts counts goals per status. Every status appears, in
// session.AllStatuses order, including those with a zero count.
func GoalStatusCounts(goals []session.LearningGoal) Series {
	statuses := session.AllStatuses()
	s := Series{
		Labels: make([]string, len(statuses)),
		Values: make([]int, len(statuses)),
	}
	index := make(map[session.GoalStatus]int, len(statuses))
	for i, st := range statuses {
		s.Labels[i] = st.DisplayName()
		index[st] = i
	}
	for _, g := range goals {
		if i, ok := index[g.Status]; ok {
			s.Values[i]++
		}
	}
	return s
}

// SkillLevels returns (name, level) pairs in insertion order. Duplicate names
// are kept as separate points.
func SkillLevels(skills []session.Skill) Series {
	s := Series{
		Labels: make([]string, len(skills)),
		Values: make([]int, len(skills)),
	}
	for i, sk := range skills {
		s.Labels[i] = sk.Name
		s.Values[i] = sk.Level
	}
	return s
}

// AchievementsByMonth buckets achievements by calendar month, oldest first.
// Months without achievements are omitted.
func AchievementsByMonth(achievements []session.Achievement) Series {
	counts := make(map[time.Time]int)
	for _, a := range achievements {
		y, m, _ := a.Date.Date()
		counts[time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)]++
	}

	months := make([]time.Time, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	s := Series{
		Labels: make([]string, len(months)),
		Values: make([]int, len(months)),
	}
	for i, m := range months {
		s.Labels[i] = m.Format("Jan 2006")
		s.Values[i] = counts[m]
	}
	return s
}
