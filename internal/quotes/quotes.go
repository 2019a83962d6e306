// Package quotes picks motivational quotes from a fixed set.
package quotes

import "math/rand/v2"

// Challenge is the quote set shown by the yes/no mindset challenge.
var Challenge = []string{
	"Challenges make life interesting. Overcoming them makes life meaningful.",
	"Failure is an opportunity to begin again, this time more intelligently.",
	"Your mindset determines your growth. Stay positive, stay hungry!",
	"Every expert was once a beginner. Keep pushing forward!",
	"Hardships prepare ordinary people for extraordinary destinies.",
}

// Tracker is the quote set shown by the skills and goals tracker.
var Tracker = []string{
	"The expert in anything was once a beginner.",
	"Mistakes are proof that you are trying.",
	"Effort is one of the things that gives meaning to life.",
	"It always seems impossible until it's done.",
	"Becoming is better than being.",
}

// Selector returns quotes chosen uniformly at random from a fixed set.
type Selector struct {
	set []string
	rng *rand.Rand
}

// New creates a Selector over set using src for randomness. An empty set
// falls back to Challenge. A nil src uses a randomly seeded PCG source.
func New(set []string, src rand.Source) *Selector {
	if len(set) == 0 {
		set = Challenge
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	cp := make([]string, len(set))
	copy(cp, set)
	return &Selector{set: cp, rng: rand.New(src)}
}

// Pick returns one quote from the set.
func (s *Selector) Pick() string {
	return s.set[s.rng.IntN(len(s.set))]
}

// Contains reports whether q is a member of the selector's set.
func (s *Selector) Contains(q string) bool {
	for _, v := range s.set {
		if v == q {
			return true
		}
	}
	return false
}

// Len returns the size of the quote set.
func (s *Selector) Len() int {
	return len(s.set)
}
