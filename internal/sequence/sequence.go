package sequence

import (
	"math/rand"

	"github.com/gruntled/assessment-backend/internal/catalog"
)

// Entry is one question in the randomized order presented to a coachee.
type Entry struct {
	Position      int    `json:"position"`
	DimensionKey  string `json:"dimension_key"`
	DimensionName string `json:"dimension_name"`
	StatementKey  string `json:"statement_key"`
	Prompt        string `json:"prompt"`
}

// Sequence is a permutation of every (dimension, statement) pair in the
// catalog. It is generated once per coachee session and held fixed for the
// session's lifetime; regenerating mid-session would desynchronize recorded
// answers from displayed question numbers.
type Sequence []Entry

// Generate enumerates all pairs in catalog order, shuffles them uniformly
// with the given source, and assigns 1-based positions. Callers pass a
// seeded source only in tests; production sessions each get a fresh one.
func Generate(rng *rand.Rand) Sequence {
	var entries Sequence
	for _, d := range catalog.AllDimensions() {
		for _, s := range d.Statements {
			entries = append(entries, Entry{
				DimensionKey:  d.Key,
				DimensionName: d.Title,
				StatementKey:  s.Key,
				Prompt:        s.Prompt,
			})
		}
	}

	rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})

	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}

// Len is the total number of questions in a full assessment.
func Len() int {
	return len(catalog.AllDimensions()) * catalog.StatementsPerDimension
}
