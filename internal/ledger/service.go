package ledger

import (
	"sort"

	"github.com/spendscope-dev/spendscope/internal/model"
)

// Service is the in-memory transaction collection for one session. All
// mutation goes through Add and Clear; every read hands out copies, so
// the stored transactions are never touched by callers.
type Service struct {
	txns    []model.Transaction
	ids     map[string]struct{}
	sources []string // load order of source files
}

// NewService creates an empty ledger.
func NewService() *Service {
	return &Service{ids: make(map[string]struct{})}
}

// Add merges transactions into the ledger, skipping any whose ID is
// already present, and records the source file. Returns the number
// actually added. The collection is kept sorted date-descending; equal
// dates keep their existing order.
func (s *Service) Add(source string, txns []model.Transaction) int {
	if !s.hasSource(source) {
		s.sources = append(s.sources, source)
	}

	added := 0
	for _, t := range txns {
		if _, dup := s.ids[t.ID]; dup {
			continue
		}
		s.ids[t.ID] = struct{}{}
		s.txns = append(s.txns, t)
		added++
	}

	sort.SliceStable(s.txns, func(i, j int) bool {
		return s.txns[i].Date.After(s.txns[j].Date)
	})
	return added
}

// Clear resets the ledger to empty.
func (s *Service) Clear() {
	s.txns = nil
	s.sources = nil
	s.ids = make(map[string]struct{})
}

// All returns a copy of the full collection, date-descending.
func (s *Service) All() []model.Transaction {
	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// Len returns the number of transactions held.
func (s *Service) Len() int { return len(s.txns) }

// Sources returns the loaded file identifiers in load order.
func (s *Service) Sources() []string {
	out := make([]string, len(s.sources))
	copy(out, s.sources)
	return out
}

// CountBySource returns the transaction count per source file.
func (s *Service) CountBySource() map[string]int {
	counts := make(map[string]int, len(s.sources))
	for _, t := range s.txns {
		counts[t.Source]++
	}
	return counts
}

// Categories returns the distinct category labels present, sorted.
func (s *Service) Categories() []string {
	seen := make(map[string]struct{})
	var cats []string
	for _, t := range s.txns {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		cats = append(cats, t.Category)
	}
	sort.Strings(cats)
	return cats
}

// Filter returns the transactions matching f, in the ledger's
// date-descending order.
func (s *Service) Filter(f Filter) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.txns {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) hasSource(source string) bool {
	for _, src := range s.sources {
		if src == source {
			return true
		}
	}
	return false
}
