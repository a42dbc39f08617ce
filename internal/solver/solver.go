package solver

import (
	"sort"

	"github.com/easyperl/fairbanks/internal/money"
)

type dfsSolver struct{}

// New creates a Solver based on depth-first search over per-price counts.
func New() Solver {
	return &dfsSolver{}
}

// Enumerate returns every distinct combination of the candidate prices that
// sums exactly to target. Duplicate prices in the input are merged first, so
// each combination is produced exactly once regardless of item order. An
// unreachable target, a non-positive target, or an empty candidate list all
// yield an empty result; only invalid candidate prices are an error.
func (s *dfsSolver) Enumerate(target money.Cents, prices []money.Cents) ([]Combination, error) {
	values, err := normalizePrices(prices)
	if err != nil {
		return nil, err
	}
	if target < 1 || len(values) == 0 {
		return nil, nil
	}

	var found []Combination
	enumerate(target, values, nil, &found)
	return found, nil
}

// enumerate tries every feasible count for values[len(counts)] against the
// remaining amount. The counts prefix is never mutated: each branch receives
// its own copy, so sibling branches and concurrent callers cannot alias.
func enumerate(remaining money.Cents, values []money.Cents, counts []int, found *[]Combination) {
	if remaining <= 0 {
		return
	}

	idx := len(counts)
	value := values[idx]

	if idx == len(values)-1 {
		// Last value: only an exact multiple of it can close the sum.
		if remaining%value == 0 {
			*found = append(*found, expand(values, withCount(counts, int(remaining/value))))
		}
		return
	}

	for count := 0; money.Cents(count)*value <= remaining; count++ {
		spent := money.Cents(count) * value
		if spent == remaining {
			// Higher counts can only overshoot once equality is reached.
			*found = append(*found, expand(values, withCount(counts, count)))
			return
		}
		enumerate(remaining-spent, values, withCount(counts, count), found)
	}
}

func withCount(counts []int, count int) []int {
	next := make([]int, len(counts)+1)
	copy(next, counts)
	next[len(counts)] = count
	return next
}

// expand turns a count vector into the flat price sequence it denotes.
// Counts may be shorter than values; the missing tail is implicitly zero.
func expand(values []money.Cents, counts []int) Combination {
	combo := make(Combination, 0, len(counts))
	for i, count := range counts {
		for ; count > 0; count-- {
			combo = append(combo, values[i])
		}
	}
	return combo
}

// normalizePrices validates, deduplicates, and sorts candidate prices in
// descending order so larger prices are tried first.
func normalizePrices(prices []money.Cents) ([]money.Cents, error) {
	unique := make(map[money.Cents]struct{}, len(prices))
	for _, price := range prices {
		if price <= 0 {
			return nil, ErrInvalidPrice
		}
		unique[price] = struct{}{}
	}

	values := make([]money.Cents, 0, len(unique))
	for price := range unique {
		values = append(values, price)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] > values[j] })

	return values, nil
}
