package solver

import "github.com/easyperl/fairbanks/internal/money"

// Combination is one exact-sum selection of candidate prices, repeats
// included, ordered by descending price.
type Combination []money.Cents

// Total returns the sum of all prices in the combination.
func (c Combination) Total() money.Cents {
	var total money.Cents
	for _, price := range c {
		total += price
	}
	return total
}

// Solver describes the behaviour required from a combination enumerator.
type Solver interface {
	Enumerate(target money.Cents, prices []money.Cents) ([]Combination, error)
}
