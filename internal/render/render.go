// Package render turns numeric price combinations back into named solution
// lines. Items tied at one price collapse into a single alternation slot
// rather than multiplying into near-duplicate lines.
package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/easyperl/fairbanks/internal/menu"
	"github.com/easyperl/fairbanks/internal/solver"
)

const (
	slotSeparator        = ","
	alternationSeparator = "|"
)

// NoCombination is the line emitted when a group has no exact-sum solution.
const NoCombination = "no combination of items adds up to the target"

// Result holds the rendered output for one target/menu group.
type Result struct {
	Lines []string
	Count int
}

// Summary returns the trailing human-readable count line.
func (r Result) Summary() string {
	if r.Count == 1 {
		return "1 combination found"
	}
	return fmt.Sprintf("%d combinations found", r.Count)
}

// Format renders each combination as one line: a slot per price occurrence in
// descending-price order, tied names joined by "|" in menu order, slots joined
// by ",". Numerically identical combinations collapse to one line; the dedup
// key is the price sequence itself, so separator characters inside item names
// cannot make distinct solutions collide. Lines come back sorted.
func Format(combos []solver.Combination, index *menu.PriceIndex) Result {
	seen := make(map[string]struct{}, len(combos))
	lines := make([]string, 0, len(combos))

	for _, combo := range combos {
		key := comboKey(combo)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		lines = append(lines, renderLine(combo, index))
	}

	sort.Strings(lines)
	return Result{Lines: lines, Count: len(lines)}
}

func renderLine(combo solver.Combination, index *menu.PriceIndex) string {
	slots := make([]string, len(combo))
	for i, price := range combo {
		names := index.Names(price)
		if len(names) == 0 {
			// Every solved price should be indexed; fall back to the amount.
			slots[i] = price.String()
			continue
		}
		slots[i] = strings.Join(names, alternationSeparator)
	}
	return strings.Join(slots, slotSeparator)
}

func comboKey(combo solver.Combination) string {
	parts := make([]string, len(combo))
	for i, price := range combo {
		parts[i] = strconv.FormatInt(int64(price), 10)
	}
	return strings.Join(parts, ":")
}
