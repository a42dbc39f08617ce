package render

import (
	"slices"
	"testing"

	"github.com/easyperl/fairbanks/internal/menu"
	"github.com/easyperl/fairbanks/internal/solver"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		items     []menu.Item
		combos    []solver.Combination
		wantLines []string
	}{
		{
			name: "SingleNamePerPrice",
			items: []menu.Item{
				{Name: "a", Price: 30},
			},
			combos:    []solver.Combination{{30, 30, 30}},
			wantLines: []string{"a,a,a"},
		},
		{
			name: "TiedNamesCollapseIntoAlternationSlot",
			items: []menu.Item{
				{Name: "a", Price: 50},
				{Name: "b", Price: 50},
			},
			combos:    []solver.Combination{{50, 50}},
			wantLines: []string{"a|b,a|b"},
		},
		{
			name: "NoCombinations",
			items: []menu.Item{
				{Name: "a", Price: 30},
			},
			combos:    nil,
			wantLines: []string{},
		},
		{
			name: "NumericallyIdenticalCombinationsDeduplicate",
			items: []menu.Item{
				{Name: "a", Price: 50},
			},
			combos:    []solver.Combination{{50, 50}, {50, 50}},
			wantLines: []string{"a,a"},
		},
		{
			name: "LinesComeBackSorted",
			items: []menu.Item{
				{Name: "zucchini", Price: 100},
				{Name: "apple", Price: 50},
			},
			combos: []solver.Combination{
				{100},
				{50, 50},
			},
			wantLines: []string{"apple,apple", "zucchini"},
		},
		{
			name: "AlternationKeepsMenuOrder",
			items: []menu.Item{
				{Name: "zebra", Price: 25},
				{Name: "apple", Price: 25},
			},
			combos:    []solver.Combination{{25}},
			wantLines: []string{"zebra|apple"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Format(tc.combos, menu.NewPriceIndex(tc.items))

			if !slices.Equal(got.Lines, tc.wantLines) {
				t.Fatalf("unexpected lines: got %v want %v", got.Lines, tc.wantLines)
			}
			if got.Count != len(tc.wantLines) {
				t.Fatalf("expected count %d, got %d", len(tc.wantLines), got.Count)
			}
		})
	}
}

func TestFormatAppetizers(t *testing.T) {
	t.Parallel()

	items := []menu.Item{
		{Name: "mixed fruit", Price: 215},
		{Name: "unmixed fruit", Price: 215},
		{Name: "french fries", Price: 275},
		{Name: "side salad", Price: 335},
		{Name: "hot wings", Price: 355},
		{Name: "mozzarella sticks", Price: 420},
		{Name: "sampler plate", Price: 580},
	}

	group := menu.Group{Target: 1505, Items: items}
	combos, err := solver.New().Enumerate(group.Target, group.Prices())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(combos) == 0 {
		t.Fatalf("expected combinations for target %s", group.Target)
	}
	for _, combo := range combos {
		if combo.Total() != group.Target {
			t.Fatalf("combination %v sums to %s, want %s", combo, combo.Total(), group.Target)
		}
	}

	got := Format(combos, menu.NewPriceIndex(items))

	want := []string{
		"mixed fruit|unmixed fruit,mixed fruit|unmixed fruit,mixed fruit|unmixed fruit,mixed fruit|unmixed fruit,mixed fruit|unmixed fruit,mixed fruit|unmixed fruit,mixed fruit|unmixed fruit",
		"sampler plate,hot wings,hot wings,mixed fruit|unmixed fruit",
	}
	if !slices.Equal(got.Lines, want) {
		t.Fatalf("unexpected lines:\ngot  %v\nwant %v", got.Lines, want)
	}
	if got.Count != 2 {
		t.Fatalf("expected 2 combinations, got %d", got.Count)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int
		want  string
	}{
		{0, "0 combinations found"},
		{1, "1 combination found"},
		{2, "2 combinations found"},
	}

	for _, tc := range tests {
		if got := (Result{Count: tc.count}).Summary(); got != tc.want {
			t.Fatalf("Summary(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestFormatSeparatorInsideNameDoesNotCollideLines(t *testing.T) {
	t.Parallel()

	// "a,b" at 30 and the pair a=10,b=20 render to the same text, but they
	// are numerically distinct solutions and must stay two lines.
	items := []menu.Item{
		{Name: "a,b", Price: 30},
		{Name: "a", Price: 20},
		{Name: "b", Price: 10},
	}

	// Both render as the text "a,b".
	combos := []solver.Combination{
		{30},
		{20, 10},
	}

	got := Format(combos, menu.NewPriceIndex(items))
	if got.Count != 2 {
		t.Fatalf("expected 2 distinct lines, got %d: %v", got.Count, got.Lines)
	}
}
