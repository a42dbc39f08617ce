package menu

import (
	"github.com/easyperl/fairbanks/internal/money"
)

// Item is a named menu entry with its price.
type Item struct {
	Name  string
	Price money.Cents
}

// Group pairs a target amount with the menu items available for it.
type Group struct {
	Target money.Cents
	Items  []Item
}

// Prices returns the price of every item in the group, duplicates included.
func (g Group) Prices() []money.Cents {
	prices := make([]money.Cents, len(g.Items))
	for i, item := range g.Items {
		prices[i] = item.Price
	}
	return prices
}

// PriceIndex maps each price to the names sold at that price, in the order
// the items appeared in the input.
type PriceIndex struct {
	names map[money.Cents][]string
}

// NewPriceIndex builds a PriceIndex from the given items.
func NewPriceIndex(items []Item) *PriceIndex {
	ix := &PriceIndex{names: make(map[money.Cents][]string, len(items))}
	for _, item := range items {
		ix.names[item.Price] = append(ix.names[item.Price], item.Name)
	}
	return ix
}

// Names returns the item names registered at the given price, preserving
// input order. The returned slice must not be mutated.
func (ix *PriceIndex) Names(price money.Cents) []string {
	return ix.names[price]
}
