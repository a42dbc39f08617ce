package storage

import (
	"errors"
	"strings"
	"sync"

	"github.com/easyperl/fairbanks/internal/menu"
)

const maxMenuItems = 50

var (
	// ErrInvalidMenu indicates the provided menu violates validation rules.
	ErrInvalidMenu = errors.New("menu must contain between 1 and 50 items with non-empty names and positive prices")
)

// defaultMenu is the appetizer list the service starts with.
var defaultMenu = []menu.Item{
	{Name: "mixed fruit", Price: 215},
	{Name: "french fries", Price: 275},
	{Name: "side salad", Price: 335},
	{Name: "hot wings", Price: 355},
	{Name: "mozzarella sticks", Price: 420},
	{Name: "sampler plate", Price: 580},
}

// Storage provides access to the menu used by the solve endpoint.
type Storage interface {
	GetMenu() ([]menu.Item, error)
	SetMenu(items []menu.Item) error
}

// MemoryStorage keeps the menu in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu    sync.RWMutex
	items []menu.Item
}

// NewMemoryStorage initialises storage with a copy of the default menu.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		items: cloneMenu(defaultMenu),
	}
}

// DefaultMenu returns a copy of the default menu.
func DefaultMenu() []menu.Item {
	return cloneMenu(defaultMenu)
}

// GetMenu returns a defensive copy of the currently configured menu.
func (s *MemoryStorage) GetMenu() ([]menu.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneMenu(s.items), nil
}

// SetMenu validates and stores the provided menu. Item order is preserved:
// it determines the order names appear inside alternation slots.
func (s *MemoryStorage) SetMenu(items []menu.Item) error {
	validated, err := validateMenu(items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items = validated
	s.mu.Unlock()

	return nil
}

func cloneMenu(src []menu.Item) []menu.Item {
	out := make([]menu.Item, len(src))
	copy(out, src)
	return out
}

func validateMenu(items []menu.Item) ([]menu.Item, error) {
	if len(items) == 0 || len(items) > maxMenuItems {
		return nil, ErrInvalidMenu
	}

	validated := make([]menu.Item, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" || item.Price <= 0 {
			return nil, ErrInvalidMenu
		}
		validated = append(validated, menu.Item{Name: name, Price: item.Price})
	}

	return validated, nil
}
