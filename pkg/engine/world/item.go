package world

import "strings"

// Item is a stack of one item kind. Kind is a qualified item id such as
// "(O)68"; the "(O)" prefix names the object item type.
type Item struct {
	Kind  string
	Stack int
}

// NewItem creates a single item of the given kind
func NewItem(kind string) *Item {
	return &Item{Kind: kind, Stack: 1}
}

// IsEmpty returns true for nil items and exhausted stacks
func (i *Item) IsEmpty() bool {
	return i == nil || i.Stack <= 0 || strings.TrimSpace(i.Kind) == ""
}

// ItemFactory creates item instances from a qualified kind id.
// Unknown kinds yield (nil, false).
type ItemFactory interface {
	Create(kind string) (*Item, bool)
}

// Catalog is an ItemFactory over a fixed set of known kinds, with display names
type Catalog map[string]string

// Create implements ItemFactory
func (c Catalog) Create(kind string) (*Item, bool) {
	if _, ok := c[kind]; !ok {
		return nil, false
	}
	return NewItem(kind), true
}

// Name returns the display name of kind, falling back to the id itself
func (c Catalog) Name(kind string) string {
	if name, ok := c[kind]; ok && name != "" {
		return name
	}
	return kind
}
