// Package catalog holds the immutable list of browsable games.
package catalog

import "fmt"

// ProxiedPrefix is prepended to the label of proxied items.
const ProxiedPrefix = "Non-Steam: "

// Item is one browsable entry.
type Item struct {
	// Name is the display name. Items with an empty name are not catalogued.
	Name string

	// AppID is the Steam application id.
	AppID uint32

	// Proxied marks non-Steam shortcuts whose folder is a synthesized
	// compatibility-tool prefix rather than an install directory.
	Proxied bool

	// Path is the folder opened for this item. It is resolved when the
	// catalog is built and may not exist on disk.
	Path string
}

// Label returns the list row text for the item.
func (i Item) Label() string {
	prefix := ""
	if i.Proxied {
		prefix = ProxiedPrefix
	}
	return fmt.Sprintf("%s%s (App ID: %d)", prefix, i.Name, i.AppID)
}

// Catalog is an ordered, read-only collection of items.
type Catalog struct {
	items []Item
}

// New builds a catalog from direct items followed by proxied items. Each
// group keeps the order it was supplied in. Unnamed items are dropped.
func New(direct, proxied []Item) *Catalog {
	items := make([]Item, 0, len(direct)+len(proxied))
	for _, group := range [][]Item{direct, proxied} {
		for _, it := range group {
			if it.Name == "" {
				continue
			}
			items = append(items, it)
		}
	}
	return &Catalog{items: items}
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Empty reports whether the catalog has no items.
func (c *Catalog) Empty() bool {
	return c.Len() == 0
}

// At returns the item at index i.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Items returns a copy of the items in catalog order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Filter returns a new catalog holding the items for which keep returns true.
func (c *Catalog) Filter(keep func(Item) bool) *Catalog {
	out := &Catalog{}
	for _, it := range c.Items() {
		if keep(it) {
			out.items = append(out.items, it)
		}
	}
	return out
}
