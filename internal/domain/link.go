package domain

// Link is one of the six fixed management threads that run through every
// stage. It owns its items; insertion order is display order. The link name
// is the merge/match key across imports and must stay stable once created.
type Link struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Owner string  `json:"owner"`
	Color string  `json:"color"`
	Items []*Item `json:"items"`
}

// NewLink constructs a link from a partial record, defaulting the ID and
// display color and normalizing any items carried in the record.
func NewLink(data Link) *Link {
	l := data
	l.Normalize()
	return &l
}

// Normalize fills defaults in place, recursively normalizing owned items.
func (l *Link) Normalize() {
	if l.ID == "" {
		l.ID = NewID("link")
	}
	if l.Color == "" {
		l.Color = DefaultColor()
	}
	// Decoded item arrays may carry null entries; drop them.
	kept := l.Items[:0]
	for _, it := range l.Items {
		if it == nil {
			continue
		}
		it.Normalize()
		kept = append(kept, it)
	}
	l.Items = kept
	if l.Items == nil {
		l.Items = []*Item{}
	}
}

// AddItem appends an item to the link.
func (l *Link) AddItem(it *Item) {
	if it == nil {
		return
	}
	it.Normalize()
	l.Items = append(l.Items, it)
}

// RemoveItem filters out the item with the given ID. Absent IDs are a no-op.
func (l *Link) RemoveItem(itemID string) {
	kept := l.Items[:0]
	for _, it := range l.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	l.Items = kept
}

// GetItem returns the item with the given ID, or nil.
func (l *Link) GetItem(itemID string) *Item {
	for _, it := range l.Items {
		if it.ID == itemID {
			return it
		}
	}
	return nil
}

// UpdateItem replaces the item with the same ID. Returns false without
// modifying anything when the ID is unknown; callers are expected to have
// fetched the item before updating it.
func (l *Link) UpdateItem(updated *Item) bool {
	if updated == nil {
		return false
	}
	for idx, it := range l.Items {
		if it.ID == updated.ID {
			updated.Normalize()
			l.Items[idx] = updated
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the link and its items.
func (l *Link) Clone() *Link {
	c := *l
	c.Items = make([]*Item, 0, len(l.Items))
	for _, it := range l.Items {
		c.Items = append(c.Items, it.Clone())
	}
	return &c
}
