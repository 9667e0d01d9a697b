package domain

// Item is a unit of work inside a link: who is involved, where it stands,
// and optionally when it runs. Field order matches the persisted JSON shape.
type Item struct {
	ID           string       `json:"id"`
	Description  string       `json:"description"`
	Participants []string     `json:"participants"`
	Status       ItemStatus   `json:"status"`
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
	Priority     ItemPriority `json:"priority"`
	Notes        string       `json:"notes"`
}

// NewItem constructs an item from a partial record, defaulting missing
// fields: generated ID, todo status, medium priority, non-nil participants.
func NewItem(data Item) *Item {
	it := data
	it.Normalize()
	return &it
}

// Normalize fills defaults in place. Applying it to an already-normalized
// item is a no-op, so reconstruction from serialized form is idempotent.
func (i *Item) Normalize() {
	if i.ID == "" {
		i.ID = NewID("item")
	}
	if i.Participants == nil {
		i.Participants = []string{}
	}
	if i.Status == "" {
		i.Status = StatusTodo
	}
	if i.Priority == "" {
		i.Priority = PriorityMedium
	}
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	c := *i
	c.Participants = append([]string{}, i.Participants...)
	return &c
}
