package domain

// ItemStatistics aggregates item counts across the whole project tree.
type ItemStatistics struct {
	Total      int                  `json:"total"`
	ByStatus   map[ItemStatus]int   `json:"byStatus"`
	ByPriority map[ItemPriority]int `json:"byPriority"`
}

// NewItemStatistics returns statistics with every bucket present and zeroed,
// so consumers never have to distinguish a missing bucket from an empty one.
func NewItemStatistics() ItemStatistics {
	return ItemStatistics{
		ByStatus: map[ItemStatus]int{
			StatusTodo: 0, StatusInProgress: 0, StatusDone: 0,
		},
		ByPriority: map[ItemPriority]int{
			PriorityLow: 0, PriorityMedium: 0, PriorityHigh: 0,
		},
	}
}

// ValidationResult reports an advisory structural check: a flag plus the
// full list of defects found, never just the first.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}
