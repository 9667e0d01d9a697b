package domain

type ItemStatus string

const (
	StatusTodo       ItemStatus = "todo"
	StatusInProgress ItemStatus = "in-progress"
	StatusDone       ItemStatus = "done"
)

// ValidItemStatuses is the canonical set of accepted item status strings.
var ValidItemStatuses = map[ItemStatus]bool{
	StatusTodo: true, StatusInProgress: true, StatusDone: true,
}

type ItemPriority string

const (
	PriorityLow    ItemPriority = "low"
	PriorityMedium ItemPriority = "medium"
	PriorityHigh   ItemPriority = "high"
)

// ValidItemPriorities is the canonical set of accepted item priority strings.
var ValidItemPriorities = map[ItemPriority]bool{
	PriorityLow: true, PriorityMedium: true, PriorityHigh: true,
}

type StageStatus string

const (
	StagePlanned    StageStatus = "planned"
	StageInProgress StageStatus = "in-progress"
	StageCompleted  StageStatus = "completed"
)

// DateLayout is the calendar-date format used throughout the project tree.
// Dates travel as plain strings so that an absent date is simply "".
const DateLayout = "2006-01-02"
