package service

import "errors"

var (
	// ErrNoProject indicates an export was requested while no project is
	// loaded in memory.
	ErrNoProject = errors.New("no project loaded")

	// ErrDataFormat indicates project data that could not be parsed.
	ErrDataFormat = errors.New("invalid project data format")

	// ErrStageNotFound indicates a stage reference that resolves to
	// nothing.
	ErrStageNotFound = errors.New("stage not found")

	// ErrLinkNotFound indicates a link lookup miss during a mutating
	// operation that requires the link to exist.
	ErrLinkNotFound = errors.New("link not found")

	// ErrItemNotFound indicates an item lookup miss during a mutating
	// operation that requires the item to exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidStatus indicates a status outside the allowed enum.
	ErrInvalidStatus = errors.New("invalid item status")

	// ErrInvalidPriority indicates a priority outside the allowed enum.
	ErrInvalidPriority = errors.New("invalid item priority")
)
