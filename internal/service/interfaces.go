package service

import (
	"context"

	"github.com/alexanderramin/gantry/internal/domain"
)

// ProjectService owns the single current project: its lifecycle, durability,
// and stage/link navigation. Read-path lookups return nil/false on miss and
// never error; persistence failures are logged and swallowed so the
// in-memory session stays usable when storage is unavailable.
type ProjectService interface {
	// CurrentProject returns the in-memory project, loading it from the
	// store or constructing the default project as needed. Never nil.
	CurrentProject(ctx context.Context) *domain.Project

	// ProjectStages returns the current project's stage list.
	ProjectStages(ctx context.Context) []*domain.ProjectStage

	// LoadProjectData parses serialized project data and replaces the
	// current project wholesale, persisting afterward. Fails with
	// ErrDataFormat when parsing fails, leaving prior state untouched.
	LoadProjectData(ctx context.Context, data []byte) (*domain.Project, error)

	// LoadProject replaces the current project with an already-constructed
	// tree (the template-application entrypoint) and persists.
	LoadProject(ctx context.Context, p *domain.Project) (*domain.Project, error)

	// ExportProjectData serializes the current project to a pretty JSON
	// string. Fails with ErrNoProject when nothing is loaded in memory.
	ExportProjectData(ctx context.Context) (string, error)

	AddStage(ctx context.Context, data domain.ProjectStage) *domain.ProjectStage
	RemoveStage(ctx context.Context, stageID string)
	UpdateStage(ctx context.Context, updated *domain.ProjectStage) bool
	GetStage(ctx context.Context, stageID string) *domain.ProjectStage

	AddLink(ctx context.Context, stageID string, data domain.Link) *domain.Link
	RemoveLink(ctx context.Context, stageID, linkID string) bool
	UpdateLink(ctx context.Context, stageID string, updated *domain.Link) bool
	GetLink(ctx context.Context, stageID, linkID string) *domain.Link

	// SaveToStore persists the current project under the fixed store key.
	// Best-effort: failures are logged, never returned.
	SaveToStore(ctx context.Context)

	// ClearStore removes the persisted project from the store.
	ClearStore(ctx context.Context)

	// ResetProject clears persisted state and rebuilds the default project.
	ResetProject(ctx context.Context) *domain.Project
}

// ItemRef addresses one item inside the project tree.
type ItemRef struct {
	StageID string `json:"stageId"`
	LinkID  string `json:"linkId"`
	ItemID  string `json:"itemId"`
}

// ItemService routes item-level reads and mutations through the project
// service. Mutations require the addressed link to exist and fail with
// ErrLinkNotFound otherwise; read-path lookups return nil/empty on miss.
type ItemService interface {
	AddItem(ctx context.Context, stageID, linkID string, data domain.Item) (*domain.Item, error)
	UpdateItem(ctx context.Context, stageID, linkID string, updated domain.Item) (*domain.Item, error)
	DeleteItem(ctx context.Context, stageID, linkID, itemID string) error
	GetItem(ctx context.Context, stageID, linkID, itemID string) *domain.Item

	ItemsByLink(ctx context.Context, stageID, linkID string) []*domain.Item
	ItemsByStage(ctx context.Context, stageID string) []*domain.Item

	// AllItems flattens the whole tree into one sequence, preserving
	// stage-then-link-then-item order.
	AllItems(ctx context.Context) []*domain.Item

	ItemsByStatus(ctx context.Context, status domain.ItemStatus) []*domain.Item
	ItemsByPriority(ctx context.Context, priority domain.ItemPriority) []*domain.Item

	// SearchItems matches case-insensitively against description,
	// participant names, and notes. A blank keyword applies no filter and
	// returns all items.
	SearchItems(ctx context.Context, keyword string) []*domain.Item

	UpdateItemStatus(ctx context.Context, stageID, linkID, itemID string, status domain.ItemStatus) (*domain.Item, error)

	// BatchUpdateItemStatus applies a status change per ref. A single
	// item's failure is logged and skipped; the batch does not abort.
	// Returns the items that were updated.
	BatchUpdateItemStatus(ctx context.Context, refs []ItemRef, status domain.ItemStatus) ([]*domain.Item, error)

	// CopyItem duplicates an item's field values under a fresh identifier
	// into the target link. MoveItem is copy-then-delete; the delete runs
	// only when the copy succeeded.
	CopyItem(ctx context.Context, srcStageID, srcLinkID, itemID, dstStageID, dstLinkID string) (*domain.Item, error)
	MoveItem(ctx context.Context, srcStageID, srcLinkID, itemID, dstStageID, dstLinkID string) (*domain.Item, error)

	// Statistics makes a single pass over all items producing the total
	// plus per-status and per-priority bucket counts.
	Statistics(ctx context.Context) domain.ItemStatistics

	// ValidateItem is an advisory structural check on an item record.
	ValidateItem(data domain.Item) domain.ValidationResult
}
