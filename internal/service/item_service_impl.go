package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/gantry/internal/domain"
)

type itemService struct {
	projects ProjectService
	logger   *slog.Logger
}

// NewItemService creates an ItemService routed through the given project
// service. A nil logger discards log output.
func NewItemService(projects ProjectService, logger *slog.Logger) ItemService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &itemService{projects: projects, logger: logger}
}

// resolveLink enforces link existence as a precondition for item mutation.
func (s *itemService) resolveLink(ctx context.Context, stageID, linkID string) (*domain.Link, error) {
	link := s.projects.GetLink(ctx, stageID, linkID)
	if link == nil {
		return nil, fmt.Errorf("%w: stage %q link %q", ErrLinkNotFound, stageID, linkID)
	}
	return link, nil
}

// persist records the mutation on the project and saves it.
func (s *itemService) persist(ctx context.Context) {
	s.projects.CurrentProject(ctx).Touch()
	s.projects.SaveToStore(ctx)
}

func (s *itemService) AddItem(ctx context.Context, stageID, linkID string, data domain.Item) (*domain.Item, error) {
	link, err := s.resolveLink(ctx, stageID, linkID)
	if err != nil {
		return nil, err
	}
	item := domain.NewItem(data)
	link.AddItem(item)
	s.persist(ctx)
	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, stageID, linkID string, updated domain.Item) (*domain.Item, error) {
	link, err := s.resolveLink(ctx, stageID, linkID)
	if err != nil {
		return nil, err
	}
	item := domain.NewItem(updated)
	if !link.UpdateItem(item) {
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, updated.ID)
	}
	s.persist(ctx)
	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, stageID, linkID, itemID string) error {
	link, err := s.resolveLink(ctx, stageID, linkID)
	if err != nil {
		return err
	}
	link.RemoveItem(itemID)
	s.persist(ctx)
	return nil
}

func (s *itemService) GetItem(ctx context.Context, stageID, linkID, itemID string) *domain.Item {
	link := s.projects.GetLink(ctx, stageID, linkID)
	if link == nil {
		return nil
	}
	return link.GetItem(itemID)
}

func (s *itemService) ItemsByLink(ctx context.Context, stageID, linkID string) []*domain.Item {
	link := s.projects.GetLink(ctx, stageID, linkID)
	if link == nil {
		return []*domain.Item{}
	}
	return link.Items
}

func (s *itemService) ItemsByStage(ctx context.Context, stageID string) []*domain.Item {
	stage := s.projects.GetStage(ctx, stageID)
	if stage == nil {
		return []*domain.Item{}
	}
	items := []*domain.Item{}
	for _, link := range stage.Links {
		items = append(items, link.Items...)
	}
	return items
}

func (s *itemService) AllItems(ctx context.Context) []*domain.Item {
	items := []*domain.Item{}
	for _, stage := range s.projects.CurrentProject(ctx).Stages {
		for _, link := range stage.Links {
			items = append(items, link.Items...)
		}
	}
	return items
}

func (s *itemService) ItemsByStatus(ctx context.Context, status domain.ItemStatus) []*domain.Item {
	matched := []*domain.Item{}
	for _, it := range s.AllItems(ctx) {
		if it.Status == status {
			matched = append(matched, it)
		}
	}
	return matched
}

func (s *itemService) ItemsByPriority(ctx context.Context, priority domain.ItemPriority) []*domain.Item {
	matched := []*domain.Item{}
	for _, it := range s.AllItems(ctx) {
		if it.Priority == priority {
			matched = append(matched, it)
		}
	}
	return matched
}

func (s *itemService) SearchItems(ctx context.Context, keyword string) []*domain.Item {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.AllItems(ctx)
	}
	lower := strings.ToLower(keyword)

	matched := []*domain.Item{}
	for _, it := range s.AllItems(ctx) {
		if itemMatches(it, lower) {
			matched = append(matched, it)
		}
	}
	return matched
}

func itemMatches(it *domain.Item, lowerKeyword string) bool {
	if strings.Contains(strings.ToLower(it.Description), lowerKeyword) {
		return true
	}
	for _, p := range it.Participants {
		if strings.Contains(strings.ToLower(p), lowerKeyword) {
			return true
		}
	}
	return it.Notes != "" && strings.Contains(strings.ToLower(it.Notes), lowerKeyword)
}

func (s *itemService) UpdateItemStatus(ctx context.Context, stageID, linkID, itemID string, status domain.ItemStatus) (*domain.Item, error) {
	if !domain.ValidItemStatuses[status] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	item := s.GetItem(ctx, stageID, linkID, itemID)
	if item == nil {
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
	}
	item.Status = status
	s.persist(ctx)
	return item, nil
}

func (s *itemService) BatchUpdateItemStatus(ctx context.Context, refs []ItemRef, status domain.ItemStatus) ([]*domain.Item, error) {
	if !domain.ValidItemStatuses[status] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updated := []*domain.Item{}
	for _, ref := range refs {
		item, err := s.UpdateItemStatus(ctx, ref.StageID, ref.LinkID, ref.ItemID, status)
		if err != nil {
			s.logger.Warn("skipping item in batch status update",
				"item", ref.ItemID, "error", err)
			continue
		}
		updated = append(updated, item)
	}
	return updated, nil
}

func (s *itemService) CopyItem(ctx context.Context, srcStageID, srcLinkID, itemID, dstStageID, dstLinkID string) (*domain.Item, error) {
	src := s.GetItem(ctx, srcStageID, srcLinkID, itemID)
	if src == nil {
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
	}
	copied := src.Clone()
	copied.ID = "" // fresh identifier on insert
	return s.AddItem(ctx, dstStageID, dstLinkID, *copied)
}

func (s *itemService) MoveItem(ctx context.Context, srcStageID, srcLinkID, itemID, dstStageID, dstLinkID string) (*domain.Item, error) {
	copied, err := s.CopyItem(ctx, srcStageID, srcLinkID, itemID, dstStageID, dstLinkID)
	if err != nil {
		return nil, err
	}
	if err := s.DeleteItem(ctx, srcStageID, srcLinkID, itemID); err != nil {
		return nil, err
	}
	return copied, nil
}

func (s *itemService) Statistics(ctx context.Context) domain.ItemStatistics {
	stats := domain.NewItemStatistics()
	for _, it := range s.AllItems(ctx) {
		stats.Total++
		stats.ByStatus[it.Status]++
		stats.ByPriority[it.Priority]++
	}
	return stats
}

func (s *itemService) ValidateItem(data domain.Item) domain.ValidationResult {
	var errs []string

	if strings.TrimSpace(data.Description) == "" {
		errs = append(errs, "item description must not be empty")
	}
	if data.Participants == nil {
		errs = append(errs, "participants must be a list")
	}
	if data.Status != "" && !domain.ValidItemStatuses[data.Status] {
		errs = append(errs, fmt.Sprintf("invalid item status %q", data.Status))
	}
	if data.Priority != "" && !domain.ValidItemPriorities[data.Priority] {
		errs = append(errs, fmt.Sprintf("invalid item priority %q", data.Priority))
	}
	if data.StartDate != "" && data.EndDate != "" {
		start, serr := time.Parse(domain.DateLayout, data.StartDate)
		end, eerr := time.Parse(domain.DateLayout, data.EndDate)
		if serr == nil && eerr == nil && end.Before(start) {
			errs = append(errs, "start date must not be after end date")
		}
	}

	return domain.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
