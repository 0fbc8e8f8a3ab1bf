package application

import (
	"context"
	"errors"

	"github.com/kert-club/community-api/internal/domain/entity"
	repo "github.com/kert-club/community-api/internal/domain/repository"
)

// HistoryService is plain CRUD over the club timeline.
type HistoryService struct {
	Histories repo.HistoryRepository
}

func NewHistoryService(histories repo.HistoryRepository) *HistoryService {
	return &HistoryService{Histories: histories}
}

func (s *HistoryService) List(ctx context.Context) ([]entity.History, error) {
	return s.Histories.List(ctx)
}

func (s *HistoryService) Get(ctx context.Context, id int64) (*entity.History, error) {
	h, err := s.Histories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

type HistoryInput struct {
	Year    int
	Month   int
	Content string
}

func (s *HistoryService) Create(ctx context.Context, in HistoryInput) (*entity.History, error) {
	h := &entity.History{Year: in.Year, Month: in.Month, Content: in.Content}
	if err := s.Histories.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Update overwrites year, month and content. A missing id is ErrNotFound and
// never creates a record.
func (s *HistoryService) Update(ctx context.Context, id int64, in HistoryInput) (*entity.History, error) {
	h, err := s.Histories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	h.Year = in.Year
	h.Month = in.Month
	h.Content = in.Content
	if err := s.Histories.Update(ctx, h); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

// Delete is idempotent; the second delete of an id is not an error.
func (s *HistoryService) Delete(ctx context.Context, id int64) error {
	return s.Histories.Delete(ctx, id)
}
