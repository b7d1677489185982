package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	domainRepo "github.com/kabore/hotelier-api/internal/domain/repository"
	"gorm.io/gorm"
)

type issueRepository struct {
	db *gorm.DB
}

// NewIssueRepository creates a new issue repository
func NewIssueRepository(db *gorm.DB) domainRepo.IssueRepository {
	return &issueRepository{db: db}
}

func (r *issueRepository) Create(ctx context.Context, issue *entity.Issue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

func (r *issueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Issue, error) {
	var issue entity.Issue
	err := r.db.WithContext(ctx).Preload("Room").First(&issue, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &issue, err
}

func (r *issueRepository) Update(ctx context.Context, issue *entity.Issue) error {
	return r.db.WithContext(ctx).Save(issue).Error
}

func (r *issueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Issue{}, "id = ?", id).Error
}

func (r *issueRepository) List(ctx context.Context, params *domainRepo.IssueFilterParams) ([]entity.Issue, error) {
	var issues []entity.Issue

	query := r.db.WithContext(ctx).Model(&entity.Issue{}).Preload("Room")
	if params != nil {
		if params.Status != nil {
			query = query.Where("status = ?", *params.Status)
		}
		if params.RoomID != nil {
			query = query.Where("room_id = ?", *params.RoomID)
		}
	}

	err := query.Order("created_at DESC").Find(&issues).Error
	return issues, err
}

func (r *issueRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Issue{}).
		Where("status <> ?", enum.IssueStatusResolved).
		Count(&count).Error
	return count, err
}
