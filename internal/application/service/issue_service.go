package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/domain/entity"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/pkg/apperror"
)

// IssueService tracks room maintenance problems
type IssueService struct {
	issueRepo repository.IssueRepository
	roomRepo  repository.RoomRepository
}

// NewIssueService creates a new issue service
func NewIssueService(issueRepo repository.IssueRepository, roomRepo repository.RoomRepository) *IssueService {
	return &IssueService{issueRepo: issueRepo, roomRepo: roomRepo}
}

// ReportIssueInput represents the report issue input
type ReportIssueInput struct {
	RoomID       uuid.UUID
	ReportedByID *uuid.UUID
	Description  string
	Priority     string
}

// Report files a problem against a room
func (s *IssueService) Report(ctx context.Context, input *ReportIssueInput) (*entity.Issue, error) {
	if input.Description == "" {
		return nil, apperror.NewValidationError("description is required")
	}

	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}

	issue := &entity.Issue{
		RoomID:       input.RoomID,
		ReportedByID: input.ReportedByID,
		Description:  input.Description,
		Priority:     input.Priority,
		Status:       enum.IssueStatusOpen,
	}
	if err := s.issueRepo.Create(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// UpdateStatus moves an issue through its workflow
func (s *IssueService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.IssueStatus) error {
	if !status.IsValid() {
		return apperror.NewValidationError("unknown issue status")
	}

	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if issue == nil {
		return apperror.NewNotFoundError("Issue")
	}

	issue.Status = status
	return s.issueRepo.Update(ctx, issue)
}

// List returns issues with filtering
func (s *IssueService) List(ctx context.Context, params *repository.IssueFilterParams) ([]entity.Issue, error) {
	return s.issueRepo.List(ctx, params)
}
