package service

import (
	"context"
	"fmt"
	"time"

	"awqaf/internal/repository"
)

type AuditLogResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	WaqfGovID  *int64 `json:"waqf_gov_id"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, nationalID string, govID *int64, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
	waqfs     WaqfService
}

// NewAuditService creates a new AuditService instance
func NewAuditService(auditRepo repository.AuditRepository, waqfs WaqfService) AuditService {
	return &auditService{auditRepo: auditRepo, waqfs: waqfs}
}

// GetAuditLogs returns the trail of every waqf the caller may see, or of one of them when govID is set.
func (s *auditService) GetAuditLogs(ctx context.Context, nationalID string, govID *int64, page, limit int) ([]AuditLogResponse, int64, error) {
	var govIDs []int64
	if govID != nil {
		ok, err := s.waqfs.IsAuthorized(ctx, *govID, nationalID)
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return nil, 0, ErrForbidden
		}
		govIDs = []int64{*govID}
	} else {
		ids, err := s.waqfs.AuthorizedGovIDs(ctx, nationalID)
		if err != nil {
			return nil, 0, err
		}
		govIDs = ids
	}

	logs, total, err := s.auditRepo.List(ctx, govIDs, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		userName := "System"
		userID := ""
		if l.User != nil {
			userName = l.User.Name
		}
		if l.UserID != nil {
			userID = l.UserID.String()
		}

		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			UserID:     userID,
			UserName:   userName,
			WaqfGovID:  l.WaqfGovID,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		})
	}

	return res, total, nil
}
