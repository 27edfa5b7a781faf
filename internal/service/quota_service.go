package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "casamx/internal/errors"
	"casamx/internal/model"
	"casamx/internal/repository"
)

// QuotaService enforces the daily per-IP limit on anonymous address
// searches and records every search in the usage log.
type QuotaService interface {
	CheckAndLog(ctx context.Context, ip, query string, userID *uuid.UUID) error
}

type quotaService struct {
	usage     repository.UsageRepository
	maxPerDay int
}

// NewQuotaService creates the quota service with the configured daily
// threshold for anonymous callers.
func NewQuotaService(usage repository.UsageRepository, maxPerDay int) QuotaService {
	return &quotaService{usage: usage, maxPerDay: maxPerDay}
}

// CheckAndLog counts today's usage for the IP and either rejects the
// request or appends a usage record. Authenticated callers (userID set)
// bypass the limit but are still logged. The count-then-insert sequence is
// not serialized; concurrent requests from one IP can overshoot the quota
// by a few rows.
func (s *quotaService) CheckAndLog(ctx context.Context, ip, query string, userID *uuid.UUID) error {
	if userID == nil {
		since := startOfDay(time.Now())
		count, err := s.usage.CountForIPSince(ctx, ip, since)
		if err != nil {
			return fmt.Errorf("count usage: %w", err)
		}
		if count >= int64(s.maxPerDay) {
			return apperrors.ErrQuotaExceeded
		}
	}

	record := &model.SearchUsage{
		UserID:    userID,
		IPAddress: ip,
		Query:     query,
	}
	if err := s.usage.Log(ctx, record); err != nil {
		return fmt.Errorf("log usage: %w", err)
	}
	return nil
}

// startOfDay truncates t to server-local midnight, the quota window
// boundary.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
