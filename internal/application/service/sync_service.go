package service

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/kabore/hotelier-api/pkg/cloud"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// syncedTables lists the tables replicated to the central endpoint,
// in dependency order so pulls can satisfy foreign keys.
var syncedTables = []string{
	"room_types",
	"rooms",
	"clients",
	"users",
	"products",
	"service_offerings",
	"hotel_settings",
	"reservations",
	"orders",
	"order_items",
	"service_requests",
	"invoices",
	"invoice_lines",
	"payments",
	"issues",
	"audit_logs",
}

// SyncService mirrors local changes to a central endpoint and pulls back
// remote ones. Cycles are best-effort: a failed cycle leaves local data and
// the checkpoint untouched and the next tick retries from the same point.
type SyncService struct {
	db             *gorm.DB
	client         *cloud.Client
	checkpointPath string
	interval       time.Duration
	logger         *zap.Logger
}

// NewSyncService creates a new sync service
func NewSyncService(db *gorm.DB, client *cloud.Client, checkpointPath string, interval time.Duration, logger *zap.Logger) *SyncService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &SyncService{
		db:             db,
		client:         client,
		checkpointPath: checkpointPath,
		interval:       interval,
		logger:         logger,
	}
}

// Run loops until the context is cancelled. It syncs once at startup, then
// on every tick.
func (s *SyncService) Run(ctx context.Context) {
	s.logger.Info("sync worker started", zap.Duration("interval", s.interval))

	if err := s.Cycle(ctx); err != nil {
		s.logger.Warn("sync cycle failed", zap.Error(err))
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sync worker stopped")
			return
		case <-ticker.C:
			if err := s.Cycle(ctx); err != nil {
				s.logger.Warn("sync cycle failed", zap.Error(err))
			}
		}
	}
}

// Cycle runs one push-then-pull pass over all synced tables. The checkpoint
// only advances after a fully successful pass.
func (s *SyncService) Cycle(ctx context.Context) error {
	lastSync := s.readCheckpoint()
	cycleStart := time.Now()

	for _, table := range syncedTables {
		if err := s.pushTable(ctx, table, lastSync); err != nil {
			return err
		}
	}
	for _, table := range syncedTables {
		if err := s.pullTable(ctx, table, lastSync); err != nil {
			return err
		}
	}

	return s.writeCheckpoint(cycleStart)
}

// pushTable uploads rows changed since the checkpoint. Soft-deleted rows are
// included so deletions propagate.
func (s *SyncService) pushTable(ctx context.Context, table string, since time.Time) error {
	var rows []map[string]interface{}
	err := s.db.WithContext(ctx).Table(table).Unscoped().
		Where("updated_at > ?", since).
		Find(&rows).Error
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	if err := s.client.Push(ctx, table, rows); err != nil {
		return err
	}
	s.logger.Debug("pushed rows", zap.String("table", table), zap.Int("count", len(rows)))
	return nil
}

// pullTable fetches remote rows changed since the checkpoint and upserts them
// by primary key. Last write wins.
func (s *SyncService) pullTable(ctx context.Context, table string, since time.Time) error {
	rows, err := s.client.Pull(ctx, table, since)
	if err != nil {
		return err
	}

	for _, row := range rows {
		id, ok := row["id"]
		if !ok {
			continue
		}

		var count int64
		if err := s.db.WithContext(ctx).Table(table).Unscoped().
			Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			err = s.db.WithContext(ctx).Table(table).Unscoped().
				Where("id = ?", id).Updates(row).Error
		} else {
			err = s.db.WithContext(ctx).Table(table).Create(row).Error
		}
		if err != nil {
			return err
		}
	}

	if len(rows) > 0 {
		s.logger.Debug("pulled rows", zap.String("table", table), zap.Int("count", len(rows)))
	}
	return nil
}

func (s *SyncService) readCheckpoint() time.Time {
	data, err := os.ReadFile(s.checkpointPath)
	if err != nil {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(string(data)))
	if err != nil {
		return time.Time{}
	}
	return ts
}

func (s *SyncService) writeCheckpoint(ts time.Time) error {
	return os.WriteFile(s.checkpointPath, []byte(ts.UTC().Format(time.RFC3339)), 0o644)
}
