package service

import (
	"context"
	"time"

	"github.com/noah-isme/educenter-api/internal/models"
)

// ClassSnapshotReader returns the active class offerings of a branch.
// An empty branch id returns the active offerings of every branch.
type ClassSnapshotReader interface {
	ListActive(ctx context.Context, branchID string) ([]models.ClassOffering, error)
}

func loadSnapshot(ctx context.Context, reader ClassSnapshotReader, metrics *MetricsService, branchID string) ([]models.ClassOffering, error) {
	start := time.Now()
	classes, err := reader.ListActive(ctx, branchID)
	if err != nil {
		return nil, err
	}
	metrics.ObserveDBQuery("classes_list_active", time.Since(start))
	return classes, nil
}
