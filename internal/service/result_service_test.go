package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/educenter-api/internal/dto"
	appErrors "github.com/noah-isme/educenter-api/pkg/errors"
)

func TestResultServiceRoundTrip(t *testing.T) {
	repo := newMemoryResultRepo()
	svc := NewResultService(repo, NewMetricsService(), time.Minute, nil, true)

	_, err := svc.Latest(context.Background(), "s1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	svc.Record(context.Background(), &dto.AutoEnrollmentResult{StudentID: "s1", Status: dto.AutoEnrollmentCompleted, EnrolledCount: 2})
	got, err := svc.Latest(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.EnrolledCount)
}

func TestResultServiceDisabled(t *testing.T) {
	repo := newMemoryResultRepo()
	svc := NewResultService(repo, nil, 0, nil, false)

	svc.Record(context.Background(), &dto.AutoEnrollmentResult{StudentID: "s1"})
	assert.Empty(t, repo.results)

	_, err := svc.Latest(context.Background(), "s1")
	assert.True(t, errors.Is(err, appErrors.ErrServiceUnavailable))
}

func TestResultServiceSaveFailureIsSwallowed(t *testing.T) {
	repo := newMemoryResultRepo()
	repo.saveErr = errors.New("redis down")
	svc := NewResultService(repo, nil, 0, nil, true)

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), &dto.AutoEnrollmentResult{StudentID: "s1"})
	})
}
