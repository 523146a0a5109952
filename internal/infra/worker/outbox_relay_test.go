//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-booking/internal/infra/repository"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/infra/worker"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type jobStoreMock struct {
	mock.Mock
}

func (m *jobStoreMock) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]repository.NotificationJob, error) {
	args := m.Called(ctx, tx, now, limit)
	jobs, _ := args.Get(0).([]repository.NotificationJob)
	return jobs, args.Error(1)
}

func (m *jobStoreMock) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error {
	return m.Called(ctx, tx, jobID).Error(0)
}

func (m *jobStoreMock) RecordFailure(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, retryAt time.Time, terminal bool) error {
	return m.Called(ctx, tx, jobID, lastError, retryAt, terminal).Error(0)
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) Publish(ctx context.Context, topic, messageID string, body []byte) error {
	return m.Called(ctx, topic, messageID, body).Error(0)
}

// noTx hands fn a nil DBTX; the mocks never touch it.
func noTx(ctx context.Context, fn func(tx sqlc.DBTX) (int, error)) (int, error) {
	return fn(nil)
}

func testOutboxConfig() config.OutboxConfig {
	return config.OutboxConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		MaxAttempts:  3,
		RetryBackoff: time.Second,
	}
}

func TestOutboxRelay_RelayOnce(t *testing.T) {
	created := repository.NotificationJob{
		ID:      uuid.New(),
		Kind:    "booking_event",
		Topic:   "booking.created",
		Payload: []byte(`{"booking_id":"x"}`),
	}
	cancelled := repository.NotificationJob{
		ID:       uuid.New(),
		Kind:     "booking_event",
		Topic:    "booking.cancelled",
		Payload:  []byte(`{}`),
		Attempts: 2,
	}

	testCases := []struct {
		name          string
		jobs          []repository.NotificationJob
		setupMock     func(store *jobStoreMock, pub *publisherMock)
		expectedSent  int
		expectedError bool
	}{
		{
			name: "success: publishes and marks sent",
			jobs: []repository.NotificationJob{created},
			setupMock: func(store *jobStoreMock, pub *publisherMock) {
				pub.On("Publish", mock.Anything, "booking.created", created.ID.String(), created.Payload).Return(nil)
				store.On("MarkSent", mock.Anything, mock.Anything, created.ID).Return(nil)
			},
			expectedSent: 1,
		},
		{
			name: "publish failure is rescheduled",
			jobs: []repository.NotificationJob{created},
			setupMock: func(store *jobStoreMock, pub *publisherMock) {
				pub.On("Publish", mock.Anything, "booking.created", mock.Anything, mock.Anything).Return(errors.New("broker down"))
				store.On("RecordFailure", mock.Anything, mock.Anything, created.ID, "broker down", mock.Anything, false).Return(nil)
			},
			expectedSent: 0,
		},
		{
			name: "last attempt parks the job",
			jobs: []repository.NotificationJob{cancelled},
			setupMock: func(store *jobStoreMock, pub *publisherMock) {
				pub.On("Publish", mock.Anything, "booking.cancelled", mock.Anything, mock.Anything).Return(errors.New("broker down"))
				store.On("RecordFailure", mock.Anything, mock.Anything, cancelled.ID, "broker down", mock.Anything, true).Return(nil)
			},
			expectedSent: 0,
		},
		{
			name: "mark sent failure aborts the batch",
			jobs: []repository.NotificationJob{created},
			setupMock: func(store *jobStoreMock, pub *publisherMock) {
				pub.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
				store.On("MarkSent", mock.Anything, mock.Anything, created.ID).Return(errors.New("db down"))
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := &jobStoreMock{}
			pub := &publisherMock{}
			store.On("ClaimDue", mock.Anything, mock.Anything, mock.Anything, int32(10)).Return(tc.jobs, nil)
			tc.setupMock(store, pub)

			relay := worker.NewOutboxRelay(noTx, store, pub, metrics.New(prometheus.NewRegistry()), testOutboxConfig())
			sent, err := relay.RelayOnce(context.Background())

			if tc.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedSent, sent)
			}
			store.AssertExpectations(t)
			pub.AssertExpectations(t)
		})
	}
}

func TestOutboxRelay_CountsPublished(t *testing.T) {
	job := repository.NotificationJob{ID: uuid.New(), Topic: "booking.confirmed", Payload: []byte(`{}`)}
	store := &jobStoreMock{}
	pub := &publisherMock{}
	store.On("ClaimDue", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]repository.NotificationJob{job}, nil)
	store.On("MarkSent", mock.Anything, mock.Anything, job.ID).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	m := metrics.New(prometheus.NewRegistry())
	relay := worker.NewOutboxRelay(noTx, store, pub, m, testOutboxConfig())

	_, err := relay.RelayOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(1), promtest.ToFloat64(m.OutboxPublishedTotal.WithLabelValues("booking.confirmed")))
}
