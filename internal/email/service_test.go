package email

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"sportbook/internal/logger"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("error")

	code := m.Run()
	os.Exit(code)
}

func newTestService(rdb *redis.Client) *Service {
	return New(rdb, Config{
		From:       "noreply@sportbook.local",
		FromName:   "Sportbook",
		SMTPHost:   "smtp.test.com",
		SMTPPort:   "587",
		RetryDelay: time.Millisecond,
	})
}

func jobJSON(t *testing.T, job EmailJob) string {
	data, err := json.Marshal(job)
	require.NoError(t, err)
	return string(data)
}

func TestSend(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(QueueKey, `.*`).SetVal(1)

	err := newTestService(db).Send(ctx, "user@example.com", "User", "Hello", "Test body")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSend_EmptyRecipient(t *testing.T) {
	db, mock := redismock.NewClientMock()

	err := newTestService(db).Send(context.Background(), "", "User", "Hello", "body")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(QueueKey, `.*`).SetErr(assert.AnError)

	err := newTestService(db).Send(ctx, "user@example.com", "User", "Hello", "Test body")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingNotices(t *testing.T) {
	refund := 40.0
	notice := BookingNotice{
		To: "player@example.com", Name: "Asha", BookingID: 11,
		VenueName: "Smash Arena", VenueAddress: "1 Court Rd",
		Date: "2030-06-10", StartTime: "10:00", EndTime: "12:00",
		TotalPrice: 80, RefundAmount: &refund, Status: "CONFIRMED",
	}

	cases := []struct {
		name string
		send func(*Service, context.Context, BookingNotice) error
		want string
	}{
		{"confirmation", (*Service).SendBookingConfirmation, `booking_confirmation`},
		{"cancellation", (*Service).SendCancellation, `Refund: 40\.00`},
		{"status", (*Service).SendStatusUpdate, `is now CONFIRMED`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			mock.Regexp().ExpectLPush(QueueKey, `.*`+tc.want+`.*`).SetVal(1)

			require.NoError(t, tc.send(newTestService(db), context.Background(), notice))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProcessNext_Delivers(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := newTestService(db)

	var delivered []EmailJob
	svc.deliver = func(_ context.Context, job EmailJob) error {
		delivered = append(delivered, job)
		return nil
	}

	mock.ExpectBRPop(2*time.Second, QueueKey).
		SetVal([]string{QueueKey, jobJSON(t, EmailJob{Type: TypeGeneric, To: "a@example.com", Subject: "Hi"})})

	taken, err := svc.processNext(context.Background())
	require.NoError(t, err)
	assert.True(t, taken)
	require.Len(t, delivered, 1)
	assert.Equal(t, 1, delivered[0].Tries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_RetriesThenDeadLetters(t *testing.T) {
	t.Run("requeued while attempts remain", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		svc := newTestService(db)
		svc.deliver = func(context.Context, EmailJob) error { return errors.New("smtp down") }

		mock.ExpectBRPop(2*time.Second, QueueKey).
			SetVal([]string{QueueKey, jobJSON(t, EmailJob{Type: TypeGeneric, To: "a@example.com"})})
		mock.Regexp().ExpectLPush(QueueKey, `.*"tries":1.*`).SetVal(1)

		taken, err := svc.processNext(context.Background())
		require.NoError(t, err)
		assert.True(t, taken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("dead-lettered after the last attempt", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		svc := newTestService(db)
		svc.deliver = func(context.Context, EmailJob) error { return errors.New("mailbox unavailable") }

		mock.ExpectBRPop(2*time.Second, QueueKey).
			SetVal([]string{QueueKey, jobJSON(t, EmailJob{Type: TypeGeneric, To: "a@example.com", Tries: maxTries - 1})})
		mock.Regexp().ExpectLPush(FailedKey, `.*mailbox unavailable.*`).SetVal(1)

		taken, err := svc.processNext(context.Background())
		require.NoError(t, err)
		assert.True(t, taken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProcessNext_EmptyQueue(t *testing.T) {
	db, mock := redismock.NewClientMock()

	mock.ExpectBRPop(2*time.Second, QueueKey).RedisNil()

	taken, err := newTestService(db).processNext(context.Background())
	require.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_QueueUnreachable(t *testing.T) {
	db, mock := redismock.NewClientMock()

	mock.ExpectBRPop(2*time.Second, QueueKey).SetErr(errors.New("dial tcp 127.0.0.1:1: connection refused"))

	taken, err := newTestService(db).processNext(context.Background())
	assert.Error(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextBackoff(t *testing.T) {
	d := nextBackoff(0, time.Second)
	assert.Equal(t, time.Second, d)

	d = nextBackoff(d, time.Second)
	assert.Equal(t, 2*time.Second, d)

	assert.Equal(t, maxReadBackoff, nextBackoff(20*time.Second, time.Second))
	assert.Equal(t, maxReadBackoff, nextBackoff(maxReadBackoff, time.Second))
}

func TestStart_BacksOffWhenQueueUnreachable(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := newTestService(db)
	svc.readBackoff = time.Hour

	mock.ExpectBRPop(2*time.Second, QueueKey).SetErr(errors.New("connection refused"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		svc.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop while backing off")
	}
	// one read, then a pause until ctx ended
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen(QueueKey).SetVal(5)

	assert.Equal(t, int64(5), newTestService(db).QueueLength(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()

	mock.ExpectLLen(QueueKey).SetErr(assert.AnError)

	assert.Equal(t, int64(0), newTestService(db).QueueLength(context.Background()))
}
