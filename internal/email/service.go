package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"sportbook/internal/logger"
	"sportbook/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/wneessen/go-mail"
)

const (
	QueueKey  = "emails"
	FailedKey = "emails:failed"

	maxTries = 3

	minReadBackoff = time.Second
	maxReadBackoff = 30 * time.Second
)

const (
	TypeBookingConfirmation = "booking_confirmation"
	TypeCancellation        = "cancellation"
	TypeStatusUpdate        = "status_update"
	TypeGeneric             = "generic"
)

type EmailJob struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// BookingNotice carries what a booking email needs to render.
type BookingNotice struct {
	To           string
	Name         string
	BookingID    int
	VenueName    string
	VenueAddress string
	Date         string
	StartTime    string
	EndTime      string
	TotalPrice   float64
	RefundAmount *float64
	Status       string
}

type Config struct {
	From       string
	FromName   string
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	RetryDelay time.Duration
}

type Service struct {
	redis      *redis.Client
	from       string
	fromName   string
	smtpHost   string
	smtpPort   string
	smtpUser   string
	smtpPass   string
	retryDelay time.Duration

	// readBackoff is the first pause after a failed queue read.
	readBackoff time.Duration
	// deliver is swapped in tests.
	deliver     func(ctx context.Context, job EmailJob) error
}

func New(rdb *redis.Client, cfg Config) *Service {
	s := &Service{
		redis:      rdb,
		from:       cfg.From,
		fromName:   cfg.FromName,
		smtpHost:   cfg.SMTPHost,
		smtpPort:   cfg.SMTPPort,
		smtpUser:   cfg.SMTPUser,
		smtpPass:   cfg.SMTPPass,
		retryDelay: cfg.RetryDelay,

		readBackoff: minReadBackoff,
	}
	if s.retryDelay == 0 {
		s.retryDelay = 5 * time.Second
	}
	s.deliver = s.sendNow
	return s
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	return s.enqueue(ctx, EmailJob{Type: TypeGeneric, To: to, Name: name, Subject: subject, Body: body})
}

func (s *Service) enqueue(ctx context.Context, job EmailJob) error {
	if job.To == "" {
		return errors.New("email: empty recipient")
	}
	job.Tries = 0
	job.Created = time.Now()

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal email job: %w", err)
	}

	if err := s.redis.LPush(ctx, QueueKey, string(data)).Err(); err != nil {
		logger.Error("failed to queue email", "to", job.To, "type", job.Type, "error", err)
		metrics.RecordEmail(job.Type, "queue_error")
		return err
	}

	metrics.RecordEmail(job.Type, "queued")
	logger.Info("email queued", "to", job.To, "type", job.Type)
	return nil
}

// Start consumes the queue until ctx is cancelled. While redis is
// unreachable it backs off between reads.
func (s *Service) Start(ctx context.Context) {
	logger.Info("email worker started")

	var backoff time.Duration
	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker stopped")
			return
		default:
		}

		if _, err := s.processNext(ctx); err != nil {
			backoff = nextBackoff(backoff, s.readBackoff)
			logger.Warn("email queue read failed", "error", err, "retry_in", backoff.String())
			select {
			case <-ctx.Done():
			case <-time.After(backoff):
			}
			continue
		}
		backoff = 0
	}
}

// nextBackoff doubles prev, starting at first and capped at maxReadBackoff.
func nextBackoff(prev, first time.Duration) time.Duration {
	if prev <= 0 {
		return first
	}
	next := prev * 2
	if next > maxReadBackoff {
		next = maxReadBackoff
	}
	return next
}

// processNext handles at most one job. It reports whether a job was taken;
// the error is set only when the queue itself could not be read.
func (s *Service) processNext(ctx context.Context) (bool, error) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, QueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) || ctx.Err() != nil {
			return false, nil
		}
		return false, err
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Error("bad email job", "error", err)
		return true, nil
	}

	job.Tries++
	if err := s.deliver(ctx, job); err != nil {
		logger.Warn("email delivery failed", "to", job.To, "attempt", job.Tries, "error", err)

		if job.Tries < maxTries {
			metrics.RecordEmail(job.Type, "retry")
			s.requeue(ctx, job)
		} else {
			metrics.RecordEmail(job.Type, "failed")
			s.saveFailed(job, err)
		}
		return true, nil
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Info("email sent", "to", job.To, "type", job.Type, "attempt", job.Tries)
	return true, nil
}

func (s *Service) requeue(ctx context.Context, job EmailJob) {
	select {
	case <-ctx.Done():
	case <-time.After(s.retryDelay):
	}

	data, _ := json.Marshal(job)
	if err := s.redis.LPush(context.Background(), QueueKey, string(data)).Err(); err != nil {
		logger.Error("email requeue failed", "to", job.To, "error", err)
		s.saveFailed(job, err)
	}
}

func (s *Service) sendNow(ctx context.Context, job EmailJob) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(job.To); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(job.Subject)
	msg.SetBodyString(mail.TypeTextPlain, job.Body)

	port, err := strconv.Atoi(s.smtpPort)
	if err != nil {
		return fmt.Errorf("invalid smtp port %q: %w", s.smtpPort, err)
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTimeout(10 * time.Second),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.smtpUser != "" && s.smtpPass != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.smtpUser),
			mail.WithPassword(s.smtpPass),
		)
	}

	client, err := mail.NewClient(s.smtpHost, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	if pushErr := s.redis.LPush(context.Background(), FailedKey, string(data)).Err(); pushErr != nil {
		logger.Error("dead-letter push failed", "to", job.To, "error", pushErr)
		return
	}
	logger.Error("email moved to failed queue", "to", job.To, "tries", job.Tries)
}

// QueueLength also refreshes the queue gauge.
func (s *Service) QueueLength(ctx context.Context) int64 {
	length, err := s.redis.LLen(ctx, QueueKey).Result()
	if err != nil {
		return 0
	}
	metrics.EmailQueueLength.Set(float64(length))
	return length
}

func (s *Service) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func (s *Service) SendBookingConfirmation(ctx context.Context, n BookingNotice) error {
	subject := "Booking received - " + n.VenueName
	body := fmt.Sprintf(`Hi %s,

We have reserved your slot.

Booking: #%d
Venue: %s, %s
Date: %s
Time: %s - %s
Total: %s

Cancel more than 24 hours ahead for a full refund, or 12 to 24 hours ahead for half.

- %s`, n.Name, n.BookingID, n.VenueName, n.VenueAddress, n.Date, n.StartTime, n.EndTime, money(n.TotalPrice), s.fromName)

	return s.enqueue(ctx, EmailJob{Type: TypeBookingConfirmation, To: n.To, Name: n.Name, Subject: subject, Body: body})
}

func (s *Service) SendCancellation(ctx context.Context, n BookingNotice) error {
	refund := "no refund"
	if n.RefundAmount != nil && *n.RefundAmount > 0 {
		refund = money(*n.RefundAmount)
	}

	subject := "Booking cancelled - " + n.VenueName
	body := fmt.Sprintf(`Hi %s,

Your booking has been cancelled.

Booking: #%d
Venue: %s
Date: %s
Time: %s - %s
Refund: %s

- %s`, n.Name, n.BookingID, n.VenueName, n.Date, n.StartTime, n.EndTime, refund, s.fromName)

	return s.enqueue(ctx, EmailJob{Type: TypeCancellation, To: n.To, Name: n.Name, Subject: subject, Body: body})
}

func (s *Service) SendStatusUpdate(ctx context.Context, n BookingNotice) error {
	subject := fmt.Sprintf("Booking #%d is now %s", n.BookingID, n.Status)
	body := fmt.Sprintf(`Hi %s,

The status of your booking at %s on %s (%s - %s) changed to %s.

- %s`, n.Name, n.VenueName, n.Date, n.StartTime, n.EndTime, n.Status, s.fromName)

	return s.enqueue(ctx, EmailJob{Type: TypeStatusUpdate, To: n.To, Name: n.Name, Subject: subject, Body: body})
}
