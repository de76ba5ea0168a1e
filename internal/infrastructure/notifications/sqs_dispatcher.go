package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"repairflow/internal/domain/entities"
	"repairflow/internal/infrastructure/awsconfig"
	"repairflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

var ErrMissingQueueURL = errors.New("missing NOTIFICATIONS_QUEUE_URL")

// SQSDispatcher forwards notification requests to the queue the messaging
// service consumes (SMS, email, invoice sends). The workflow only requests
// sends; delivery is someone else's problem.

type SQSDispatcher struct {
	client   *sqs.Client
	queueURL string
}

var _ interfaces.INotificationDispatcher = (*SQSDispatcher)(nil)

func NewSQSDispatcher(ctx context.Context) (*SQSDispatcher, error) {
	queueURL := os.Getenv("NOTIFICATIONS_QUEUE_URL")
	if queueURL == "" {
		log.Printf("[notify] missing NOTIFICATIONS_QUEUE_URL")
		return nil, ErrMissingQueueURL
	}

	cfg, err := awsconfig.NewFromEnv(ctx)
	if err != nil {
		log.Printf("[notify] failed creating sqs config err=%v", err)
		return nil, err
	}
	log.Printf("[notify] sqs dispatcher initialized")

	return &SQSDispatcher{client: sqs.NewFromConfig(cfg), queueURL: queueURL}, nil
}

type notificationMessage struct {
	Kind        string `json:"kind"`
	JobID       string `json:"job_id"`
	RequestedAt string `json:"requested_at"`
}

func (d *SQSDispatcher) Notify(ctx context.Context, kind entities.NotificationKind, jobID string) error {
	body, err := json.Marshal(notificationMessage{
		Kind:        string(kind),
		JobID:       jobID,
		RequestedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = d.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(d.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		log.Printf("[notify] send failed kind=%s job_id=%s err=%v", kind, jobID, err)
		return err
	}
	log.Printf("[notify] dispatched kind=%s job_id=%s", kind, jobID)
	return nil
}

// NoopDispatcher logs requested notifications and drops them. It stands in
// when the queue is not configured so local runs keep working.
type NoopDispatcher struct{}

var _ interfaces.INotificationDispatcher = (*NoopDispatcher)(nil)

func (NoopDispatcher) Notify(_ context.Context, kind entities.NotificationKind, jobID string) error {
	log.Printf("[notify] queue not configured, dropping kind=%s job_id=%s", kind, jobID)
	return nil
}
