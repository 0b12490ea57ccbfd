package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/convertly/convertly-api/internal/logger"
	"github.com/convertly/convertly-api/internal/rates"
)

// RatesUpdatedEventType is the event type of a rate table change.
const RatesUpdatedEventType = "rates.updated"

// SQSAPI is the subset of the SQS API the publisher uses.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// RatesUpdatedEvent is the message body published when a new rate table is
// installed.
type RatesUpdatedEvent struct {
	ID          string             `json:"id"`
	Type        string             `json:"type"`
	Base        string             `json:"base"`
	Version     uint64             `json:"version"`
	Source      string             `json:"source"`
	Rates       map[string]float64 `json:"rates"`
	FetchedAt   time.Time          `json:"fetched_at"`
	PublishedAt time.Time          `json:"published_at"`
}

// SQSRateEventPublisher publishes rate change events to an SQS queue.
type SQSRateEventPublisher struct {
	api      SQSAPI
	queueURL string
	now      func() time.Time
}

// NewSQSRateEventPublisher creates a publisher for queueURL.
func NewSQSRateEventPublisher(api SQSAPI, queueURL string) *SQSRateEventPublisher {
	return &SQSRateEventPublisher{api: api, queueURL: queueURL, now: time.Now}
}

// NewSQSClient creates an SQS client from a loaded AWS config.
func NewSQSClient(cfg aws.Config) *sqs.Client {
	return sqs.NewFromConfig(cfg)
}

// PublishRatesUpdated sends a rates.updated event for table.
func (p *SQSRateEventPublisher) PublishRatesUpdated(ctx context.Context, table *rates.Table) error {
	if table == nil {
		return fmt.Errorf("cannot publish an empty rate table")
	}

	event := RatesUpdatedEvent{
		ID:          uuid.NewString(),
		Type:        RatesUpdatedEventType,
		Base:        table.Base(),
		Version:     table.Version(),
		Source:      table.Source(),
		Rates:       table.Rates(),
		FetchedAt:   table.FetchedAt(),
		PublishedAt: p.now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal rate event: %w", err)
	}

	_, err = p.api.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"EventType": {
				StringValue: aws.String(RatesUpdatedEventType),
				DataType:    aws.String("String"),
			},
			"Base": {
				StringValue: aws.String(event.Base),
				DataType:    aws.String("String"),
			},
			"Version": {
				StringValue: aws.String(strconv.FormatUint(event.Version, 10)),
				DataType:    aws.String("Number"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	logger.Log.Debug("Published rate event",
		zap.String("event_id", event.ID),
		zap.String("base", event.Base),
		zap.Uint64("version", event.Version))
	return nil
}
