package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"perks/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// Redemptions arrive one at a time, so batching is kept short to get each
// event to analytics quickly.
const (
	publishDelayThreshold = 10 * time.Millisecond
	publishCountThreshold = 50
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to an existing topic. The topic is not
// created here; a missing topic fails startup.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "get topic %s", topicPath)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = publishDelayThreshold
	publisher.PublishSettings.CountThreshold = publishCountThreshold

	logger.Info("Redemption events publish to Google Pub/Sub", slog.String("topic", topicPath))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishRedemptionEvent(ctx context.Context, event *service.RedemptionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal redemption event")
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish redemption %s", event.RedemptionID)
	}

	p.logger.Debug("Redemption event published",
		slog.String("redemption_id", event.RedemptionID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}

// eventAttributes lets subscriptions filter by event type or vendor without
// decoding the payload.
func eventAttributes(event *service.RedemptionEvent) map[string]string {
	attributes := map[string]string{
		"event_type":     event.EventType,
		"redemption_id":  event.RedemptionID,
		"vendor_id":      event.VendorID,
		"redemption_day": event.RedemptionDay,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
