package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-pricing-service/internal/offer"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
)

// OfferListener drops cached offers of a tenant whenever an OfferChanged
// event for it arrives.
type OfferListener struct {
	consumer   *broker.KafkaConsumer
	cache      offer.Cache
	logger     logger.ZapLogger
	retryDelay time.Duration
}

func NewOfferListener(consumer *broker.KafkaConsumer, cache offer.Cache, logger logger.ZapLogger) *OfferListener {
	return &OfferListener{
		consumer:   consumer,
		cache:      cache,
		logger:     logger,
		retryDelay: time.Second,
	}
}

func (l *OfferListener) Start(ctx context.Context) {
	l.logger.Info("Starting Offer Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Offer Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(l.retryDelay)
				continue
			}
			l.processMessage(ctx, msg)

			if err := l.consumer.Commit(ctx, msg); err != nil && ctx.Err() == nil {
				l.logger.Error("Failed to commit kafka message", zap.Int64("offset", msg.Offset), zap.Error(err))
			}
		}
	}
}

func (l *OfferListener) processMessage(ctx context.Context, msg kafka.Message) {
	var event offer.OfferChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Int64("offset", msg.Offset), zap.Error(err))
		return
	}

	if event.EventType != offer.EventOfferChanged {
		return
	}

	p := event.Payload
	if p.BrandID == "" || p.LocationID == "" {
		l.logger.Warn("OfferChanged event without tenant", zap.String("event_id", event.EventID))
		return
	}

	// A failed delete leaves the entry to expire on its TTL.
	if err := l.cache.Invalidate(ctx, p.Tenant(), p.Targets()...); err != nil {
		l.logger.Error("Failed to invalidate offer cache",
			zap.String("offer_id", p.OfferID),
			zap.String("brand_id", p.BrandID),
			zap.String("location_id", p.LocationID),
			zap.Error(err),
		)
		return
	}

	l.logger.Debug("Invalidated offer cache",
		zap.String("offer_id", p.OfferID),
		zap.String("brand_id", p.BrandID),
		zap.String("location_id", p.LocationID),
	)
}
