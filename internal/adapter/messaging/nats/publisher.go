package nats

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	SubjectPropertyCreated = "property.created"
	SubjectPropertyUpdated = "property.updated"
	SubjectPropertyDeleted = "property.deleted"
)

type propertyEvent struct {
	PropertyID string    `json:"property_id"`
	OwnerID    string    `json:"owner_id,omitempty"`
	Title      string    `json:"title,omitempty"`
	City       string    `json:"city,omitempty"`
	Price      float64   `json:"price,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewPublisher(natsURL string, logger *zap.Logger) (*Publisher, error) {
	conn, err := nats.Connect(natsURL,
		nats.Timeout(5*time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", natsURL, err)
	}
	logger.Info("connected to NATS", zap.String("url", conn.ConnectedUrl()))
	return &Publisher{conn: conn, logger: logger}, nil
}

func (p *Publisher) PublishPropertyCreated(property *domain.Property) error {
	return p.publish(SubjectPropertyCreated, propertyEvent{
		PropertyID: property.ID,
		OwnerID:    property.OwnerID,
		Title:      property.Title,
		City:       property.City,
		Price:      property.Price,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) PublishPropertyUpdated(property *domain.Property) error {
	return p.publish(SubjectPropertyUpdated, propertyEvent{
		PropertyID: property.ID,
		OwnerID:    property.OwnerID,
		Title:      property.Title,
		City:       property.City,
		Price:      property.Price,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) PublishPropertyDeleted(propertyID string) error {
	return p.publish(SubjectPropertyDeleted, propertyEvent{
		PropertyID: propertyID,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) publish(subject string, event propertyEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event for %s: %w", subject, err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("subject", subject), zap.Error(err))
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	p.logger.Debug("event published",
		zap.String("subject", subject), zap.String("property_id", event.PropertyID))
	return nil
}

// Close drains in-flight messages before shutting the connection down.
func (p *Publisher) Close() {
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.Drain(); err != nil {
			p.logger.Warn("NATS drain failed", zap.Error(err))
			p.conn.Close()
		}
	}
}
