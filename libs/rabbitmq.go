package libs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"storefront/models"
	"storefront/utils"
)

const OrderPlacedRoutingKey = "order.placed"

type OrderPlacedEvent struct {
	OrderID     string            `json:"order_id"`
	CustomerID  string            `json:"customer_id"`
	Items       []models.CartItem `json:"items"`
	TotalAmount int64             `json:"total_amount"`
	Currency    string            `json:"currency"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"created_at"`
}

func newOrderPlacedEvent(owner string, order models.Order) OrderPlacedEvent {
	return OrderPlacedEvent{
		OrderID:     order.OrderID,
		CustomerID:  owner,
		Items:       order.Items,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		Status:      string(order.Status),
		CreatedAt:   order.Timestamp.UTC().Format(time.RFC3339),
	}
}

// OrderEventPublisher publishes completed orders to a topic exchange.
type OrderEventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *utils.Logger
}

// NewOrderEventPublisher dials with retry and declares the exchange.
func NewOrderEventPublisher(url, exchange string, log *utils.Logger) (*OrderEventPublisher, error) {
	if exchange == "" {
		return nil, fmt.Errorf("exchange name cannot be empty")
	}

	var conn *amqp.Connection
	var err error
	for i := 0; i < 5; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		retry := time.Duration(i*i)*time.Second + time.Second
		log.Warn("rabbitmq dial failed, retrying", "in", retry, "error", err)
		time.Sleep(retry)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ after retries: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &OrderEventPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		log:      log.With("component", "order_events"),
	}, nil
}

func (p *OrderEventPublisher) Name() string {
	return "rabbitmq"
}

func (p *OrderEventPublisher) OrderPlaced(ctx context.Context, owner string, order models.Order) error {
	body, err := json.Marshal(newOrderPlacedEvent(owner, order))
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, OrderPlacedRoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    order.OrderID,
		Timestamp:    order.Timestamp,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish order %s: %w", order.OrderID, err)
	}
	p.log.Debug("order event published", "order_id", order.OrderID)
	return nil
}

func (p *OrderEventPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return err
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
