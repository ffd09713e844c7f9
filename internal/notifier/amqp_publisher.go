// Package notifier delivers budget breach alerts over AMQP so downstream
// consumers (mail, push, bots) can surface them to the user.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arionfin/arion-backend/internal/core/domain"
	portssvc "github.com/arionfin/arion-backend/internal/core/ports/services"
	"github.com/arionfin/arion-backend/internal/middleware"
	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

const routingKey = "budget.exceeded"

// BudgetExceededMessage is the wire payload for one breach alert.
type BudgetExceededMessage struct {
	UserID            string          `json:"userID"`
	Category          string          `json:"category"`
	Period            string          `json:"period"`
	Limit             decimal.Decimal `json:"limit"`
	CurrentSpent      decimal.Decimal `json:"currentSpent"`
	CandidateAmount   decimal.Decimal `json:"candidateAmount"`
	ProjectedTotal    decimal.Decimal `json:"projectedTotal"`
	ExcessAmount      decimal.Decimal `json:"excessAmount"`
	PercentageOfLimit decimal.Decimal `json:"percentageOfLimit"`
	OccurredAt        time.Time       `json:"occurredAt"`
}

// AMQPPublisher publishes budget breach alerts to a durable direct exchange.
type AMQPPublisher struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
}

// NewAMQPPublisher dials the broker and declares the exchange with its queue.
func NewAMQPPublisher(url, exchangeName string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &AMQPPublisher{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
	}

	if err := p.setup(); err != nil {
		p.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return p, nil
}

// Ensure AMQPPublisher implements portssvc.BudgetAlertPublisher
var _ portssvc.BudgetAlertPublisher = (*AMQPPublisher)(nil)

func (p *AMQPPublisher) setup() error {
	err := p.channel.ExchangeDeclare(
		p.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		routingKey, // name
		true,       // durable
		false,      // delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = p.channel.QueueBind(
		routingKey,     // queue name
		routingKey,     // routing key
		p.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishBudgetExceeded publishes one breach alert as a persistent JSON message.
func (p *AMQPPublisher) PublishBudgetExceeded(ctx context.Context, userID string, evaluation domain.BudgetEvaluation) error {
	msg := BudgetExceededMessage{
		UserID:            userID,
		Category:          evaluation.Category,
		Period:            evaluation.Period.String(),
		Limit:             evaluation.Limit,
		CurrentSpent:      evaluation.CurrentSpent,
		CandidateAmount:   evaluation.CandidateAmount,
		ProjectedTotal:    evaluation.ProjectedTotal,
		ExcessAmount:      evaluation.ExcessAmount,
		PercentageOfLimit: evaluation.PercentageOfLimit,
		OccurredAt:        time.Now().UTC(),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName, // exchange
		routingKey,     // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Published budget exceeded alert",
		"category", evaluation.Category,
		"period", msg.Period,
		"exchange", p.exchangeName,
	)
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
