package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultExchange = "snackshop.events"

// channel is the subset of *amqp.Channel the bus uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Cancel(consumer string, noWait bool) error
	Close() error
}

// AMQPBus broadcasts events through a RabbitMQ fanout exchange so every
// storefront instance sees them. Each subscriber gets its own exclusive queue.
type AMQPBus struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	mu       sync.Mutex // amqp channels are not safe for concurrent publishes
}

func DialAMQP(url string) (*AMQPBus, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}
	bus, err := newAMQPBus(ch, DefaultExchange)
	if err != nil {
		conn.Close()
		return nil, err
	}
	bus.conn = conn
	return bus, nil
}

func newAMQPBus(ch channel, exchange string) (*AMQPBus, error) {
	err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeFanout,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare %s exchange: %w", exchange, err)
	}
	return &AMQPBus{ch: ch, exchange: exchange}, nil
}

func (b *AMQPBus) Publish(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ch.PublishWithContext(ctx, b.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (b *AMQPBus) Subscribe(ctx context.Context) (<-chan Event, func()) {
	out := make(chan Event, 16)
	deliveries, tag, err := b.bind()
	if err != nil {
		log.Printf("[events] subscribe failed: %v", err)
		close(out)
		return out, func() {}
	}

	var once sync.Once
	done := make(chan struct{})
	cancel := func() {
		once.Do(func() {
			close(done)
			b.mu.Lock()
			_ = b.ch.Cancel(tag, false)
			b.mu.Unlock()
		})
	}

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				cancel()
				return
			case <-done:
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal(d.Body, &ev); err != nil {
					log.Printf("[events] dropping malformed message: %v", err)
					continue
				}
				select {
				case out <- ev:
				default:
				}
			}
		}
	}()
	return out, cancel
}

func (b *AMQPBus) bind() (<-chan amqp.Delivery, string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	q, err := b.ch.QueueDeclare(
		"",    // server-named
		false, // durable
		true,  // autoDelete
		true,  // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := b.ch.QueueBind(q.Name, "", b.exchange, false, nil); err != nil {
		return nil, "", fmt.Errorf("failed to bind queue: %w", err)
	}
	tag := "storefront-" + uuid.NewString()
	deliveries, err := b.ch.Consume(q.Name, tag, true, true, false, false, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to consume: %w", err)
	}
	return deliveries, tag, nil
}

func (b *AMQPBus) Close() error {
	err := b.ch.Close()
	if b.conn != nil {
		if cerr := b.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
