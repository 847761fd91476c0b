package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"waste-impact-service/metrics"
)

// Message represents a received RabbitMQ message.
type Message struct {
	Body        []byte
	RoutingKey  string
	Timestamp   time.Time
	DeliveryTag uint64
}

// UnmarshalTo unmarshals the message body into the provided interface.
func (m *Message) UnmarshalTo(v any) error {
	return json.Unmarshal(m.Body, v)
}

// CallbackFunc processes a message. A nil return acks the delivery; an
// error nacks it without requeue, since report events are only cache
// invalidation hints and losing one costs at most a stale TTL window.
type CallbackFunc func(msg *Message) error

// Subscriber consumes waste-report lifecycle events. The intake services
// publish one message per created or completed report; this service only
// uses them to drop cached public snapshots.
type Subscriber struct {
	amqpURL string
	queue   string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel

	startOnce sync.Once
	done      chan struct{}
}

// NewSubscriber creates a subscriber bound to the given queue. It connects
// eagerly so callers fail fast when the broker is unreachable.
func NewSubscriber(amqpURL, queueName string) (*Subscriber, error) {
	s := &Subscriber{
		amqpURL: amqpURL,
		queue:   queueName,
		done:    make(chan struct{}),
	}

	s.mu.Lock()
	err := s.reconnectLocked()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// reconnectLocked tears down any existing channel/connection and recreates
// them. Caller must hold s.mu.
func (s *Subscriber) reconnectLocked() error {
	if s.channel != nil {
		_ = s.channel.Close()
		s.channel = nil
	}
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}

	conn, err := amqp.Dial(s.amqpURL)
	if err != nil {
		metrics.RabbitMQConnected.Set(0)
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		metrics.RabbitMQConnected.Set(0)
		return fmt.Errorf("failed to open channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		s.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		metrics.RabbitMQConnected.Set(0)
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	s.queue = q.Name

	s.conn = conn
	s.channel = ch
	metrics.RabbitMQConnected.Set(1)
	return nil
}

// Start begins consuming in a background goroutine. If the broker restarts,
// the delivery channel closes; we reconnect with backoff and resume.
func (s *Subscriber) Start(callback CallbackFunc) {
	s.startOnce.Do(func() {
		go func() {
			backoff := 1 * time.Second
			for {
				select {
				case <-s.done:
					return
				default:
				}

				s.mu.Lock()
				if s.conn == nil || s.conn.IsClosed() || s.channel == nil {
					if err := s.reconnectLocked(); err != nil {
						s.mu.Unlock()
						log.Printf("rabbitmq reconnect failed queue=%s err=%v", s.queue, err)
						time.Sleep(backoff)
						if backoff < 30*time.Second {
							backoff *= 2
						}
						continue
					}
				}
				msgs, err := s.channel.Consume(s.queue, "", false, false, false, false, nil)
				s.mu.Unlock()
				if err != nil {
					metrics.RabbitMQConnected.Set(0)
					log.Printf("rabbitmq consume failed queue=%s err=%v", s.queue, err)
					time.Sleep(backoff)
					if backoff < 30*time.Second {
						backoff *= 2
					}
					continue
				}

				log.Printf("rabbitmq consuming queue=%s", s.queue)
				backoff = 1 * time.Second

				if !s.drain(msgs, callback) {
					return
				}

				metrics.RabbitMQConnected.Set(0)
				log.Printf("rabbitmq delivery channel closed queue=%s; reconnecting", s.queue)
				time.Sleep(backoff)
			}
		}()
	})
}

// drain processes deliveries until the channel closes (returns true) or the
// subscriber shuts down (returns false).
func (s *Subscriber) drain(msgs <-chan amqp.Delivery, callback CallbackFunc) bool {
	for {
		select {
		case <-s.done:
			return false
		case delivery, ok := <-msgs:
			if !ok {
				return true
			}
			s.handle(delivery, callback)
		}
	}
}

func (s *Subscriber) handle(delivery amqp.Delivery, callback CallbackFunc) {
	msg := &Message{
		Body:        delivery.Body,
		RoutingKey:  delivery.RoutingKey,
		Timestamp:   delivery.Timestamp,
		DeliveryTag: delivery.DeliveryTag,
	}

	err := callback(msg)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		metrics.EventsProcessedTotal.WithLabelValues("error").Inc()
		log.Printf("rabbitmq event failed routing_key=%s delivery_tag=%d err=%v",
			delivery.RoutingKey, delivery.DeliveryTag, err)
		if nackErr := delivery.Nack(false, false); nackErr != nil {
			log.Printf("rabbitmq nack failed delivery_tag=%d err=%v", delivery.DeliveryTag, nackErr)
		}
		return
	}
	metrics.EventsProcessedTotal.WithLabelValues("success").Inc()
	if ackErr := delivery.Ack(false); ackErr != nil {
		log.Printf("rabbitmq ack failed delivery_tag=%d err=%v", delivery.DeliveryTag, ackErr)
	}
}

// Close stops the consume loop and closes the channel and connection.
func (s *Subscriber) Close() error {
	select {
	case <-s.done:
	default:
		close(s.done)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.channel != nil {
		if channelErr := s.channel.Close(); channelErr != nil {
			err = channelErr
		}
		s.channel = nil
	}
	if s.conn != nil {
		if connErr := s.conn.Close(); connErr != nil && err == nil {
			err = connErr
		}
		s.conn = nil
	}
	metrics.RabbitMQConnected.Set(0)
	return err
}

// IsConnected indicates if the subscriber is currently connected.
func (s *Subscriber) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil && !s.conn.IsClosed() && s.channel != nil
}
