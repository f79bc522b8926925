// Package publish broadcasts metrics payloads to a RabbitMQ queue so
// external display surfaces can follow along. The publisher is an actor: one
// goroutine owns the connection, callers only drop payloads into its
// mailbox. Delivery is best effort; when the broker is unreachable payloads
// are dropped, never buffered to disk and never allowed to block the caller.
package publish

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	reconnectDelay = 5 * time.Second
	publishTimeout = 5 * time.Second
	mailboxDepth   = 16
)

// Publisher owns one AMQP connection and republishes everything pushed into
// its mailbox.
type Publisher struct {
	addr  string
	queue string
	log   *zap.Logger

	mailbox chan []byte
	closing chan struct{}
	once    sync.Once
	wg      sync.WaitGroup

	// Owned by the run goroutine only.
	conn        *amqp.Connection
	channel     *amqp.Channel
	notifyClose chan *amqp.Error
	ready       bool
}

// New starts the publisher's goroutine immediately. The broker does not need
// to be reachable yet; the actor keeps dialing in the background.
func New(addr, queue string, log *zap.Logger) *Publisher {
	p := &Publisher{
		addr:    addr,
		queue:   queue,
		log:     log,
		mailbox: make(chan []byte, mailboxDepth),
		closing: make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// Push enqueues a payload without blocking. Payloads are dropped when the
// mailbox is full or the publisher is closed.
func (p *Publisher) Push(payload []byte) {
	select {
	case p.mailbox <- payload:
	case <-p.closing:
	default:
		p.log.Debug("publish mailbox full, dropping payload")
	}
}

// Close stops the actor and joins its goroutine. Safe to call twice.
func (p *Publisher) Close() {
	p.once.Do(func() { close(p.closing) })
	p.wg.Wait()
}

/* ─── Actor loop ──────────────────────────────────────────────────────── */

func (p *Publisher) run() {
	defer p.wg.Done()
	defer p.teardown()

	for {
		if !p.ready && !p.connect() {
			return
		}
		select {
		case <-p.closing:
			return
		case err := <-p.notifyClose:
			p.log.Warn("broker connection lost", zap.Error(err))
			p.teardown()
		case payload := <-p.mailbox:
			if err := p.publish(payload); err != nil {
				p.log.Warn("publish failed, dropping payload", zap.Error(err))
				p.teardown()
			}
		}
	}
}

// connect dials until it succeeds. Returns false when Close arrives first.
func (p *Publisher) connect() bool {
	for {
		err := p.dial()
		if err == nil {
			p.log.Info("connected to broker", zap.String("queue", p.queue))
			return true
		}
		p.log.Warn("broker connect failed, retrying", zap.Error(err), zap.Duration("delay", reconnectDelay))

		select {
		case <-time.After(reconnectDelay):
		case <-p.closing:
			return false
		}
	}
}

// dial establishes the connection, channel, and queue, and arms the close
// listener.
func (p *Publisher) dial() error {
	conn, err := amqp.Dial(p.addr)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(p.queue, false, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("declare queue %q: %w", p.queue, err)
	}

	p.conn = conn
	p.channel = ch
	p.notifyClose = make(chan *amqp.Error, 1)
	conn.NotifyClose(p.notifyClose)
	p.ready = true
	return nil
}

func (p *Publisher) publish(payload []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	return p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        payload,
	})
}

// teardown closes whatever is open. Idempotent; called on connection loss
// and again on exit.
func (p *Publisher) teardown() {
	if p.channel != nil {
		p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
	p.ready = false
}
