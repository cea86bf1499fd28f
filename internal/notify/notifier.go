// Package notify handles outbound customer/team messaging. Delivery is
// simulated: the default provider only logs, real SMS/WhatsApp/email
// gateways would slot in behind the Provider interface.
package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
)

var Channels = []string{ChannelSMS, ChannelWhatsApp, ChannelEmail}

func ValidChannel(channel string) bool {
	for _, c := range Channels {
		if c == channel {
			return true
		}
	}
	return false
}

type Provider interface {
	Send(ctx context.Context, channel, recipient, message string) error
}

// LogProvider - the simulated gateway; it just logs the message.
type LogProvider struct{}

func (LogProvider) Send(ctx context.Context, channel, recipient, message string) error {
	log.Printf("send %s to %s: %s", channel, recipient, message)
	return nil
}

type NoopProvider struct{}

func (NoopProvider) Send(ctx context.Context, channel, recipient, message string) error {
	return nil
}

func NewProvider(kind string) Provider {
	switch kind {
	case "noop":
		return NoopProvider{}
	default:
		return LogProvider{}
	}
}

type Notifier struct {
	provider Provider
	redis    *redis.Client
}

// New - redis may be nil, in which case delivery counters are skipped.
func New(provider Provider, rdb *redis.Client) *Notifier {
	return &Notifier{provider: provider, redis: rdb}
}

func counterKey(channel, day string) string {
	return fmt.Sprintf("messages:%s:%s", channel, day)
}

// Send - pushes one message through the provider and bumps the day
// counter for the channel.
func (n *Notifier) Send(ctx context.Context, channel, recipient, message string) error {
	if !ValidChannel(channel) {
		return fmt.Errorf("unknown channel: %s", channel)
	}

	if err := n.provider.Send(ctx, channel, recipient, message); err != nil {
		return err
	}

	if n.redis != nil {
		day := time.Now().Format("2006-01-02")
		n.redis.Incr(ctx, counterKey(channel, day))
	}
	return nil
}

// StatsToday - per-channel messages sent today. Missing keys count as 0.
func (n *Notifier) StatsToday(ctx context.Context) map[string]int64 {
	stats := map[string]int64{}
	day := time.Now().Format("2006-01-02")
	for _, channel := range Channels {
		stats[channel] = 0
		if n.redis == nil {
			continue
		}
		count, err := n.redis.Get(ctx, counterKey(channel, day)).Int64()
		if err == nil {
			stats[channel] = count
		}
	}
	return stats
}
