package notify

import (
	"context"
	"errors"
	"testing"
)

type captureProvider struct {
	channel   string
	recipient string
	message   string
	err       error
}

func (p *captureProvider) Send(ctx context.Context, channel, recipient, message string) error {
	p.channel = channel
	p.recipient = recipient
	p.message = message
	return p.err
}

func TestSend(t *testing.T) {
	provider := &captureProvider{}
	n := New(provider, nil)

	err := n.Send(context.Background(), ChannelSMS, "0712345678", "Hi John")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if provider.channel != "sms" || provider.recipient != "0712345678" || provider.message != "Hi John" {
		t.Fatalf("provider got %q/%q/%q", provider.channel, provider.recipient, provider.message)
	}
}

func TestSendUnknownChannel(t *testing.T) {
	provider := &captureProvider{}
	n := New(provider, nil)

	if err := n.Send(context.Background(), "pigeon", "x", "y"); err == nil {
		t.Fatal("expected error for unknown channel")
	}
	if provider.channel != "" {
		t.Fatal("provider must not be called for an unknown channel")
	}
}

func TestSendProviderFailure(t *testing.T) {
	provider := &captureProvider{err: errors.New("gateway down")}
	n := New(provider, nil)

	if err := n.Send(context.Background(), ChannelEmail, "x@y.com", "hi"); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestStatsTodayWithoutRedis(t *testing.T) {
	n := New(NoopProvider{}, nil)

	stats := n.StatsToday(context.Background())
	for _, channel := range Channels {
		if stats[channel] != 0 {
			t.Fatalf("channel %s = %d, want 0", channel, stats[channel])
		}
	}
	if len(stats) != len(Channels) {
		t.Fatalf("expected %d channels, got %d", len(Channels), len(stats))
	}
}

func TestNewProvider(t *testing.T) {
	if _, ok := NewProvider("noop").(NoopProvider); !ok {
		t.Fatal("noop kind must build a NoopProvider")
	}
	if _, ok := NewProvider("").(LogProvider); !ok {
		t.Fatal("default kind must build a LogProvider")
	}
}
