package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/ribbitly/backend/internal/models"
)

const (
	streamName    = "SOCIAL"
	streamPattern = "social.>"
	followSubject = "social.follower.new"
)

// NatsNotifier publishes new-follower events to a JetStream stream so a
// separate notification service can template and deliver the email.
type NatsNotifier struct {
	js jetstream.JetStream
}

// NewNatsNotifier connects to NATS and ensures the stream exists.
func NewNatsNotifier(url string) (*NatsNotifier, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("jetstream init: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{streamPattern},
		Storage:  jetstream.FileStorage,
		Replicas: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("create stream: %w", err)
	}

	return &NatsNotifier{js: js}, nil
}

func (n *NatsNotifier) NotifyNewFollower(ctx context.Context, followed, follower *models.User) error {
	event := NewFollowerEvent(followed, follower)

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if _, err := n.js.Publish(ctx, followSubject, data); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	return nil
}
