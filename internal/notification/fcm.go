package notification

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/limbo/nestling/pkg/entity"
)

// FCMSender publishes to the per-user topic the mobile app subscribes to.
type FCMSender struct {
	client *messaging.Client
}

func NewFCMSender(ctx context.Context, credentialsFile string) (*FCMSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting messaging client: %w", err)
	}
	return &FCMSender{client: client}, nil
}

func UserTopic(uid uuid.UUID) string {
	return "user-" + uid.String()
}

func (s *FCMSender) SendBadges(ctx context.Context, uid uuid.UUID, badges []entity.BadgeID) error {
	_, err := s.client.Send(ctx, BadgeMessage(uid, badges))
	return err
}

// BadgeMessage builds the push shown when badges are unlocked.
func BadgeMessage(uid uuid.UUID, badges []entity.BadgeID) *messaging.Message {
	ids := make([]string, 0, len(badges))
	for _, b := range badges {
		ids = append(ids, string(b))
	}
	body := "You unlocked a new badge!"
	if len(ids) > 1 {
		body = fmt.Sprintf("You unlocked %d new badges!", len(ids))
	}
	return &messaging.Message{
		Topic: UserTopic(uid),
		Notification: &messaging.Notification{
			Title: "New badge",
			Body:  body,
		},
		Data: map[string]string{
			"type":   "badges_unlocked",
			"badges": strings.Join(ids, ","),
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
	}
}
