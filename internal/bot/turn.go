package bot

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"smartassist-bot/internal/domain"
	"smartassist-bot/pkg/metrics"
)

// Sender delivers outbound activities to the channel.
type Sender interface {
	SendActivities(ctx context.Context, activities []domain.Activity) error
}

// ActivityHandler reacts to activities the dispatcher forwards.
type ActivityHandler interface {
	OnMessage(ctx context.Context, turn *Turn) error
	OnConversationUpdate(ctx context.Context, turn *Turn) error
}

// Turn is one inbound activity and the means to reply to it.
type Turn struct {
	Activity domain.Activity

	sender Sender
	sent   int
}

// NewTurn binds an inbound activity to a sender.
func NewTurn(a domain.Activity, s Sender) *Turn {
	return &Turn{Activity: a, sender: s}
}

// Sent reports how many activities this turn has delivered.
func (t *Turn) Sent() int {
	return t.sent
}

// SendActivities addresses each activity as a reply to the inbound one and
// delivers them in a single transport call.
func (t *Turn) SendActivities(ctx context.Context, activities ...domain.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	if t.sender == nil {
		return errors.New("bot: turn has no sender")
	}

	out := make([]domain.Activity, len(activities))
	for i, a := range activities {
		out[i] = t.reply(a)
	}
	if err := t.sender.SendActivities(ctx, out); err != nil {
		return err
	}
	t.sent += len(out)
	metrics.RecordSent(len(out))
	return nil
}

func (t *Turn) reply(a domain.Activity) domain.Activity {
	in := t.Activity
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.ChannelID = in.ChannelID
	a.ServiceURL = in.ServiceURL
	a.Conversation = in.Conversation
	a.From = in.Recipient
	a.Recipient = in.From
	a.ReplyToID = in.ID
	return a
}

// Dispatch routes an activity to the handler method for its type. Types the
// handler has no method for are a no-op.
func Dispatch(ctx context.Context, turn *Turn, h ActivityHandler) error {
	switch turn.Activity.Type {
	case domain.ActivityTypeMessage:
		return h.OnMessage(ctx, turn)
	case domain.ActivityTypeConversationUpdate:
		return h.OnConversationUpdate(ctx, turn)
	default:
		return nil
	}
}
