package bot

import (
	"context"

	"smartassist-bot/internal/card"
	"smartassist-bot/internal/domain"
)

// SmartAssist is the default activity handler: every message is answered with
// the appointment suggestion card.
type SmartAssist struct{}

// OnMessage sends one appointment card.
func (SmartAssist) OnMessage(ctx context.Context, turn *Turn) error {
	activities := []domain.Activity{
		domain.NewAttachmentActivity(card.Attachment(card.Appointment())),
	}
	tagSmartBot(activities)
	return turn.SendActivities(ctx, activities...)
}

// OnConversationUpdate does nothing.
func (SmartAssist) OnConversationUpdate(context.Context, *Turn) error {
	return nil
}

// tagSmartBot marks activities for the smart assist pane. Untagged responses
// break the agent UX.
func tagSmartBot(activities []domain.Activity) {
	for i := range activities {
		activities[i].ChannelData = domain.ChannelTags{Tags: domain.SmartBotTag}
	}
}
