package domain

import "time"

// Activity types handled by the bot. Any other type is accepted and ignored.
const (
	ActivityTypeMessage            = "message"
	ActivityTypeConversationUpdate = "conversationUpdate"
)

// Activity is the subset of the Bot Framework activity schema the bot reads
// and writes.
type Activity struct {
	Type         string              `json:"type"`
	ID           string              `json:"id,omitempty"`
	Timestamp    *time.Time          `json:"timestamp,omitempty"`
	ServiceURL   string              `json:"serviceUrl,omitempty"`
	ChannelID    string              `json:"channelId,omitempty"`
	From         ChannelAccount      `json:"from"`
	Conversation ConversationAccount `json:"conversation"`
	Recipient    ChannelAccount      `json:"recipient"`
	Text         string              `json:"text,omitempty"`
	MembersAdded []ChannelAccount    `json:"membersAdded,omitempty"`
	Attachments  []Attachment        `json:"attachments,omitempty"`
	ChannelData  any                 `json:"channelData,omitempty"`
	ReplyToID    string              `json:"replyToId,omitempty"`
}

// ChannelAccount identifies a participant. AADObjectID is nil for accounts
// without a directory identity.
type ChannelAccount struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	AADObjectID *string `json:"aadObjectId,omitempty"`
}

// ConversationAccount identifies a conversation.
type ConversationAccount struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	IsGroup bool   `json:"isGroup,omitempty"`
}

// Attachment is a rich payload carried by a message activity.
type Attachment struct {
	ContentType string `json:"contentType"`
	Content     any    `json:"content,omitempty"`
}

// SmartBotTag is the channel data every outbound activity must carry.
const SmartBotTag = "smartbot"

// ChannelTags is the channel data shape understood by the smart assist pane.
type ChannelTags struct {
	Tags string `json:"tags"`
}

// NewAttachmentActivity returns a message activity carrying the attachments.
func NewAttachmentActivity(attachments ...Attachment) Activity {
	return Activity{
		Type:        ActivityTypeMessage,
		Attachments: attachments,
	}
}
