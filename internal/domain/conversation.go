package domain

// ConversationData is the per-conversation state owned by the turn dispatcher.
type ConversationData struct {
	Escalated bool `json:"isEscalated"`
}

// NewConversationData is the default factory used when a conversation has no
// stored state yet.
func NewConversationData() ConversationData {
	return ConversationData{}
}

// UserData is the per-user state saved alongside ConversationData.
type UserData struct {
	UserID string `json:"userId"`
}

// NewUserData is the default factory for a user seen for the first time.
func NewUserData(userID string) UserData {
	return UserData{UserID: userID}
}

// ConversationKey returns the state key of the activity's conversation.
func ConversationKey(a Activity) string {
	return a.ChannelID + "/conversations/" + a.Conversation.ID
}

// UserKey returns the state key of the activity's sender.
func UserKey(a Activity) string {
	return a.ChannelID + "/users/" + a.From.ID
}
