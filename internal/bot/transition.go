package bot

import "smartassist-bot/internal/domain"

// EscalationTrigger is the message text that escalates a fresh conversation.
// It is matched exactly: case-sensitive and untrimmed.
const EscalationTrigger = "omnichannelfoobar"

// Action is what the dispatcher must do after a transition.
type Action int

const (
	// ActionNone saves state and ends the turn.
	ActionNone Action = iota
	// ActionEscalate commits the escalated flag and ends the turn without a reply.
	ActionEscalate
	// ActionForward hands the activity to the activity handler.
	ActionForward
)

func (a Action) String() string {
	switch a {
	case ActionEscalate:
		return "escalate"
	case ActionForward:
		return "forward"
	default:
		return "none"
	}
}

// Transition runs the escalation flag machine for one activity. It never
// clears the flag and does no I/O; the caller decides when the returned state
// becomes durable.
func Transition(a domain.Activity, data domain.ConversationData) (domain.ConversationData, Action) {
	switch a.Type {
	case domain.ActivityTypeMessage:
		if data.Escalated {
			return data, ActionForward
		}
		if a.Text == EscalationTrigger {
			data.Escalated = true
			return data, ActionEscalate
		}
	case domain.ActivityTypeConversationUpdate:
		if !data.Escalated && hasDirectoryIdentity(a.MembersAdded) {
			data.Escalated = true
			return data, ActionEscalate
		}
	}
	return data, ActionNone
}

func hasDirectoryIdentity(members []domain.ChannelAccount) bool {
	for _, m := range members {
		if m.AADObjectID != nil {
			return true
		}
	}
	return false
}

// escalationTrigger names what caused an escalation, for metrics and logs.
func escalationTrigger(a domain.Activity) string {
	if a.Type == domain.ActivityTypeConversationUpdate {
		return "member_added"
	}
	return "message"
}
