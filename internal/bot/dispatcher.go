// Package bot runs conversation turns: it tracks the per-conversation
// escalation flag and forwards messages from escalated conversations to the
// activity handler.
package bot

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"smartassist-bot/internal/domain"
	"smartassist-bot/pkg/logger"
	"smartassist-bot/pkg/metrics"
)

// StateStore loads and saves turn state. Get methods report found=false when
// no record exists yet.
type StateStore interface {
	GetConversationData(ctx context.Context, key string) (domain.ConversationData, bool, error)
	SaveConversationData(ctx context.Context, key string, data domain.ConversationData) error
	GetUserData(ctx context.Context, key string) (domain.UserData, bool, error)
	SaveUserData(ctx context.Context, key string, data domain.UserData) error
}

// TurnResult is the state a turn ended with and the side effects it took.
type TurnResult struct {
	Conversation domain.ConversationData
	Escalated    bool
	Forwarded    bool
	Sent         int
}

// Dispatcher handles one turn at a time per conversation; the host must not
// overlap turns of the same conversation.
type Dispatcher struct {
	state   StateStore
	sender  Sender
	handler ActivityHandler
	log     *logger.Logger
}

func NewDispatcher(state StateStore, sender Sender, handler ActivityHandler, log *logger.Logger) (*Dispatcher, error) {
	if state == nil {
		return nil, errors.New("bot: state store must not be nil")
	}
	if sender == nil {
		return nil, errors.New("bot: sender must not be nil")
	}
	if handler == nil {
		return nil, errors.New("bot: activity handler must not be nil")
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Dispatcher{
		state:   state,
		sender:  sender,
		handler: handler,
		log:     log,
	}, nil
}

// HandleTurn runs one activity through the escalation flag machine.
//
// Saving the conversation record is the commit point: if ctx is cancelled or
// any write fails before it succeeds, the turn fails and the flag change is
// lost. Store, transport and
// handler errors are returned as-is.
func (d *Dispatcher) HandleTurn(ctx context.Context, a domain.Activity) (TurnResult, error) {
	started := time.Now()
	log := d.log.WithTurn(CorrelationID(ctx), a.Conversation.ID, a.Type)

	convKey := domain.ConversationKey(a)
	userKey := domain.UserKey(a)

	conv, err := d.loadConversation(ctx, convKey)
	if err != nil {
		log.Error("load conversation state failed", zap.Error(err))
		metrics.RecordTurn(a.Type, metrics.OutcomeError, started)
		return TurnResult{}, err
	}
	user, err := d.loadUser(ctx, userKey, a.From.ID)
	if err != nil {
		log.Error("load user state failed", zap.Error(err))
		metrics.RecordTurn(a.Type, metrics.OutcomeError, started)
		return TurnResult{}, err
	}

	next, action := Transition(a, conv)
	result := TurnResult{Conversation: conv}

	switch action {
	case ActionEscalate:
		if err := d.save(ctx, convKey, next, userKey, user); err != nil {
			log.Error("commit escalation failed", zap.Error(err))
			metrics.RecordTurn(a.Type, metrics.OutcomeError, started)
			return result, err
		}
		trigger := escalationTrigger(a)
		log.Info("conversation escalated", zap.String("trigger", trigger))
		metrics.RecordEscalation(trigger)
		metrics.RecordTurn(a.Type, metrics.OutcomeEscalated, started)
		result.Conversation = next
		result.Escalated = true
		return result, nil

	case ActionForward:
		turn := NewTurn(a, d.sender)
		err := Dispatch(ctx, turn, d.handler)
		result.Sent = turn.Sent()
		if err != nil {
			log.Error("activity handler failed", zap.Error(err), zap.Int("sent", result.Sent))
			metrics.RecordTurn(a.Type, metrics.OutcomeError, started)
			return result, err
		}
		result.Forwarded = true
	}

	if err := d.save(ctx, convKey, next, userKey, user); err != nil {
		log.Error("save turn state failed", zap.Error(err))
		metrics.RecordTurn(a.Type, metrics.OutcomeError, started)
		return result, err
	}
	result.Conversation = next

	outcome := metrics.OutcomeIgnored
	if result.Forwarded {
		outcome = metrics.OutcomeForwarded
		log.Info("turn forwarded", zap.Int("sent", result.Sent))
	} else {
		log.Debug("turn ignored")
	}
	metrics.RecordTurn(a.Type, outcome, started)
	return result, nil
}

func (d *Dispatcher) loadConversation(ctx context.Context, key string) (domain.ConversationData, error) {
	data, found, err := d.state.GetConversationData(ctx, key)
	if err != nil {
		return domain.ConversationData{}, err
	}
	if !found {
		return domain.NewConversationData(), nil
	}
	return data, nil
}

func (d *Dispatcher) loadUser(ctx context.Context, key, userID string) (domain.UserData, error) {
	data, found, err := d.state.GetUserData(ctx, key)
	if err != nil {
		return domain.UserData{}, err
	}
	if !found {
		return domain.NewUserData(userID), nil
	}
	return data, nil
}

// save writes the user record first so the conversation write is the commit:
// once the flag is durable nothing else in the turn can fail.
func (d *Dispatcher) save(ctx context.Context, convKey string, conv domain.ConversationData, userKey string, user domain.UserData) error {
	if err := d.state.SaveUserData(ctx, userKey, user); err != nil {
		return err
	}
	return d.state.SaveConversationData(ctx, convKey, conv)
}
