package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/back2me/internal/common"
	"github.com/dmitrijs2005/back2me/internal/models"
	"github.com/dmitrijs2005/back2me/internal/repositories/kv"
	"github.com/dmitrijs2005/back2me/internal/validation"
	"github.com/segmentio/ksuid"
)

// ConversationService manages message threads.
type ConversationService interface {
	ListConversations(ctx context.Context) ([]models.Conversation, error)
	Get(ctx context.Context, id string) (models.Conversation, error)
	AppendMessage(ctx context.Context, conversationID, senderID, text string) (models.Message, error)
	EnsureSeeded(ctx context.Context) error
}

type conversationService struct {
	base
	store    kv.Store
	sessions SessionService
}

// NewConversationService keeps conversations in store. sessions tells
// AppendMessage who is logged in.
func NewConversationService(store kv.Store, sessions SessionService, opts ...Option) ConversationService {
	return &conversationService{base: newBase(opts), store: store, sessions: sessions}
}

// ListConversations returns every conversation, most recently active first.
// Conversations with equal activity keep their stored order.
func (s *conversationService) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	convs, err := loadList[models.Conversation](ctx, s.store, keyConversations)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(convs, func(i, j int) bool {
		return convs[i].LastActivity.After(convs[j].LastActivity)
	})
	return convs, nil
}

func (s *conversationService) Get(ctx context.Context, id string) (models.Conversation, error) {
	convs, err := loadList[models.Conversation](ctx, s.store, keyConversations)
	if err != nil {
		return models.Conversation{}, err
	}
	for _, c := range convs {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Conversation{}, fmt.Errorf("conversation %s: %w", id, common.ErrorNotFound)
}

// AppendMessage adds text from senderID to the end of the conversation and
// updates its preview. The sender must be the logged-in user or the
// conversation's counterpart.
func (s *conversationService) AppendMessage(ctx context.Context, conversationID, senderID, text string) (models.Message, error) {
	text = strings.TrimSpace(text)

	verrs := validation.Errors{}
	verrs.Check(text != "", "text", "message cannot be empty")
	verrs.Check(validation.Required(senderID), "senderId", "is required")
	if err := verrs.Err(); err != nil {
		return models.Message{}, err
	}

	session, loggedIn, err := s.sessions.CurrentSession(ctx)
	if err != nil {
		return models.Message{}, err
	}

	now := s.now()
	id, err := ksuid.NewRandomWithTime(now)
	if err != nil {
		return models.Message{}, fmt.Errorf("generate message id: %w", err)
	}
	msg := models.Message{ID: id.String(), SenderID: senderID, Text: text, SentAt: now}

	err = updateList(ctx, s.store, keyConversations, func(convs []models.Conversation) ([]models.Conversation, error) {
		for i := range convs {
			if convs[i].ID != conversationID {
				continue
			}
			if senderID != convs[i].CounterpartID && (!loggedIn || senderID != session.UserID) {
				return nil, validation.Errors{"senderId": "must be the logged-in user or the counterpart"}
			}
			convs[i].Messages = append(convs[i].Messages, msg)
			convs[i].LastMessage = msg.Text
			convs[i].LastActivity = msg.SentAt
			return convs, nil
		}
		return nil, fmt.Errorf("conversation %s: %w", conversationID, common.ErrorNotFound)
	})
	if err != nil {
		return models.Message{}, err
	}

	s.log.Debug(ctx, "message sent", "conversation", conversationID, "id", msg.ID)
	return msg, nil
}

// EnsureSeeded writes the demo conversations when none are stored.
func (s *conversationService) EnsureSeeded(ctx context.Context) error {
	seeded, err := seedList(ctx, s.store, keyConversations, func() []models.Conversation {
		return models.SeedConversations(s.now())
	})
	if err != nil {
		return err
	}
	if seeded {
		s.log.Debug(ctx, "seeded demo conversations")
	}
	return nil
}
