package services

import (
	"context"
	"fmt"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/records"
	"go.uber.org/zap"
)

var (
	conversationFields = []string{
		"Name", "Tags", "participant_name_c", "job_title_c", "last_message_c",
		"last_message_time_c", "unread_count_c", "CreatedOn", "ModifiedOn",
	}
	messageFields = []string{
		"Name", "Tags", "sender_id_c", "content_c", "timestamp_c", "read_c",
		"conversation_id_c", "CreatedOn", "ModifiedOn",
	}
)

// MessageService covers conversations and the messages inside them.
type MessageService struct {
	messages      *table
	conversations *table
	Clock         Clock
}

func NewMessageService(client records.Client, log *zap.Logger) *MessageService {
	return &MessageService{
		messages:      newTable(client, log, models.MessageTable, messageFields...),
		conversations: newTable(client, log, models.ConversationTable, conversationFields...),
	}
}

// GetConversations lists conversations, most recently active first.
func (s *MessageService) GetConversations(ctx context.Context) []records.Record {
	params := s.conversations.params()
	params.OrderBy = []records.OrderBy{{FieldName: "last_message_time_c", SortType: records.SortDesc}}
	return s.conversations.fetch(ctx, params, "fetching conversations")
}

// GetMessages lists a conversation's messages, oldest first.
func (s *MessageService) GetMessages(ctx context.Context, conversationID int64) []records.Record {
	params := s.messages.params()
	params.Where = []records.Condition{records.Eq("conversation_id_c", conversationID)}
	params.OrderBy = []records.OrderBy{{FieldName: "timestamp_c", SortType: records.SortAsc}}
	return s.messages.fetch(ctx, params, "fetching messages")
}

// StartConversation opens an empty conversation.
func (s *MessageService) StartConversation(ctx context.Context, in *dtos.ConversationInput) records.Record {
	rec := records.Record{
		"Name":                firstNonEmpty(in.Name, in.ParticipantName),
		"Tags":                "",
		"participant_name_c":  in.ParticipantName,
		"job_title_c":         in.JobTitle,
		"last_message_c":      "",
		"last_message_time_c": records.Timestamp(s.Clock.now()),
		"unread_count_c":      0,
	}
	return s.conversations.create(ctx, rec, "creating conversation")
}

// Create posts a message and, once it exists, makes it the conversation's
// last message.
func (s *MessageService) Create(ctx context.Context, in *dtos.MessageInput) records.Record {
	now := s.Clock.now()
	timestamp := records.Timestamp(now)
	conversationID := in.ConversationIDC.Or(in.ConversationID)
	content := firstNonEmpty(in.ContentC, in.Content)

	rec := records.Record{
		"Name":              fmt.Sprintf("Message %d", now.UnixMilli()),
		"Tags":              "",
		"sender_id_c":       int64(in.SenderIDC.Or(in.SenderID)),
		"content_c":         content,
		"timestamp_c":       timestamp,
		"read_c":            false,
		"conversation_id_c": conversationID.Value(),
	}
	created := s.messages.create(ctx, rec, "creating message")
	if created == nil {
		return nil
	}

	s.UpdateConversationLastMessage(ctx, int64(conversationID), content, timestamp)
	return created
}

// UpdateConversationLastMessage stamps the conversation with its newest
// message. Failures are logged only.
func (s *MessageService) UpdateConversationLastMessage(ctx context.Context, conversationID int64, content, timestamp string) {
	rec := records.Record{
		"Id":                  conversationID,
		"last_message_c":      content,
		"last_message_time_c": timestamp,
	}
	resp, err := s.conversations.client.UpdateRecord(ctx, models.ConversationTable, &records.MutateParams{Records: []records.Record{rec}})
	if err != nil {
		s.conversations.log.Error("Error updating conversation", zap.Int64("id", conversationID), zap.Error(err))
		return
	}
	if !resp.Success {
		s.conversations.log.Error("Error updating conversation", zap.Int64("id", conversationID), zap.String("message", resp.Message))
		return
	}
	if _, failed := resp.Split(); len(failed) > 0 {
		s.conversations.log.Error("Failed updating conversation", zap.Int64("id", conversationID),
			zap.Int("failed", len(failed)), zap.Any("results", failed))
	}
}

// MarkAsRead flags a message as read.
func (s *MessageService) MarkAsRead(ctx context.Context, messageID int64) bool {
	rec := records.Record{"Id": messageID, "read_c": true}
	resp, err := s.messages.client.UpdateRecord(ctx, models.MessageTable, &records.MutateParams{Records: []records.Record{rec}})
	if err != nil {
		s.messages.log.Error("Error marking message as read", zap.Int64("id", messageID), zap.Error(err))
		return false
	}
	if !resp.Success {
		s.messages.log.Error("Error marking message as read", zap.Int64("id", messageID), zap.String("message", resp.Message))
		return false
	}
	if ok, failed := resp.Split(); len(ok) == 0 && len(failed) > 0 {
		s.messages.log.Error("Failed marking message as read", zap.Int64("id", messageID), zap.Any("results", failed))
		return false
	}
	return true
}
