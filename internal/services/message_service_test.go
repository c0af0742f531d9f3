package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMessageService_Conversation(t *testing.T) {
	ctx := context.Background()
	svc := NewMessageService(newStore(t), nil)
	svc.Clock = steppingClock()

	first := svc.StartConversation(ctx, &dtos.ConversationInput{ParticipantName: "Ada", JobTitle: "Go Engineer"})
	require.NotNil(t, first)
	assert.Equal(t, "Ada", first["Name"])
	assert.Equal(t, "", first["last_message_c"])

	second := svc.StartConversation(ctx, &dtos.ConversationInput{ParticipantName: "Linus"})
	require.NotNil(t, second)

	convID := first.ID()
	for _, text := range []string{"hello", "are you there?"} {
		msg := svc.Create(ctx, &dtos.MessageInput{
			SenderID:       dtos.FlexID(1),
			Content:        text,
			ConversationID: dtos.FlexID(convID),
		})
		require.NotNil(t, msg)
		assert.Equal(t, false, msg["read_c"])
	}

	t.Run("messages oldest first", func(t *testing.T) {
		msgs := svc.GetMessages(ctx, convID)
		require.Len(t, msgs, 2)
		assert.Equal(t, "hello", msgs[0]["content_c"])
		assert.Equal(t, "are you there?", msgs[1]["content_c"])
		assert.Empty(t, svc.GetMessages(ctx, second.ID()))
	})

	t.Run("latest message stamped on conversation", func(t *testing.T) {
		convs := svc.GetConversations(ctx)
		require.Len(t, convs, 2)
		assert.Equal(t, convID, convs[0].ID(), "most recently active first")
		assert.Equal(t, "are you there?", convs[0]["last_message_c"])
	})

	t.Run("mark as read", func(t *testing.T) {
		msgs := svc.GetMessages(ctx, convID)
		require.NotEmpty(t, msgs)
		assert.True(t, svc.MarkAsRead(ctx, msgs[0].ID()))
		assert.Equal(t, true, svc.GetMessages(ctx, convID)[0]["read_c"])
		assert.False(t, svc.MarkAsRead(ctx, 9999))
	})
}

func TestMessageService_CreateNaming(t *testing.T) {
	ctx := context.Background()
	client := new(MockClient)
	client.On("CreateRecord", ctx, models.MessageTable, mock.MatchedBy(func(p *records.MutateParams) bool {
		rec := p.Records[0]
		return rec["Name"] == fmt.Sprintf("Message %d", fixedNow.UnixMilli()) &&
			rec["conversation_id_c"] == int64(5) &&
			rec["sender_id_c"] == int64(2) &&
			rec["timestamp_c"] == "2024-05-01T09:30:00.000Z"
	})).Return(&records.MutateResponse{Success: true, Results: []records.Result{{Success: true, Data: records.Record{"Id": 1}}}}, nil)
	client.On("UpdateRecord", ctx, models.ConversationTable, mock.MatchedBy(func(p *records.MutateParams) bool {
		rec := p.Records[0]
		return rec["Id"] == int64(5) && rec["last_message_c"] == "hi"
	})).Return(nil, errors.New("timeout"))

	svc := NewMessageService(client, nil)
	svc.Clock = fixedClock

	msg := svc.Create(ctx, &dtos.MessageInput{SenderIDC: 2, ContentC: "hi", ConversationIDC: 5})
	assert.NotNil(t, msg, "a failed conversation update does not fail the message")
	client.AssertExpectations(t)
}

func TestMessageService_StampMissingConversationIsLogged(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.ErrorLevel)
	svc := NewMessageService(newStore(t), zap.New(core))
	svc.Clock = fixedClock

	msg := svc.Create(ctx, &dtos.MessageInput{ContentC: "anyone?", ConversationIDC: 777})
	require.NotNil(t, msg)

	entries := logs.FilterMessage("Failed updating conversation").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(777), entries[0].ContextMap()["id"])
	assert.Equal(t, int64(1), entries[0].ContextMap()["failed"])
}

func TestMessageService_FailedCreateLeavesConversation(t *testing.T) {
	ctx := context.Background()
	client := new(MockClient)
	client.On("CreateRecord", ctx, models.MessageTable, mock.Anything).
		Return(&records.MutateResponse{Success: false, Message: "invalid"}, nil)

	svc := NewMessageService(client, nil)
	assert.Nil(t, svc.Create(ctx, &dtos.MessageInput{ContentC: "hi", ConversationIDC: 5}))
	client.AssertNotCalled(t, "UpdateRecord", mock.Anything, mock.Anything, mock.Anything)
}

func TestMessageService_MarkAsReadRefused(t *testing.T) {
	ctx := context.Background()
	client := new(MockClient)
	client.On("UpdateRecord", ctx, models.MessageTable, mock.Anything).
		Return(&records.MutateResponse{Success: false, Message: "denied"}, nil).Once()
	client.On("UpdateRecord", ctx, models.MessageTable, mock.Anything).
		Return(nil, errors.New("timeout")).Once()

	svc := NewMessageService(client, nil)
	assert.False(t, svc.MarkAsRead(ctx, 1))
	assert.False(t, svc.MarkAsRead(ctx, 1))
	client.AssertExpectations(t)
}
