package relay

import (
	"errors"
	"strings"
	"testing"

	"rentloop-server/models"
	"rentloop-server/services"

	"github.com/stretchr/testify/require"
)

type fakeMessageStore struct {
	created   []models.Message
	createErr error
}

func (s *fakeMessageStore) Create(message *models.Message) error {
	if s.createErr != nil {
		return s.createErr
	}
	message.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *message)
	return nil
}

func (s *fakeMessageStore) Conversation(userA, userB uint) ([]models.Message, error) {
	var messages []models.Message
	for _, m := range s.created {
		if (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA) {
			messages = append(messages, m)
		}
	}
	return messages, nil
}

func (s *fakeMessageStore) MarkRead(messageID, readerID uint) error { return nil }

func newTestRelay() (*Relay, *fakeMessageStore, *Registry) {
	store := &fakeMessageStore{}
	registry := NewRegistry()
	return NewRelay(store, registry), store, registry
}

func requireValidation(t *testing.T, err error) {
	t.Helper()
	var svcErr *services.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, services.KindValidation, svcErr.Kind)
}

func TestSendRejectsEmptyAndOversizedContent(t *testing.T) {
	relay, store, _ := newTestRelay()

	_, err := relay.Send(1, 2, "")
	requireValidation(t, err)

	_, err = relay.Send(1, 2, strings.Repeat("a", 1001))
	requireValidation(t, err)

	require.Empty(t, store.created)
}

func TestSendLimitCountsCharactersNotBytes(t *testing.T) {
	relay, _, _ := newTestRelay()

	// 600 cyrillic characters are 1200 bytes; still under the 1000-character cap.
	message, err := relay.Send(1, 2, strings.Repeat("п", 600))
	require.NoError(t, err)
	require.NotNil(t, message)

	_, err = relay.Send(1, 2, strings.Repeat("п", 1001))
	requireValidation(t, err)
}

func TestSendDeliversToRegisteredReceiver(t *testing.T) {
	relay, store, registry := newTestRelay()

	ch := &fakeChannel{}
	registry.Register(2, ch)

	message, err := relay.Send(1, 2, "is the drill still available?")
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	require.Len(t, ch.frames, 1)

	frame, ok := ch.frames[0].(WireMessage)
	require.True(t, ok)
	require.Equal(t, message.ID, frame.ID)
	require.Equal(t, uint(1), frame.SenderID)
	require.Equal(t, uint(2), frame.ReceiverID)
	require.Equal(t, "is the drill still available?", frame.Content)
}

func TestSendWithoutReceiverChannelStillPersists(t *testing.T) {
	relay, store, _ := newTestRelay()

	message, err := relay.Send(1, 2, "hello")
	require.NoError(t, err)
	require.NotNil(t, message)
	require.Len(t, store.created, 1)
}

func TestSendDoesNotDeliverWhenPersistFails(t *testing.T) {
	relay, store, registry := newTestRelay()
	store.createErr = errors.New("store down")

	ch := &fakeChannel{}
	registry.Register(2, ch)

	_, err := relay.Send(1, 2, "hello")
	require.Error(t, err)
	require.Empty(t, ch.frames, "nothing may be delivered that was not persisted")
}

func TestSendSurvivesDeliveryFailure(t *testing.T) {
	relay, store, registry := newTestRelay()

	ch := &fakeChannel{writeErr: errors.New("connection reset")}
	registry.Register(2, ch)

	message, err := relay.Send(1, 2, "hello")
	require.NoError(t, err, "a dead receiver channel must not fail the send")
	require.NotNil(t, message)
	require.Len(t, store.created, 1)
}

func TestSendSkipsOtherUsersChannels(t *testing.T) {
	relay, _, registry := newTestRelay()

	bystander := &fakeChannel{}
	registry.Register(3, bystander)

	_, err := relay.Send(1, 2, "hello")
	require.NoError(t, err)
	require.Empty(t, bystander.frames)
}

func TestHistoryIsSymmetric(t *testing.T) {
	relay, _, _ := newTestRelay()

	_, err := relay.Send(1, 2, "first")
	require.NoError(t, err)
	_, err = relay.Send(2, 1, "second")
	require.NoError(t, err)
	_, err = relay.Send(1, 3, "unrelated")
	require.NoError(t, err)

	forward, err := relay.History(1, 2)
	require.NoError(t, err)
	backward, err := relay.History(2, 1)
	require.NoError(t, err)

	require.Equal(t, forward, backward)
	require.Len(t, forward, 2)
	require.Equal(t, "first", forward[0].Content)
	require.Equal(t, "second", forward[1].Content)
}
