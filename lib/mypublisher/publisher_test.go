package mypublisher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/myevents"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mypubsub"
	"github.com/MarcGrol/shopfront/lib/myqueue"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
)

type testEvent struct {
	UID string
}

func (e testEvent) GetEventTypeName() string {
	return "test.happened"
}

func (e testEvent) GetAggregateName() string {
	return e.UID
}

func TestTransactionalPublisher(t *testing.T) {

	t.Run("Publish stores envelope and enqueues trigger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, outbox, queue, _, nower := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		queue.EXPECT().Enqueue(c, gomock.Any()).Return(nil)

		// when
		err := sut.Publish(c, "test", testEvent{UID: "123"})

		// then
		assert.NoError(t, err)
		envelopes, _ := outbox.List(c)
		assert.Len(t, envelopes, 1)
		assert.Equal(t, "test.happened", envelopes[0].EventTypeName)
		assert.Equal(t, "123", envelopes[0].AggregateUID)
		assert.False(t, envelopes[0].Published)
	})

	t.Run("Trigger pushes unpublished envelopes and marks them published", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, sut, outbox, queue, pubsub, nower := setup(t, ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		queue.EXPECT().Enqueue(c, gomock.Any()).Return(nil)
		err := sut.Publish(c, "test", testEvent{UID: "123"})
		assert.NoError(t, err)

		pubsub.EXPECT().Publish(gomock.Any(), "test", gomock.Any()).Return(nil)

		// when
		err = sut.processTrigger(c, "test", "irrelevant")

		// then
		assert.NoError(t, err)
		envelopes, _ := outbox.List(c)
		assert.Len(t, envelopes, 1)
		assert.True(t, envelopes[0].Published)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *transactionalPublisher, mystore.Store[myevents.EventEnvelope], *myqueue.MockTaskQueuer, *mypubsub.MockPubSub, *mytime.MockNower) {
	c := context.TODO()
	outbox, _, err := mystore.NewInMemoryStore[myevents.EventEnvelope](c)
	assert.NoError(t, err)
	queue := myqueue.NewMockTaskQueuer(ctrl)
	pubsub := mypubsub.NewMockPubSub(ctrl)
	nower := mytime.NewMockNower(ctrl)

	sut := &transactionalPublisher{
		outbox:    outbox,
		queue:     queue,
		enveloper: newEnveloper(nower),
		pubsub:    pubsub,
		logger:    mylog.New("publisher"),
	}

	return c, sut, outbox, queue, pubsub, nower
}
