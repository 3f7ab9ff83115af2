package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mypubsub"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/services/cart/cartevents"
)

var (
	phone     = CartLine{ProductUID: "p1", Name: "Phone", Price: 10.00, Image: "/img/phone.jpg"}
	phoneCase = CartLine{ProductUID: "p2", Name: "Case", Price: 5.00, Image: "/img/case.jpg"}
)

func TestAddLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Add new product starts at quantity 1", func(t *testing.T) {
		// setup
		ctx, sut, storer, publisher := setupCommandTest(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, cartevents.CartItemAdded{
			ProductUID: "p1",
			Quantity:   1,
		}).Return(nil)

		// when
		crt, err := sut.addLine(ctx, phone)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 1, len(crt.Lines))
		assert.Equal(t, 1, crt.Lines[0].Quantity)

		stored, exists, _ := storer.Get(ctx, cartKey)
		assert.True(t, exists)
		assert.Equal(t, crt, stored)
	})

	t.Run("Add same product again increments quantity", func(t *testing.T) {
		// setup
		ctx, sut, _, publisher := setupCommandTest(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, gomock.Any()).Return(nil).Times(2)
		_, err := sut.addLine(ctx, phone)
		assert.NoError(t, err)

		// when
		crt, err := sut.addLine(ctx, phone)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 1, len(crt.Lines))
		assert.Equal(t, 2, crt.Lines[0].Quantity)
	})

	t.Run("Re-add keeps originally captured name and price", func(t *testing.T) {
		// setup
		ctx, sut, _, publisher := setupCommandTest(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, gomock.Any()).Return(nil).Times(2)
		_, err := sut.addLine(ctx, phone)
		assert.NoError(t, err)

		// when: same product shows up with a changed price
		repriced := phone
		repriced.Price = 99.99
		repriced.Name = "Phone deluxe"
		crt, err := sut.addLine(ctx, repriced)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 1, len(crt.Lines))
		assert.Equal(t, "Phone", crt.Lines[0].Name)
		assert.Equal(t, 10.00, crt.Lines[0].Price)
		assert.Equal(t, 2, crt.Lines[0].Quantity)
	})

	t.Run("Lines keep insertion order", func(t *testing.T) {
		// setup
		ctx, sut, _, publisher := setupCommandTest(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, gomock.Any()).Return(nil).Times(3)
		_, err := sut.addLine(ctx, phone)
		assert.NoError(t, err)
		_, err = sut.addLine(ctx, phoneCase)
		assert.NoError(t, err)

		// when
		crt, err := sut.addLine(ctx, phone)

		// then
		assert.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2"}, []string{crt.Lines[0].ProductUID, crt.Lines[1].ProductUID})
	})
}

func TestChangeQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Increment", func(t *testing.T) {
		// setup
		ctx, sut, _, publisher := setupCommandTest(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, gomock.Any()).Return(nil)
		_, err := sut.addLine(ctx, phone)
		assert.NoError(t, err)

		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, cartevents.CartQuantityChanged{
			ProductUID: "p1",
			Quantity:   2,
		}).Return(nil)

		// when
		crt, err := sut.changeQuantity(ctx, "p1", 1)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 2, crt.Lines[0].Quantity)
	})

	t.Run("Decrement to zero removes the line", func(t *testing.T) {
		// setup
		ctx, sut, storer, publisher := setupCommandTest(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, gomock.Any()).Return(nil)
		_, err := sut.addLine(ctx, phone)
		assert.NoError(t, err)

		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, cartevents.CartItemRemoved{
			ProductUID: "p1",
		}).Return(nil)

		// when
		crt, err := sut.changeQuantity(ctx, "p1", -1)

		// then
		assert.NoError(t, err)
		assert.True(t, crt.IsEmpty())

		stored, _, _ := storer.Get(ctx, cartKey)
		assert.True(t, stored.IsEmpty())
	})

	t.Run("Unknown product is a no-op", func(t *testing.T) {
		// setup
		ctx, sut, _, publisher := setupCommandTest(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, gomock.Any()).Return(nil)
		_, err := sut.addLine(ctx, phone)
		assert.NoError(t, err)

		// when
		crt, err := sut.changeQuantity(ctx, "unknown", 1)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 1, len(crt.Lines))
		assert.Equal(t, 1, crt.Lines[0].Quantity)
	})
}

func TestRemoveLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Remove existing line", func(t *testing.T) {
		// setup
		ctx, sut, _, publisher := setupCommandTest(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, gomock.Any()).Return(nil).Times(2)
		_, err := sut.addLine(ctx, phone)
		assert.NoError(t, err)
		_, err = sut.addLine(ctx, phoneCase)
		assert.NoError(t, err)

		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, cartevents.CartItemRemoved{
			ProductUID: "p1",
		}).Return(nil)

		// when
		crt, err := sut.removeLine(ctx, "p1")

		// then
		assert.NoError(t, err)
		assert.Equal(t, 1, len(crt.Lines))
		assert.Equal(t, "p2", crt.Lines[0].ProductUID)
	})

	t.Run("Remove unknown product is a no-op", func(t *testing.T) {
		// setup
		ctx, sut, _, _ := setupCommandTest(t, ctrl)

		// when
		crt, err := sut.removeLine(ctx, "unknown")

		// then
		assert.NoError(t, err)
		assert.True(t, crt.IsEmpty())
	})
}

func TestClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Clear drops the persisted cart", func(t *testing.T) {
		// setup
		ctx, sut, storer, publisher := setupCommandTest(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, gomock.Any()).Return(nil)
		_, err := sut.addLine(ctx, phone)
		assert.NoError(t, err)

		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, cartevents.CartCleared{}).Return(nil)

		// when
		err = sut.Clear(ctx)

		// then
		assert.NoError(t, err)
		_, exists, _ := storer.Get(ctx, cartKey)
		assert.False(t, exists)

		crt, err := sut.CurrentCart(ctx)
		assert.NoError(t, err)
		assert.True(t, crt.IsEmpty())
	})

	t.Run("Clear of an already empty cart succeeds", func(t *testing.T) {
		// setup
		ctx, sut, _, publisher := setupCommandTest(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, cartevents.CartCleared{}).Return(nil)

		// when
		err := sut.Clear(ctx)

		// then
		assert.NoError(t, err)
	})
}

func TestHydration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Absent cart hydrates empty", func(t *testing.T) {
		// setup
		ctx, sut, _, _ := setupCommandTest(t, ctrl)

		// when
		crt, err := sut.CurrentCart(ctx)

		// then
		assert.NoError(t, err)
		assert.True(t, crt.IsEmpty())
	})

	t.Run("Persisted cart survives a new service instance", func(t *testing.T) {
		// setup
		ctx, sut, storer, publisher := setupCommandTest(t, ctrl)

		// given
		publisher.EXPECT().Publish(gomock.Any(), cartevents.TopicName, gomock.Any()).Return(nil)
		_, err := sut.addLine(ctx, phone)
		assert.NoError(t, err)

		// when: a fresh service over the same store
		subscriber := mypubsub.NewMockPubSub(ctrl)
		fresh := NewService(storer, subscriber, publisher)
		crt, err := fresh.CurrentCart(ctx)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 1, len(crt.Lines))
		assert.Equal(t, "p1", crt.Lines[0].ProductUID)
	})
}

func setupCommandTest(t *testing.T, ctrl *gomock.Controller) (context.Context, *service, mystore.Store[Cart], *mypublisher.MockPublisher) {
	c := context.TODO()
	storer, _, _ := mystore.New[Cart](c)
	subscriber := mypubsub.NewMockPubSub(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	sut := NewService(storer, subscriber, publisher)

	return c, sut, storer, publisher
}
