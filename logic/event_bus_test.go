package logic_test

import (
	"context"
	"fmt"
	"pachli/logic"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_EventBus_Filters_By_Kind_And_Account(t *testing.T) {

	bus := logic.NewEventBus()
	ctx := context.Background()

	var all, blocks, acct2 []logic.Event
	assert.Nil(t, bus.Subscribe(ctx, "all", logic.EventFilter{}, func(ev logic.Event) { all = append(all, ev) }))
	assert.Nil(t, bus.Subscribe(ctx, "blocks", logic.EventFilter{Kinds: []logic.EventKind{logic.EvBlock, logic.EvDomainBlock}},
		func(ev logic.Event) { blocks = append(blocks, ev) }))
	assert.Nil(t, bus.Subscribe(ctx, "acct2", logic.EventFilter{AccountId: 2},
		func(ev logic.Event) { acct2 = append(acct2, ev) }))
	assert.Equal(t, 3, bus.SubscriberCount())

	bus.Publish(&logic.BlockEvent{Account: 1, UserId: "u"})
	bus.Publish(&logic.MuteEvent{Account: 2, UserId: "u"})
	bus.Publish(&logic.DomainBlockEvent{Account: 2, Domain: "evil.example"})
	bus.Publish(nil)

	assert.Len(t, all, 3)
	assert.Len(t, blocks, 2)
	assert.Len(t, acct2, 2)
	assert.Equal(t, logic.EvMute, acct2[0].Kind())
}

func Test_EventBus_Subscription_Errors(t *testing.T) {

	bus := logic.NewEventBus()
	ctx := context.Background()
	noop := func(logic.Event) {}

	assert.ErrorIs(t, bus.Subscribe(ctx, "", logic.EventFilter{}, noop), logic.ErrInvalidSubscriptionId)
	assert.ErrorIs(t, bus.Subscribe(ctx, "x", logic.EventFilter{}, nil), logic.ErrNilHandler)
	assert.Nil(t, bus.Subscribe(ctx, "x", logic.EventFilter{}, noop))
	assert.ErrorIs(t, bus.Subscribe(ctx, "x", logic.EventFilter{}, noop), logic.ErrSubscriptionExists)

	assert.Nil(t, bus.Unsubscribe("x"))
	assert.ErrorIs(t, bus.Unsubscribe("x"), logic.ErrSubscriptionNotFound)
}

func Test_EventBus_Unsubscribes_When_Context_Done(t *testing.T) {

	bus := logic.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())

	count := 0
	assert.Nil(t, bus.Subscribe(ctx, "screen", logic.EventFilter{}, func(logic.Event) { count++ }))
	bus.Publish(&logic.StatusDeletedEvent{Account: 1, StatusId: "5"})
	assert.Equal(t, 1, count)

	cancel()
	assert.Eventually(t, func() bool { return bus.SubscriberCount() == 0 }, time.Second, 5*time.Millisecond)

	bus.Publish(&logic.StatusDeletedEvent{Account: 1, StatusId: "6"})
	assert.Equal(t, 1, count)

	// The ID is free again
	assert.Nil(t, bus.Subscribe(context.Background(), "screen", logic.EventFilter{}, func(logic.Event) {}))
}

func Test_EventBus_Unsubscribe_Releases_Watcher(t *testing.T) {

	bus := logic.NewEventBus()
	before := runtime.NumGoroutine()

	// Contexts that are never cancelled
	for i := 0; i < 100; i++ {
		assert.Nil(t, bus.Subscribe(context.Background(), fmt.Sprintf("sub-%d", i), logic.EventFilter{}, func(logic.Event) {}))
	}
	assert.GreaterOrEqual(t, runtime.NumGoroutine(), before+100)

	for i := 0; i < 100; i++ {
		assert.Nil(t, bus.Unsubscribe(fmt.Sprintf("sub-%d", i)))
	}
	assert.Equal(t, 0, bus.SubscriberCount())
	assert.Eventually(t, func() bool { return runtime.NumGoroutine() < before+10 }, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, bus.Unsubscribe("sub-0"), logic.ErrSubscriptionNotFound)
}
