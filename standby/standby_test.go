package standby_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catuhana/rive/event"
	"github.com/catuhana/rive/id"
	"github.com/catuhana/rive/model"
	"github.com/catuhana/rive/standby"
)

func TestWaitForMatchesVariantAndPredicate(t *testing.T) {
	s := standby.New()

	type result struct {
		ev  event.ChannelCreate
		err error
	}
	results := make(chan result, 1)
	go func() {
		ev, err := standby.WaitFor(context.Background(), s, func(ev event.ChannelCreate) bool {
			return ev.Channel.ID.Value() == "target"
		})
		results <- result{ev, err}
	}()

	time.Sleep(20 * time.Millisecond) // let the goroutine subscribe

	s.Process(event.Authenticated{})
	s.Process(channelCreate("not-target"))
	s.Process(channelCreate("target"))

	select {
	case r := <-results:
		require.NoError(t, r.err)
		assert.Equal(t, "target", r.ev.Channel.ID.Value())
	case <-time.After(time.Second):
		t.Fatal("WaitFor never returned")
	}
}

func TestProcessBeforeSubscribeIsNotObserved(t *testing.T) {
	s := standby.New()
	s.Process(event.Authenticated{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := standby.WaitFor(ctx, s, func(event.Authenticated) bool { return true })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitForCancellation(t *testing.T) {
	s := standby.New()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := standby.WaitFor(ctx, s, func(event.Pong) bool { return true })
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("WaitFor did not observe cancellation")
	}
}

func TestMultipleWaitersEachSeeMatchingEvent(t *testing.T) {
	s := standby.New()

	results := make(chan event.Authenticated, 2)
	for i := 0; i < 2; i++ {
		go func() {
			ev, err := standby.WaitFor(context.Background(), s, func(event.Authenticated) bool { return true })
			require.NoError(t, err)
			results <- ev
		}()
	}

	time.Sleep(20 * time.Millisecond)
	s.Process(event.Authenticated{})

	for i := 0; i < 2; i++ {
		select {
		case <-results:
		case <-time.After(time.Second):
			t.Fatal("not all waiters observed the event")
		}
	}
}

func channelCreate(channelID string) event.ChannelCreate {
	return event.ChannelCreate{Channel: model.Channel{ID: id.New[id.Channel](channelID)}}
}
