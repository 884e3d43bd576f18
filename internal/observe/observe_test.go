package observe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListNotifyInOrder(t *testing.T) {
	var l List[int]
	var got []string

	l.Subscribe(func(v int) { got = append(got, "a") })
	l.Subscribe(func(v int) { got = append(got, "b") })

	l.Notify(1)

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, l.Len())
}

func TestSubscriptionClose(t *testing.T) {
	var l List[string]
	calls := 0

	sub := l.Subscribe(func(string) { calls++ })
	assert.True(t, sub.Active())

	sub.Close()
	sub.Close()

	l.Notify("x")
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, l.Len())
	assert.False(t, sub.Active())
}

func TestCloseDuringNotifySkipsRemoved(t *testing.T) {
	var l List[int]
	var second *Subscription
	secondCalls := 0

	l.Subscribe(func(int) { second.Close() })
	second = l.Subscribe(func(int) { secondCalls++ })

	l.Notify(1)

	assert.Equal(t, 0, secondCalls)
	assert.Equal(t, 1, l.Len())
}

func TestSubscribeDuringNotifyWaitsForNextRound(t *testing.T) {
	var l List[int]
	lateCalls := 0

	l.Subscribe(func(int) {
		if l.Len() == 1 {
			l.Subscribe(func(int) { lateCalls++ })
		}
	})

	l.Notify(1)
	assert.Equal(t, 0, lateCalls)

	l.Notify(2)
	assert.Equal(t, 1, lateCalls)
}

func TestNilSubscriptionIsInactive(t *testing.T) {
	var sub *Subscription
	assert.False(t, sub.Active())
	sub.Close()
}
