// Package observe provides the synchronous observer lists used by the panel
// and form state containers.
//
// A List is owned by a single state container. Subscribers are notified in
// subscription order, on the caller's goroutine, after the owner's state
// transition has completed. Lists are not safe for concurrent use; readerstyle
// mutates all observed state from the Bubble Tea update loop.
package observe

// Subscription is a live registration on a List. Close removes it.
type Subscription struct {
	entry *entry
	list  listRemover
}

type listRemover interface {
	remove(e *entry)
}

// Close removes the subscription. Closing more than once is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.entry.removed {
		return
	}
	s.list.remove(s.entry)
}

// Active reports whether the subscription is still registered.
func (s *Subscription) Active() bool {
	return s != nil && !s.entry.removed
}

type entry struct {
	fn      any
	removed bool
}

// List is an ordered set of subscribers receiving values of type T.
type List[T any] struct {
	entries []*entry
}

// Subscribe registers fn and returns its subscription.
func (l *List[T]) Subscribe(fn func(T)) *Subscription {
	e := &entry{fn: fn}
	l.entries = append(l.entries, e)
	return &Subscription{entry: e, list: l}
}

// Notify calls every active subscriber with v. Subscribers removed while
// Notify runs are skipped; subscribers added while it runs are not called
// until the next Notify.
func (l *List[T]) Notify(v T) {
	snapshot := append([]*entry(nil), l.entries...)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		e.fn.(func(T))(v)
	}
}

// Len returns the number of active subscribers.
func (l *List[T]) Len() int {
	return len(l.entries)
}

func (l *List[T]) remove(target *entry) {
	target.removed = true
	for i, e := range l.entries {
		if e == target {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}
