package pendingqueue

import "sync"

// Listener is a transition callback. It takes no arguments and returns
// nothing; the transition kind is implied by the registry it was added to.
type Listener func()

// listenerRegistry maps caller-supplied ids to callbacks for one transition
// kind. It is safe for concurrent register/remove/notify; notification
// iterates live state, so a callback removed mid-delivery may or may not be
// invoked for that event.
type listenerRegistry struct {
	listeners sync.Map // id string -> Listener
}

// register inserts or replaces the callback under id. An id maps to at most
// one callback at any instant.
func (r *listenerRegistry) register(id string, fn Listener) {
	r.listeners.Store(id, fn)
}

// remove deletes the callback under id if present; absent ids are a no-op.
func (r *listenerRegistry) remove(id string) {
	r.listeners.Delete(id)
}

// notify invokes every currently registered callback, synchronously on the
// calling goroutine, in unspecified order. A panicking callback unwinds
// through notify without corrupting the registry.
func (r *listenerRegistry) notify() {
	r.listeners.Range(func(_, v any) bool {
		v.(Listener)()
		return true
	})
}
