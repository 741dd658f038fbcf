package lifecycle

import (
	"context"
	"sync"
)

// Scope is an abort signal together with its controller.
//
// A nil *Scope is valid and never aborts.
type Scope struct {
	mu        sync.Mutex
	parent    *Scope
	aborted   bool
	callbacks []*abortCallback
	children  map[*Scope]struct{}
	ctx       context.Context
	cancel    context.CancelFunc
}

type abortCallback struct {
	fn func()
}

// NewScope creates a root scope.
func NewScope() *Scope {
	return &Scope{}
}

// Child creates a scope which is aborted when s is aborted. A child may be
// aborted on its own without affecting s. The child of an aborted scope
// starts out aborted.
func (s *Scope) Child() *Scope {
	child := &Scope{parent: s}
	if s == nil {
		return child
	}
	s.mu.Lock()
	if s.aborted {
		s.mu.Unlock()
		child.aborted = true
		return child
	}
	if s.children == nil {
		s.children = make(map[*Scope]struct{})
	}
	s.children[child] = struct{}{}
	s.mu.Unlock()
	return child
}

// Aborted is true if s has been aborted.
func (s *Scope) Aborted() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aborted
}

// OnAbort registers fn to run when s is aborted. If s is already aborted,
// fn runs immediately. The returned function unregisters fn.
func (s *Scope) OnAbort(fn func()) (unregister func()) {
	if s == nil {
		return func() {}
	}
	cb := &abortCallback{fn: fn}
	s.mu.Lock()
	if s.aborted {
		s.mu.Unlock()
		fn()
		return func() {}
	}
	s.callbacks = append(s.callbacks, cb)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, c := range s.callbacks {
			if c == cb {
				s.callbacks = append(s.callbacks[:i], s.callbacks[i+1:]...)
				return
			}
		}
	}
}

// Own disposes d when s is aborted. No-op disposables are skipped.
func (s *Scope) Own(d Disposable) {
	if IsNoop(d) {
		return
	}
	s.OnAbort(d.Dispose)
}

// Abort aborts s: children are aborted first, then the abort callbacks
// run in reverse order of registration. Aborting twice has no effect.
func (s *Scope) Abort() {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.aborted {
		s.mu.Unlock()
		return
	}
	s.aborted = true
	children := make([]*Scope, 0, len(s.children))
	for ch := range s.children {
		children = append(children, ch)
	}
	s.children = nil
	callbacks := s.callbacks
	s.callbacks = nil
	cancel := s.cancel
	s.mu.Unlock()
	//
	if s.parent != nil {
		s.parent.forget(s)
	}
	for _, ch := range children {
		ch.Abort()
	}
	for i := len(callbacks) - 1; i >= 0; i-- {
		callbacks[i].fn()
	}
	if cancel != nil {
		cancel()
	}
}

func (s *Scope) forget(child *Scope) {
	s.mu.Lock()
	delete(s.children, child)
	s.mu.Unlock()
}

// Context returns a context which is cancelled when s is aborted.
func (s *Scope) Context() context.Context {
	if s == nil {
		return context.Background()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		if s.aborted {
			s.cancel()
		}
	}
	return s.ctx
}
