// Package ordering computes the execution order of the listeners subscribed
// to one event.
//
// A candidate is a root when no other candidate lists it as a dependency.
// Roots are expanded depth-first in candidate order; every dependency is
// placed before the listener that needs it, and a dependency shared by
// several listeners is placed once, at the first point any of them needs it.
// Candidates that no root reaches (a cycle without an entry point) leave the
// result short, which is reported as domain.ErrNoRootDependency.
package ordering

import (
	"github.com/Sententiaregum/flux-container/domain"
)

type frame struct {
	listener *domain.Listener
	next     int
}

// Resolve returns candidates in an order that honours every dependency edge.
// The slice order of candidates is the tie-break for unrelated listeners.
// Resolve keeps no state between calls.
func Resolve(candidates []domain.Listener) ([]domain.Listener, error) {
	var (
		index      = make(map[domain.ListenerID]*domain.Listener, len(candidates))
		referenced = make(map[domain.ListenerID]struct{}, len(candidates))
		placed     = make(map[domain.ListenerID]struct{}, len(candidates))
		onPath     = make(map[domain.ListenerID]struct{})
		result     = make([]domain.Listener, 0, len(candidates))
	)

	for i := range candidates {
		index[candidates[i].ID] = &candidates[i]
	}

	for _, candidate := range candidates {
		for _, dep := range candidate.Dependencies {
			referenced[dep] = struct{}{}
		}
	}

	for i := range candidates {
		root := &candidates[i]
		if _, ok := referenced[root.ID]; ok {
			continue
		}
		if _, ok := placed[root.ID]; ok {
			continue
		}

		stack := []*frame{{listener: root}}
		onPath[root.ID] = struct{}{}

		for len(stack) > 0 {
			top := stack[len(stack)-1]

			if top.next < len(top.listener.Dependencies) {
				token := top.listener.Dependencies[top.next]
				top.next++

				dep, ok := index[token]
				if !ok {
					return nil, domain.TokenNotRegisteredError{Token: token}
				}
				if _, ok := onPath[token]; ok {
					return nil, domain.CircularReferenceError{Token: token}
				}
				if _, ok := placed[token]; ok {
					continue
				}

				stack = append(stack, &frame{listener: dep})
				onPath[token] = struct{}{}

				continue
			}

			// all dependencies placed, post-order
			stack = stack[:len(stack)-1]
			delete(onPath, top.listener.ID)
			placed[top.listener.ID] = struct{}{}
			result = append(result, *top.listener)
		}
	}

	if len(result) != len(candidates) {
		return nil, domain.ErrNoRootDependency
	}

	return result, nil
}

func Callbacks(listeners []domain.Listener) []domain.Callback {
	callbacks := make([]domain.Callback, 0, len(listeners))
	for _, l := range listeners {
		callbacks = append(callbacks, l.Callback)
	}

	return callbacks
}
