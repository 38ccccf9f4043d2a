// Package router dispatches bridge method calls to their registered handlers.
package router

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/auraspeak/confbridge/pkg/bridge"
)

// ErrUnknownMethod is returned by Handle when no handler is registered for a method.
var ErrUnknownMethod = errors.New("no handler found for method")

// MethodHandler handles one bridge call. args are the untyped maps passed by the
// host bridge in call order; any of them may be nil.
type MethodHandler func(args ...bridge.Map) (bridge.Map, error)

// Router routes bridge calls to their registered handlers based on method name.
type Router struct {
	handlers sync.Map // method -> MethodHandler
}

// NewRouter creates a new Router.
func NewRouter() *Router {
	return &Router{
		handlers: sync.Map{},
	}
}

// On registers a MethodHandler for method, replacing any previous one.
// Example:
//
//	router.On("join.construct", func(args ...bridge.Map) (bridge.Map, error) {
//		return bridge.Map{"audioEnabled": true}, nil
//	})
func (r *Router) On(method string, handler MethodHandler) {
	r.handlers.Store(method, handler)
}

// Handle calls the handler registered for method.
func (r *Router) Handle(method string, args ...bridge.Map) (bridge.Map, error) {
	if method == "" {
		return nil, errors.New("empty method name")
	}
	handler, ok := r.handlers.Load(method)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
	handlerFunc := handler.(MethodHandler)
	return handlerFunc(args...)
}

// Methods returns all registered method names in sorted order.
func (r *Router) Methods() []string {
	var methods []string
	r.handlers.Range(func(key, value interface{}) bool {
		methods = append(methods, key.(string))
		return true
	})
	sort.Strings(methods)
	return methods
}
