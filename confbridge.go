// Package confbridge exposes the conference and join option marshallers to a
// host bridge as named methods taking and returning untyped maps.
package confbridge

import (
	"github.com/auraspeak/confbridge/internal/router"
	"github.com/auraspeak/confbridge/pkg/bridge"
	"github.com/auraspeak/confbridge/pkg/conference"
	"github.com/auraspeak/confbridge/pkg/join"
	log "github.com/sirupsen/logrus"
)

// Bridge methods.
const (
	// MethodConferenceConstruct takes (options) and returns the completed conference options.
	MethodConferenceConstruct = "conference.construct"
	// MethodJoinConstruct takes (options) and returns the completed join options.
	MethodJoinConstruct = "join.construct"
	// MethodJoinUpdate takes (current, update) and returns current with update applied.
	MethodJoinUpdate = "join.update"
)

// Bridge dispatches host bridge calls to the marshallers. It holds no option
// entities; each call works only on the maps it is given.
type Bridge struct {
	conference conference.Marshaller
	join       join.Marshaller

	methodRouter *router.Router
}

// New creates a Bridge with all methods registered.
func New() *Bridge {
	b := &Bridge{
		methodRouter: router.NewRouter(),
	}
	b.On(MethodConferenceConstruct, b.handleConferenceConstruct)
	b.On(MethodJoinConstruct, b.handleJoinConstruct)
	b.On(MethodJoinUpdate, b.handleJoinUpdate)
	return b
}

// On registers a handler for a method, replacing any existing one.
//
// Example:
//
//	b.On("conference.keys", func(args ...bridge.Map) (bridge.Map, error) {
//		return bridge.Map{"count": len(conference.Keys())}, nil
//	})
func (b *Bridge) On(method string, handler router.MethodHandler) {
	log.WithField("caller", "bridge").Debugf("Registering handler for method: %s", method)
	b.methodRouter.On(method, handler)
}

// Call invokes method with args.
func (b *Bridge) Call(method string, args ...bridge.Map) (bridge.Map, error) {
	out, err := b.methodRouter.Handle(method, args...)
	if err != nil {
		log.WithField("caller", "bridge").WithError(err).Errorf("Call %s failed", method)
		return nil, err
	}
	return out, nil
}

// Methods lists the registered method names.
func (b *Bridge) Methods() []string {
	return b.methodRouter.Methods()
}
