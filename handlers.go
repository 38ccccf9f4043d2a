package confbridge

import (
	"fmt"

	"github.com/auraspeak/confbridge/pkg/bridge"
	"github.com/auraspeak/confbridge/pkg/join"
	log "github.com/sirupsen/logrus"
)

func (b *Bridge) handleConferenceConstruct(args ...bridge.Map) (bridge.Map, error) {
	if err := checkArgs(MethodConferenceConstruct, args, 1); err != nil {
		return nil, err
	}
	opts := b.conference.Construct(arg(args, 0))
	if opts == nil {
		log.WithField("caller", "bridge").Debug("No conference options supplied: using defaults")
	}
	return b.conference.Serialize(opts), nil
}

func (b *Bridge) handleJoinConstruct(args ...bridge.Map) (bridge.Map, error) {
	if err := checkArgs(MethodJoinConstruct, args, 1); err != nil {
		return nil, err
	}
	opts := b.join.Construct(arg(args, 0))
	if opts == nil {
		log.WithField("caller", "bridge").Debug("No join options supplied: using defaults")
	}
	return b.join.Serialize(opts), nil
}

func (b *Bridge) handleJoinUpdate(args ...bridge.Map) (bridge.Map, error) {
	if err := checkArgs(MethodJoinUpdate, args, 2); err != nil {
		return nil, err
	}
	opts := b.join.Construct(arg(args, 0))
	if opts == nil {
		opts = join.Default()
	}
	b.join.Update(opts, arg(args, 1))
	return b.join.Serialize(opts), nil
}

func checkArgs(method string, args []bridge.Map, limit int) error {
	if len(args) > limit {
		return fmt.Errorf("%s: got %d arguments, want at most %d", method, len(args), limit)
	}
	return nil
}

// arg returns args[i], or nil when the caller passed fewer arguments.
func arg(args []bridge.Map, i int) bridge.Map {
	if i >= len(args) {
		return nil
	}
	return args[i]
}
