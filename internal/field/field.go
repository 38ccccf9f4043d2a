// Package field describes a single recognized option key: how to coerce it,
// how to validate it and what it defaults to.
package field

import (
	"github.com/auraspeak/confbridge/pkg/bridge"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

var validate = validator.New()

// Keyed is implemented by every Spec regardless of its value type.
type Keyed interface {
	Name() string
}

// Spec describes one recognized key of type T.
type Spec[T any] struct {
	Key     string
	Default T
	Coerce  func(bridge.Value) (T, bool)
	// Rule is a validator tag applied after coercion, e.g. "min=0,max=4".
	Rule string
}

// Bool returns a Spec for a boolean key.
func Bool(key string, def bool) Spec[bool] {
	return Spec[bool]{Key: key, Default: def, Coerce: bridge.AsBool}
}

// Int returns a Spec for an integer key constrained by rule.
func Int(key string, def int, rule string) Spec[int] {
	return Spec[int]{Key: key, Default: def, Coerce: bridge.AsInt, Rule: rule}
}

// String returns a Spec for a free-form string key.
func String(key string, def string) Spec[string] {
	return Spec[string]{Key: key, Default: def, Coerce: bridge.AsString}
}

// Enum returns a Spec for a string-backed enumeration. rule is usually a oneof tag.
func Enum[T ~string](key string, def T, rule string) Spec[T] {
	return Spec[T]{
		Key:     key,
		Default: def,
		Coerce: func(v bridge.Value) (T, bool) {
			s, ok := bridge.AsString(v)
			return T(s), ok
		},
		Rule: rule,
	}
}

// Name returns the key.
func (s Spec[T]) Name() string { return s.Key }

// Lookup reads the key from m. ok is false when the key is missing, null, not
// coercible or rejected by Rule. Rejections are logged at debug level under caller.
func (s Spec[T]) Lookup(m bridge.Map, caller string) (val T, ok bool) {
	raw := m.Get(s.Key)
	if !raw.IsPresent() {
		return val, false
	}
	entry := log.WithField("caller", caller).WithField("key", s.Key).WithField("kind", raw.Kind().String())
	val, ok = s.Coerce(raw)
	if !ok {
		entry.Debug("Ignoring option value that cannot be coerced")
		return val, false
	}
	if s.Rule != "" {
		if err := validate.Var(val, s.Rule); err != nil {
			entry.WithError(err).Debug("Ignoring option value that fails validation")
			var zero T
			return zero, false
		}
	}
	return val, true
}

// Resolve reads the key from m, falling back to Default.
func (s Spec[T]) Resolve(m bridge.Map, caller string) T {
	if val, ok := s.Lookup(m, caller); ok {
		return val
	}
	return s.Default
}

// Assign overwrites *dst when the key is present and usable in m. It reports
// whether a write happened.
func (s Spec[T]) Assign(dst *T, m bridge.Map, caller string) bool {
	val, ok := s.Lookup(m, caller)
	if !ok {
		return false
	}
	*dst = val
	return true
}

// Keys lists the names of specs in order.
func Keys(specs ...Keyed) []string {
	return lo.Map(specs, func(s Keyed, _ int) string {
		return s.Name()
	})
}
