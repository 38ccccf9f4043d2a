package field

import (
	"testing"

	"github.com/auraspeak/confbridge/pkg/bridge"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.PanicLevel)
}

type mode string

func TestSpecResolve(t *testing.T) {
	spec := Int("max", 4, "min=0,max=4")

	tests := []struct {
		name string
		m    bridge.Map
		want int
	}{
		{name: "missing", m: bridge.Map{}, want: 4},
		{name: "null", m: bridge.Map{"max": nil}, want: 4},
		{name: "valid", m: bridge.Map{"max": 2}, want: 2},
		{name: "zero", m: bridge.Map{"max": 0}, want: 0},
		{name: "upper bound", m: bridge.Map{"max": 4}, want: 4},
		{name: "negative", m: bridge.Map{"max": -1}, want: 4},
		{name: "above range", m: bridge.Map{"max": 5}, want: 4},
		{name: "numeric string", m: bridge.Map{"max": "3"}, want: 3},
		{name: "garbage", m: bridge.Map{"max": "abc"}, want: 4},
		{name: "fractional", m: bridge.Map{"max": 1.5}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spec.Resolve(tt.m, "test"))
		})
	}
}

func TestSpecLookup_NilMap(t *testing.T) {
	_, ok := Bool("flag", true).Lookup(nil, "test")
	assert.False(t, ok)
}

func TestEnum(t *testing.T) {
	spec := Enum[mode]("mode", mode("average"), "oneof=worst average max")

	assert.Equal(t, mode("max"), spec.Resolve(bridge.Map{"mode": "max"}, "test"))
	assert.Equal(t, mode("average"), spec.Resolve(bridge.Map{"mode": "loudest"}, "test"))
	assert.Equal(t, mode("average"), spec.Resolve(bridge.Map{"mode": 1}, "test"))

	val, ok := spec.Lookup(bridge.Map{"mode": "loudest"}, "test")
	assert.False(t, ok)
	assert.Equal(t, mode(""), val)
}

func TestStringPassesThroughVerbatim(t *testing.T) {
	spec := String("token", "")
	raw := "  eyJhbGciOi.\n  "
	assert.Equal(t, raw, spec.Resolve(bridge.Map{"token": raw}, "test"))
	assert.Equal(t, "", spec.Resolve(bridge.Map{"token": 12}, "test"))
}

func TestSpecAssign(t *testing.T) {
	spec := Bool("flag", false)

	dst := true
	assert.False(t, spec.Assign(&dst, bridge.Map{}, "test"))
	assert.True(t, dst)

	assert.False(t, spec.Assign(&dst, bridge.Map{"flag": "maybe"}, "test"))
	assert.True(t, dst)

	assert.True(t, spec.Assign(&dst, bridge.Map{"flag": false}, "test"))
	assert.False(t, dst)

	// Equal value still counts as a write.
	assert.True(t, spec.Assign(&dst, bridge.Map{"flag": false}, "test"))
	assert.False(t, dst)
}

func TestKeys(t *testing.T) {
	keys := Keys(Bool("a", true), Int("b", 0, ""), String("c", ""))
	require.Len(t, keys, 3)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Empty(t, Keys())
}
