package conference

import (
	"testing"

	"github.com/auraspeak/confbridge/pkg/bridge"
)

// FuzzConstruct decodes arbitrary JSON and checks that Construct never panics
// and that a non-nil result always serializes every recognized key.
func FuzzConstruct(f *testing.F) {
	f.Add([]byte(`{"videoEnabled": true}`))
	f.Add([]byte(`{"ttl": -1, "rtcpMode": 3}`))
	f.Add([]byte(`{"alias": null}`))
	f.Add([]byte(`{}`))
	f.Fuzz(func(t *testing.T, data []byte) {
		in, err := bridge.DecodeJSON(data)
		if err != nil {
			return
		}
		var m Marshaller
		opts := m.Construct(in)
		if opts == nil {
			if !in.IsEmpty() {
				t.Fatalf("nil options for non-empty input %v", in)
			}
			return
		}
		if out := m.Serialize(opts); len(out) != len(Keys()) {
			t.Fatalf("serialized %d keys, want %d", len(out), len(Keys()))
		}
	})
}
