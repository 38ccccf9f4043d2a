package join

import (
	"fmt"

	"github.com/auraspeak/confbridge/internal/field"
	"github.com/auraspeak/confbridge/pkg/bridge"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const caller = "join options"

// Recognized keys.
const (
	KeyAudioEnabled          = "audioEnabled"
	KeyVideoEnabled          = "videoEnabled"
	KeyMaxVideoForwarding    = "maxVideoForwarding"
	KeyConferenceAccessToken = "conferenceAccessToken"
	KeySimulcast             = "simulcast"
	KeySpatialAudio          = "spatialAudio"
)

var (
	audioEnabledField       = field.Bool(KeyAudioEnabled, true)
	videoEnabledField       = field.Bool(KeyVideoEnabled, false)
	maxVideoForwardingField = field.Int(KeyMaxVideoForwarding, MaxVideoForwardingLimit, fmt.Sprintf("min=0,max=%d", MaxVideoForwardingLimit))
	accessTokenField        = field.String(KeyConferenceAccessToken, "")
	simulcastField          = field.Bool(KeySimulcast, false)
	spatialAudioField       = field.Bool(KeySpatialAudio, false)
)

// Keys returns every recognized key in declaration order.
func Keys() []string {
	return field.Keys(
		audioEnabledField,
		videoEnabledField,
		maxVideoForwardingField,
		accessTokenField,
		simulcastField,
		spatialAudioField,
	)
}

// Marshaller converts join options to and from bridge maps. The zero value is
// ready to use.
type Marshaller struct{}

// Construct builds Options from m. It returns nil when m is nil or empty.
// Keys that are missing or hold unusable values take their default.
func (Marshaller) Construct(m bridge.Map) *Options {
	if m.IsEmpty() {
		return nil
	}
	return &Options{
		AudioEnabled:          audioEnabledField.Resolve(m, caller),
		VideoEnabled:          videoEnabledField.Resolve(m, caller),
		MaxVideoForwarding:    maxVideoForwardingField.Resolve(m, caller),
		ConferenceAccessToken: accessTokenField.Resolve(m, caller),
		Simulcast:             simulcastField.Resolve(m, caller),
		SpatialAudio:          spatialAudioField.Resolve(m, caller),
	}
}

// Serialize emits every recognized key with its current value. A nil o is
// serialized as Default().
func (Marshaller) Serialize(o *Options) bridge.Map {
	if o == nil {
		o = Default()
	}
	return bridge.Map{
		KeyAudioEnabled:          o.AudioEnabled,
		KeyVideoEnabled:          o.VideoEnabled,
		KeyMaxVideoForwarding:    o.MaxVideoForwarding,
		KeyConferenceAccessToken: o.ConferenceAccessToken,
		KeySimulcast:             o.Simulcast,
		KeySpatialAudio:          o.SpatialAudio,
	}
}

// Update writes every recognized key present in m into o. Keys that are
// absent, null or unusable leave the matching field as it is; nothing is reset
// to its default. A nil m or o is a no-op.
func (Marshaller) Update(o *Options, m bridge.Map) {
	if o == nil || m == nil {
		return
	}
	written := lo.Count([]bool{
		audioEnabledField.Assign(&o.AudioEnabled, m, caller),
		videoEnabledField.Assign(&o.VideoEnabled, m, caller),
		maxVideoForwardingField.Assign(&o.MaxVideoForwarding, m, caller),
		accessTokenField.Assign(&o.ConferenceAccessToken, m, caller),
		simulcastField.Assign(&o.Simulcast, m, caller),
		spatialAudioField.Assign(&o.SpatialAudio, m, caller),
	}, true)
	log.WithField("caller", caller).Debugf("Applied %d of %d update keys", written, len(m))
}
