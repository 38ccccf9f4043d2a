package conference

import (
	"github.com/auraspeak/confbridge/internal/field"
	"github.com/auraspeak/confbridge/pkg/bridge"
)

const caller = "conference options"

// Recognized keys.
const (
	KeyAlias         = "alias"
	KeyAudioEnabled  = "audioEnabled"
	KeyVideoEnabled  = "videoEnabled"
	KeyStatsEnabled  = "statsEnabled"
	KeyRTCPMode      = "rtcpMode"
	KeyVideoCodec    = "videoCodec"
	KeyDolbyVoice    = "dolbyVoice"
	KeyLiveRecording = "liveRecording"
	KeyTTL           = "ttl"
	KeyEphemeral     = "ephemeral"
)

var (
	aliasField         = field.String(KeyAlias, "")
	audioEnabledField  = field.Bool(KeyAudioEnabled, true)
	videoEnabledField  = field.Bool(KeyVideoEnabled, false)
	statsEnabledField  = field.Bool(KeyStatsEnabled, true)
	rtcpModeField      = field.Enum(KeyRTCPMode, RTCPModeAverage, "oneof=worst average max")
	videoCodecField    = field.Enum(KeyVideoCodec, VideoCodecH264, "oneof=H264 VP8")
	dolbyVoiceField    = field.Bool(KeyDolbyVoice, true)
	liveRecordingField = field.Bool(KeyLiveRecording, false)
	ttlField           = field.Int(KeyTTL, 0, "min=0")
	ephemeralField     = field.Bool(KeyEphemeral, false)
)

// Keys returns every recognized key in declaration order.
func Keys() []string {
	return field.Keys(
		aliasField,
		audioEnabledField,
		videoEnabledField,
		statsEnabledField,
		rtcpModeField,
		videoCodecField,
		dolbyVoiceField,
		liveRecordingField,
		ttlField,
		ephemeralField,
	)
}

// Marshaller converts conference options to and from bridge maps. The zero
// value is ready to use and safe for concurrent use.
type Marshaller struct{}

// Construct builds Options from m. It returns nil when m is nil or empty so
// callers can treat that as a request for a default conference. Keys that are
// missing or hold unusable values take their default.
func (Marshaller) Construct(m bridge.Map) *Options {
	if m.IsEmpty() {
		return nil
	}
	return &Options{
		alias:         aliasField.Resolve(m, caller),
		audioEnabled:  audioEnabledField.Resolve(m, caller),
		videoEnabled:  videoEnabledField.Resolve(m, caller),
		statsEnabled:  statsEnabledField.Resolve(m, caller),
		rtcpMode:      rtcpModeField.Resolve(m, caller),
		videoCodec:    videoCodecField.Resolve(m, caller),
		dolbyVoice:    dolbyVoiceField.Resolve(m, caller),
		liveRecording: liveRecordingField.Resolve(m, caller),
		ttl:           ttlField.Resolve(m, caller),
		ephemeral:     ephemeralField.Resolve(m, caller),
	}
}

// Serialize emits every recognized key with its current value. A nil o is
// serialized as Default().
func (Marshaller) Serialize(o *Options) bridge.Map {
	if o == nil {
		o = Default()
	}
	return bridge.Map{
		KeyAlias:         o.alias,
		KeyAudioEnabled:  o.audioEnabled,
		KeyVideoEnabled:  o.videoEnabled,
		KeyStatsEnabled:  o.statsEnabled,
		KeyRTCPMode:      string(o.rtcpMode),
		KeyVideoCodec:    string(o.videoCodec),
		KeyDolbyVoice:    o.dolbyVoice,
		KeyLiveRecording: o.liveRecording,
		KeyTTL:           o.ttl,
		KeyEphemeral:     o.ephemeral,
	}
}
