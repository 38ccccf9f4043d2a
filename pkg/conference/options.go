// Package conference converts between bridge maps and conference creation options.
package conference

// RTCPMode selects how the server aggregates RTCP statistics for bandwidth estimation.
type RTCPMode string

// Supported RTCP modes.
const (
	RTCPModeWorst   RTCPMode = "worst"
	RTCPModeAverage RTCPMode = "average"
	RTCPModeMax     RTCPMode = "max"
)

// VideoCodec is the preferred video codec of the conference.
type VideoCodec string

// Supported video codecs.
const (
	VideoCodecH264 VideoCodec = "H264"
	VideoCodecVP8  VideoCodec = "VP8"
)

// Options holds the settings used to create a conference. It cannot be changed
// once constructed; build a new value instead.
type Options struct {
	alias         string
	audioEnabled  bool
	videoEnabled  bool
	statsEnabled  bool
	rtcpMode      RTCPMode
	videoCodec    VideoCodec
	dolbyVoice    bool
	liveRecording bool
	ttl           int
	ephemeral     bool
}

// Default returns the options used when nothing was supplied.
func Default() *Options {
	return &Options{
		alias:         aliasField.Default,
		audioEnabled:  audioEnabledField.Default,
		videoEnabled:  videoEnabledField.Default,
		statsEnabled:  statsEnabledField.Default,
		rtcpMode:      rtcpModeField.Default,
		videoCodec:    videoCodecField.Default,
		dolbyVoice:    dolbyVoiceField.Default,
		liveRecording: liveRecordingField.Default,
		ttl:           ttlField.Default,
		ephemeral:     ephemeralField.Default,
	}
}

// Alias is the conference name. Empty means the server picks one.
func (o *Options) Alias() string { return o.alias }

// AudioEnabled reports whether the conference carries audio.
func (o *Options) AudioEnabled() bool { return o.audioEnabled }

// VideoEnabled reports whether the conference carries video.
func (o *Options) VideoEnabled() bool { return o.videoEnabled }

// StatsEnabled reports whether statistics reporting is on.
func (o *Options) StatsEnabled() bool { return o.statsEnabled }

// RTCPMode returns the statistics aggregation mode.
func (o *Options) RTCPMode() RTCPMode { return o.rtcpMode }

// VideoCodec returns the preferred codec.
func (o *Options) VideoCodec() VideoCodec { return o.videoCodec }

// DolbyVoice reports whether spatial voice processing is requested.
func (o *Options) DolbyVoice() bool { return o.dolbyVoice }

// LiveRecording reports whether the conference is recorded while it runs.
func (o *Options) LiveRecording() bool { return o.liveRecording }

// TTL is the number of seconds the conference is kept after the last
// participant leaves. Zero keeps the server default.
func (o *Options) TTL() int { return o.ttl }

// Ephemeral reports whether the conference is discarded as soon as it ends.
func (o *Options) Ephemeral() bool { return o.ephemeral }
