// Package join converts between bridge maps and per-participant join options,
// and applies partial updates to options that are already in use.
package join

// MaxVideoForwardingLimit is the largest number of video streams the server
// forwards to one participant. It doubles as the default.
const MaxVideoForwardingLimit = 4

// Options holds the settings a participant joins a conference with.
// Options is not safe for concurrent Update; callers that share one value
// across goroutines must serialize access.
type Options struct {
	AudioEnabled bool
	VideoEnabled bool
	// MaxVideoForwarding is in [0, MaxVideoForwardingLimit].
	MaxVideoForwarding int
	// ConferenceAccessToken is passed through untouched.
	ConferenceAccessToken string
	Simulcast             bool
	SpatialAudio          bool
}

// Default returns the options used when nothing was supplied.
func Default() *Options {
	return &Options{
		AudioEnabled:          audioEnabledField.Default,
		VideoEnabled:          videoEnabledField.Default,
		MaxVideoForwarding:    maxVideoForwardingField.Default,
		ConferenceAccessToken: accessTokenField.Default,
		Simulcast:             simulcastField.Default,
		SpatialAudio:          spatialAudioField.Default,
	}
}
