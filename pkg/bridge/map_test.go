package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapGet(t *testing.T) {
	m := Map{"videoEnabled": true, "alias": nil}

	assert.Equal(t, Bool(true), m.Get("videoEnabled"))
	assert.Equal(t, Null(), m.Get("alias"))
	assert.Equal(t, Absent(), m.Get("missing"))

	assert.True(t, m.Has("alias"))
	assert.False(t, m.Has("missing"))
}

func TestMapGet_NilMap(t *testing.T) {
	var m Map
	assert.Equal(t, Absent(), m.Get("anything"))
	assert.False(t, m.Has("anything"))
	assert.True(t, m.IsEmpty())
	assert.True(t, Map{}.IsEmpty())
	assert.False(t, Map{"a": 1}.IsEmpty())
}

func TestDecodeJSON(t *testing.T) {
	data := []byte(`{"maxVideoForwarding": 2, "videoEnabled": true, "conferenceAccessToken": "tok", "alias": null, "constraints": {"audio": true}}`)

	m, err := DecodeJSON(data)
	require.NoError(t, err)

	assert.Equal(t, Int(2), m.Get("maxVideoForwarding"))
	assert.Equal(t, Bool(true), m.Get("videoEnabled"))
	assert.Equal(t, String("tok"), m.Get("conferenceAccessToken"))
	assert.Equal(t, Null(), m.Get("alias"))
	assert.True(t, m.Has("constraints"))
	assert.Equal(t, Absent(), m.Get("constraints"))
}

func TestDecodeJSON_LargeInteger(t *testing.T) {
	m, err := DecodeJSON([]byte(`{"ttl": 9007199254740993}`))
	require.NoError(t, err)

	n, ok := AsInt(m.Get("ttl"))
	require.True(t, ok)
	assert.Equal(t, 9007199254740993, n)
}

func TestDecodeJSON_Null(t *testing.T) {
	m, err := DecodeJSON([]byte(`null`))
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestDecodeJSON_Invalid(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"unclosed": `))
	assert.Error(t, err)

	_, err = DecodeJSON([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestDecodeYAML(t *testing.T) {
	data := []byte("videoEnabled: true\nmaxVideoForwarding: 3\nalias: daily-standup\nrtcpMode: ~\n")

	m, err := DecodeYAML(data)
	require.NoError(t, err)

	assert.Equal(t, Bool(true), m.Get("videoEnabled"))
	assert.Equal(t, Int(3), m.Get("maxVideoForwarding"))
	assert.Equal(t, String("daily-standup"), m.Get("alias"))
	assert.Equal(t, Null(), m.Get("rtcpMode"))
}

func TestDecodeYAML_Empty(t *testing.T) {
	m, err := DecodeYAML(nil)
	require.NoError(t, err)
	assert.True(t, m.IsEmpty())
}

func TestDecodeYAML_Invalid(t *testing.T) {
	_, err := DecodeYAML([]byte("invalid: yaml: content: [unclosed"))
	assert.Error(t, err)
}

func TestEncodeYAML(t *testing.T) {
	out, err := EncodeYAML(Map{"videoEnabled": true, "alias": "room"})
	require.NoError(t, err)
	assert.Equal(t, "alias: room\nvideoEnabled: true\n", string(out))
}
