package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feedAll(d *Decoder, chunks ...string) []string {
	var out []string
	for _, c := range chunks {
		out = append(out, d.Feed([]byte(c))...)
	}
	return out
}

func TestDecoderSplitMidJSON(t *testing.T) {
	var d Decoder
	deltas := feedAll(&d,
		`data: {"choices":[{"delta":{"content":"Hel`,
		"lo\"}}]}\n\ndata: [DONE]\n",
	)
	assert.Equal(t, []string{"Hello"}, deltas)
	assert.True(t, d.Done())
}

func TestDecoderMalformedLineTolerated(t *testing.T) {
	var d Decoder
	deltas := feedAll(&d,
		"data: {\"choices\":[{\"delta\":{\"content\":\"a\"}}]}\n",
		"data: {not json\n",
		"data: {\"choices\":[{\"delta\":{\"content\":\"b\"}}]}\n",
		"data: [DONE]\n",
	)
	assert.Equal(t, []string{"a", "b"}, deltas)
	assert.True(t, d.Done())
}

func TestDecoderIgnoresCommentsAndBlanks(t *testing.T) {
	var d Decoder
	deltas := feedAll(&d,
		": keepalive\n\n\r\n",
		"data: {\"choices\":[{\"delta\":{\"content\":\"x\"}}]}\r\n",
	)
	assert.Equal(t, []string{"x"}, deltas)
	assert.False(t, d.Done())
}

func TestDecoderStopsAtSentinel(t *testing.T) {
	var d Decoder
	deltas := feedAll(&d,
		"data: [DONE]\n",
		"data: {\"choices\":[{\"delta\":{\"content\":\"late\"}}]}\n",
	)
	assert.Empty(t, deltas)
	assert.True(t, d.Done())
}

func TestDecoderEmptyDeltaSkipped(t *testing.T) {
	var d Decoder
	deltas := feedAll(&d,
		"data: {\"choices\":[{\"delta\":{}}]}\n",
		"data: {\"choices\":[]}\n",
		"data: {\"choices\":[{\"delta\":{\"content\":\"ok\"}}]}\n",
	)
	assert.Equal(t, []string{"ok"}, deltas)
}

func TestDecoderPartialLineWaits(t *testing.T) {
	var d Decoder
	assert.Empty(t, d.Feed([]byte(`data: {"choices":[{"delta":{"content":"w`)))
	assert.Equal(t, []string{"wait"}, d.Feed([]byte("ait\"}}]}\n")))
}

func TestDecoderByteAtATime(t *testing.T) {
	var d Decoder
	stream := "data: {\"choices\":[{\"delta\":{\"content\":\"drip\"}}]}\n\ndata: [DONE]\n"
	var deltas []string
	for i := 0; i < len(stream); i++ {
		deltas = append(deltas, d.Feed([]byte{stream[i]})...)
	}
	assert.Equal(t, []string{"drip"}, deltas)
	assert.True(t, d.Done())
}
