package chat

import (
	"bytes"
	"encoding/json"
)

// The upstream stream is newline-delimited. Each complete line is one of a
// closed set of record kinds; anything else is dropped rather than aborting
// the stream.
type recordKind int

const (
	recordBlank recordKind = iota
	recordComment
	recordData
	recordDone
)

type record struct {
	kind    recordKind
	payload []byte
}

var (
	dataPrefix   = []byte("data: ")
	doneSentinel = []byte("[DONE]")
)

func classifyLine(line []byte) record {
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(bytes.TrimSpace(line)) == 0 {
		return record{kind: recordBlank}
	}
	if line[0] == ':' {
		return record{kind: recordComment}
	}
	if !bytes.HasPrefix(line, dataPrefix) {
		return record{kind: recordComment}
	}
	payload := bytes.TrimSpace(line[len(dataPrefix):])
	if bytes.Equal(payload, doneSentinel) {
		return record{kind: recordDone}
	}
	return record{kind: recordData, payload: payload}
}

// deltaPayload is the OpenAI chat-completion delta shape.
type deltaPayload struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Decoder reassembles data records from chunks that may split a line at any
// byte. A partial trailing line stays buffered until the rest arrives.
type Decoder struct {
	buf  []byte
	done bool
}

// Done reports whether the end-of-stream sentinel has been seen.
func (d *Decoder) Done() bool { return d.done }

// Feed consumes one transport chunk and returns the text fragments completed
// by it, in order. Malformed JSON on a complete line is skipped silently;
// after the sentinel everything is ignored.
func (d *Decoder) Feed(chunk []byte) []string {
	if d.done {
		return nil
	}
	d.buf = append(d.buf, chunk...)

	var deltas []string
	for {
		i := bytes.IndexByte(d.buf, '\n')
		if i < 0 {
			return deltas
		}
		line := d.buf[:i]
		d.buf = d.buf[i+1:]

		rec := classifyLine(line)
		switch rec.kind {
		case recordDone:
			d.done = true
			d.buf = nil
			return deltas
		case recordData:
			var p deltaPayload
			if err := json.Unmarshal(rec.payload, &p); err != nil {
				continue
			}
			if len(p.Choices) == 0 {
				continue
			}
			if content := p.Choices[0].Delta.Content; content != "" {
				deltas = append(deltas, content)
			}
		default:
			// comment, keepalive or blank: ignorable
		}
	}
}
