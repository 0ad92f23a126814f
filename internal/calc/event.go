package calc

import (
	"encoding/json"
)

// DisplayChanged is sent after every change of the expression text.
type DisplayChanged struct {
	Text string `json:"text"`
}

// Failed is sent when an operation is rejected.
type Failed struct {
	Err Error `json:"-"`
}

// Event is a notification sent by the Accumulator.
type Event interface {
	evType() string
}

func (*DisplayChanged) evType() string { return "display" }
func (*Failed) evType() string         { return "failed" }

// MarshalJSON encodes the error kind and its message.
func (f *Failed) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}{f.Err.Name(), f.Err.Error()})
}

type jsonEvent struct {
	Type  string `json:"type"`
	Event Event  `json:"event"`
}

// WriteEvent encodes ev as a JSON object of the form
// {"type": "display", "event": {...}}.
func WriteEvent(enc *json.Encoder, ev Event) error {
	jsev := &jsonEvent{Type: ev.evType(), Event: ev}
	return enc.Encode(jsev)
}
