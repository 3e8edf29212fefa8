package rtcm3

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
)

// JSONError wraps a malformed-JSON failure encountered while decoding
// a JsonBridge record, distinct from a ParseError or a CrcMismatchError
// produced further down by the binary decoder.
type JSONError struct {
	Err error
}

func (e *JSONError) Error() string { return fmt.Sprintf("rtcm3: JSON error: %v", e.Err) }
func (e *JSONError) Unwrap() error { return e.Err }

// record is the newline-delimited JSON shape described by spec.md §6:
// msg_type/msg_length/payload plus the flattened message fields plus
// the frame trailer. encoding/json has no built-in struct flatten (the
// teacher's own jsonconfig package never needed one), so the flattened
// message fields are merged in at the map level rather than via struct
// embedding.
type record struct {
	MsgType        uint   `json:"msg_type"`
	MsgLength      int    `json:"msg_length"`
	Payload        string `json:"payload"`
	NumPaddingBits uint   `json:"num_padding_bits"`
	Padding        uint64 `json:"padding"`
	CRC            uint32 `json:"crc"`
}

// FrameToJSON renders f as a single JSON record: the envelope fields
// plus every exported field of the decoded message flattened in
// alongside them, plus msg_type. The base64 payload remains the
// authoritative field; the flattened fields are informational, per
// spec.md §4.8/§9.
func FrameToJSON(f *Frame, rawPayload []byte) ([]byte, error) {
	rec := record{
		MsgType:        f.Message.MessageType(),
		MsgLength:      len(rawPayload),
		Payload:        base64.StdEncoding.EncodeToString(rawPayload),
		NumPaddingBits: f.NumPaddingBits,
		Padding:        f.Padding,
		CRC:            f.CRC,
	}

	envelope, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}

	messageFields, err := json.Marshal(f.Message)
	if err != nil {
		return nil, err
	}

	return mergeJSONObjects(envelope, messageFields)
}

// mergeJSONObjects flattens b's top-level keys into a, with a's keys
// taking precedence on collision (the envelope fields - msg_type,
// msg_length, payload, and the trailer - are never shadowed by a
// message field of the same name).
func mergeJSONObjects(a, b []byte) ([]byte, error) {
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(a, &merged); err != nil {
		return nil, err
	}
	var extra map[string]json.RawMessage
	if err := json.Unmarshal(b, &extra); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// FrameFromJSON reconstructs a Frame by decoding the base64 payload in
// data through the binary decoder. The flattened structured fields, if
// present, are informational only and are ignored - per spec.md §9,
// editing them without updating the base64 payload has no effect.
func FrameFromJSON(data []byte) (*Frame, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &JSONError{Err: err}
	}
	payload, err := base64.StdEncoding.DecodeString(rec.Payload)
	if err != nil {
		return nil, &JSONError{Err: err}
	}
	message, _, err := decodePayload(payload)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return &Frame{
		Length:         uint16(len(payload)),
		Message:        message,
		NumPaddingBits: rec.NumPaddingBits,
		Padding:        rec.Padding,
		CRC:            rec.CRC,
	}, nil
}

// TimestampedFrame is the conversion-tooling variant described in
// spec.md §6: the base64 frame bytes (rtcm_b64, authoritative),
// a timestamp split across seconds/nanoseconds, and an optional nested
// structured view that is carried for humans but never read back.
type TimestampedFrame struct {
	Seconds     int64           `json:"-"`
	Nanoseconds int64           `json:"nanoseconds"`
	RTCMBase64  string          `json:"rtcm_b64"`
	RTCM        json.RawMessage `json:"rtcm,omitempty"`
}

// MarshalJSON emits seconds as a plain JSON number; UnmarshalJSON
// accepts either a number or a decimal string, per spec.md §6.
func (t TimestampedFrame) MarshalJSON() ([]byte, error) {
	type alias TimestampedFrame
	return json.Marshal(struct {
		Seconds int64 `json:"seconds"`
		alias
	}{Seconds: t.Seconds, alias: alias(t)})
}

func (t *TimestampedFrame) UnmarshalJSON(data []byte) error {
	type alias TimestampedFrame
	aux := struct {
		Seconds json.RawMessage `json:"seconds"`
		*alias
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return &JSONError{Err: err}
	}

	seconds, err := decodeSeconds(aux.Seconds)
	if err != nil {
		return &JSONError{Err: err}
	}
	t.Seconds = seconds
	return nil
}

// decodeSeconds accepts a bare JSON number (`1234`) or a JSON string
// holding a decimal integer (`"1234"`), matching spec.md §6's
// "integer; may also arrive as a decimal string" requirement.
func decodeSeconds(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("rtcm3: missing seconds field")
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		return strconv.ParseInt(s, 10, 64)
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// TimestampedFrameFromJSON decodes data into the Frame carried by its
// rtcm_b64 field, ignoring any nested rtcm structured view - the
// base64 bytes are the sole source of truth, per spec.md §6/§9.
func TimestampedFrameFromJSON(data []byte) (*Frame, *TimestampedFrame, error) {
	var t TimestampedFrame
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, nil, &JSONError{Err: err}
	}

	raw, err := base64.StdEncoding.DecodeString(t.RTCMBase64)
	if err != nil {
		return nil, nil, &JSONError{Err: err}
	}

	frame, _, err := DecodeFrame(raw)
	if err != nil {
		return nil, &t, err
	}
	return frame, &t, nil
}
