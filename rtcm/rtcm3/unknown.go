package rtcm3

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// Unknown is the catch-all variant for any 12-bit message type this
// package does not recognise. It stores the type id, the remaining
// payload bytes as an opaque vector and the trailing 4-bit padding
// nibble that immediately follows them, so the message round-trips
// verbatim. Grounded on original_source's msg/mod.rs Message::Unknown
// variant and its get_payload_length helper.
type Unknown struct {
	TypeID  uint
	Payload []byte
	Padding uint8
}

func (m *Unknown) MessageType() uint { return m.TypeID }

func (m *Unknown) String() string {
	return fmt.Sprintf("type %d (unknown), %d opaque payload bytes\n", m.TypeID, len(m.Payload))
}

// decodeUnknown reads the 12-bit type (already known to the caller as
// typeID), then (payloadLength-2) opaque bytes and a trailing 4-bit
// nibble, mirroring get_payload_length(length) = length - 2 when
// length > 2, else 0.
func decodeUnknown(r *bitstream.Reader, typeID uint, payloadLength int) (*Unknown, error) {
	if _, err := r.ReadUint(12); err != nil {
		return nil, err
	}
	n := payloadLength - 2
	if n < 0 {
		n = 0
	}
	m := &Unknown{TypeID: typeID, Payload: make([]byte, n)}
	for i := 0; i < n; i++ {
		b, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		m.Payload[i] = byte(b)
	}
	padding, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}
	m.Padding = uint8(padding)
	return m, nil
}

// Encode writes the type id, the opaque payload bytes and the
// trailing 4-bit padding nibble, in that order.
func (m *Unknown) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(uint64(m.TypeID), 12); err != nil {
		return err
	}
	for _, b := range m.Payload {
		if err := w.WriteUint(uint64(b), 8); err != nil {
			return err
		}
	}
	return w.WriteUint(uint64(m.Padding), 4)
}

// Message4062 carries an SBP message embedded in an RTCM3 frame (type
// 4062). The inner SBP payload is treated as an opaque byte slice plus
// a length, per spec.md §4.4/§9 - the SBP wire format is a separate,
// externally-defined schema out of scope for this codec.
type Message4062 struct {
	Reserved   uint8
	SBPPayload []byte
}

func (m *Message4062) MessageType() uint { return 4062 }

func (m *Message4062) String() string {
	return fmt.Sprintf("type 4062 (SBP-in-RTCM), %d opaque SBP bytes\n", len(m.SBPPayload))
}

// decodeMessage4062 reads the 12-bit type (re-consumed here so the
// caller's peek stays side-effect free), 4 reserved bits, an 8-bit SBP
// payload length and that many opaque bytes.
func decodeMessage4062(r *bitstream.Reader, payloadLength int) (*Message4062, error) {
	if _, err := r.ReadUint(12); err != nil {
		return nil, err
	}
	reserved, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}
	n, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}
	m := &Message4062{Reserved: uint8(reserved), SBPPayload: make([]byte, n)}
	for i := range m.SBPPayload {
		b, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		m.SBPPayload[i] = byte(b)
	}
	return m, nil
}

// Encode writes the type id, 4 reserved bits, the SBP length byte and
// the opaque SBP bytes, in that order.
func (m *Message4062) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(4062, 12); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Reserved), 4); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(len(m.SBPPayload)), 8); err != nil {
		return err
	}
	for _, b := range m.SBPPayload {
		if err := w.WriteUint(uint64(b), 8); err != nil {
			return err
		}
	}
	return nil
}
