package msm

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// Message is a fully decoded MSM1-7 message for any constellation,
// the generic replacement for the sub-type-specific message types this
// package's predecessors each defined.
type Message struct {
	Header     *Header
	Satellites []Satellite
	Signals    []Signal
}

// MessageType returns the 12-bit RTCM type id.
func (m *Message) MessageType() uint {
	return m.Header.MessageType
}

// Decode reads a complete MSM message (header, satellite data, signal
// data) starting at the beginning of the payload.
func Decode(r *bitstream.Reader) (*Message, error) {
	header, err := DecodeHeader(r)
	if err != nil {
		return nil, err
	}
	sats, err := DecodeSatellites(r, header.SubType, header.Satellites)
	if err != nil {
		return nil, err
	}
	signals, err := DecodeSignals(r, header.SubType, header)
	if err != nil {
		return nil, err
	}
	return &Message{Header: header, Satellites: sats, Signals: signals}, nil
}

// Encode writes the message back to w: header, then satellite data,
// then signal data, in wire order.
func (m *Message) Encode(w *bitstream.Writer) error {
	if err := m.Header.Encode(w); err != nil {
		return err
	}
	if err := EncodeSatellites(w, m.Header.SubType, m.Satellites); err != nil {
		return err
	}
	return EncodeSignals(w, m.Header.SubType, m.Signals)
}

// String renders the message as header, then satellites, then signals.
func (m *Message) String() string {
	result := m.Header.String()
	result += fmt.Sprintf("%d Satellites\n", len(m.Satellites))
	for _, s := range m.Satellites {
		result += s.String() + "\n"
	}
	result += fmt.Sprintf("%d Signals\n", len(m.Signals))
	for _, s := range m.Signals {
		result += s.String() + "\n"
	}
	return result
}
