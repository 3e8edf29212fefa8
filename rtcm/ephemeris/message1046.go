package ephemeris

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// Message1046 is the Galileo I/NAV (E5b) broadcast ephemeris message.
// It shares its orbital elements with Message1045 but carries a second
// broadcast group delay and separate E5b/E1-B health and validity
// fields instead of Message1045's single nav signal health field.
type Message1046 struct {
	galileoBody
	BGDE5bE1                int64
	E5bSignalHealthStatus   uint
	E5bDataValidityStatus   bool
	E1BSignalHealthStatus   uint
	E1BDataValidityStatus   bool
	Reserved                uint
}

func (m *Message1046) MessageType() uint { return 1046 }

// DecodeMessage1046 reads a type 1046 message.
func DecodeMessage1046(r *bitstream.Reader) (*Message1046, error) {
	if err := expectType(r, 1046); err != nil {
		return nil, err
	}
	body, err := decodeGalileoBody(r)
	if err != nil {
		return nil, err
	}
	m := &Message1046{galileoBody: *body}
	if m.BGDE5bE1, err = r.ReadInt(10); err != nil {
		return nil, err
	}
	if m.E5bSignalHealthStatus, err = ru(r, 2); err != nil {
		return nil, err
	}
	if m.E5bDataValidityStatus, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.E1BSignalHealthStatus, err = ru(r, 2); err != nil {
		return nil, err
	}
	if m.E1BDataValidityStatus, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.Reserved, err = ru(r, 2); err != nil {
		return nil, err
	}
	return m, nil
}

// Encode writes the message back, including the leading message type.
func (m *Message1046) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1046, lenMessageType); err != nil {
		return err
	}
	if err := encodeGalileoBody(w, &m.galileoBody); err != nil {
		return err
	}
	if err := w.WriteInt(m.BGDE5bE1, 10); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.E5bSignalHealthStatus), 2); err != nil {
		return err
	}
	if err := w.WriteBit(m.E5bDataValidityStatus); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.E1BSignalHealthStatus), 2); err != nil {
		return err
	}
	if err := w.WriteBit(m.E1BDataValidityStatus); err != nil {
		return err
	}
	return w.WriteUint(uint64(m.Reserved), 2)
}

func (m *Message1046) String() string {
	return fmt.Sprintf("type 1046 Galileo I/NAV ephemeris sv %d, week %d\n", m.SatelliteID, m.WeekNumber)
}
