package ssr

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// ClockSatellite is one satellite's clock correction record.
type ClockSatellite struct {
	SatelliteID   uint
	DeltaClockC0  int64
	DeltaClockC1  int64
	DeltaClockC2  int64
}

func decodeClockSatellite(r *bitstream.Reader) (*ClockSatellite, error) {
	s := &ClockSatellite{}
	var err error
	if s.SatelliteID, err = readUint(r, 6); err != nil {
		return nil, err
	}
	if s.DeltaClockC0, err = r.ReadInt(22); err != nil {
		return nil, err
	}
	if s.DeltaClockC1, err = r.ReadInt(21); err != nil {
		return nil, err
	}
	if s.DeltaClockC2, err = r.ReadInt(27); err != nil {
		return nil, err
	}
	return s, nil
}

func encodeClockSatellite(w *bitstream.Writer, s *ClockSatellite) error {
	if err := w.WriteUint(uint64(s.SatelliteID), 6); err != nil {
		return err
	}
	if err := w.WriteInt(s.DeltaClockC0, 22); err != nil {
		return err
	}
	if err := w.WriteInt(s.DeltaClockC1, 21); err != nil {
		return err
	}
	return w.WriteInt(s.DeltaClockC2, 27)
}

// ClockMessage is the SSR clock correction message: 1058 (GPS), 1241
// (Galileo) or 1259 (BeiDou).
type ClockMessage struct {
	Constellation string
	Header        Header
	Satellites    []ClockSatellite
}

var clockMessageType = map[string]uint{GPS: 1058, Galileo: 1241, BeiDou: 1259}

func (m *ClockMessage) MessageType() uint { return clockMessageType[m.Constellation] }

// DecodeClockMessage reads a clock correction message for the given
// constellation, including its leading message type field.
func DecodeClockMessage(r *bitstream.Reader, constellation string) (*ClockMessage, error) {
	want, ok := clockMessageType[constellation]
	if !ok {
		return nil, fmt.Errorf("ssr: unknown clock constellation %q", constellation)
	}
	if err := expectType(r, uint64(want)); err != nil {
		return nil, err
	}
	m := &ClockMessage{Constellation: constellation}
	h, err := decodeHeader(r, headerShape{})
	if err != nil {
		return nil, err
	}
	m.Header = *h
	m.Satellites = make([]ClockSatellite, h.NumSatellites)
	for i := range m.Satellites {
		s, err := decodeClockSatellite(r)
		if err != nil {
			return nil, err
		}
		m.Satellites[i] = *s
	}
	return m, nil
}

// Encode writes the message back, including the leading message type.
func (m *ClockMessage) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(uint64(m.MessageType()), lenMessageType); err != nil {
		return err
	}
	if err := encodeHeader(w, &m.Header, headerShape{}, len(m.Satellites)); err != nil {
		return err
	}
	for i := range m.Satellites {
		if err := encodeClockSatellite(w, &m.Satellites[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *ClockMessage) String() string {
	return fmt.Sprintf("type %d %s SSR clock correction, %d satellites\n", m.MessageType(), m.Constellation, len(m.Satellites))
}
