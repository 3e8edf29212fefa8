package ssr

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// CombinedSatellite is one satellite's combined orbit-and-clock
// correction record: the orbit fields followed directly by the clock
// fields, as in 1060/1243/1261.
type CombinedSatellite struct {
	OrbitSatellite
	DeltaClockC0 int64
	DeltaClockC1 int64
	DeltaClockC2 int64
}

func decodeCombinedSatellite(r *bitstream.Reader, constellation string) (*CombinedSatellite, error) {
	orbit, err := decodeOrbitSatellite(r, constellation)
	if err != nil {
		return nil, err
	}
	s := &CombinedSatellite{OrbitSatellite: *orbit}
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

func encodeCombinedSatellite(w *bitstream.Writer, s *CombinedSatellite, constellation string) error {
	if err := encodeOrbitSatellite(w, &s.OrbitSatellite, constellation); err != nil {
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

// CombinedMessage is the SSR combined orbit-and-clock correction
// message: 1060 (GPS), 1243 (Galileo) or 1261 (BeiDou).
type CombinedMessage struct {
	Constellation string
	Header        Header
	Satellites    []CombinedSatellite
}

var combinedMessageType = map[string]uint{GPS: 1060, Galileo: 1243, BeiDou: 1261}

func (m *CombinedMessage) MessageType() uint { return combinedMessageType[m.Constellation] }

// DecodeCombinedMessage reads a combined correction message for the
// given constellation, including its leading message type field.
func DecodeCombinedMessage(r *bitstream.Reader, constellation string) (*CombinedMessage, error) {
	want, ok := combinedMessageType[constellation]
	if !ok {
		return nil, fmt.Errorf("ssr: unknown combined constellation %q", constellation)
	}
	if err := expectType(r, uint64(want)); err != nil {
		return nil, err
	}
	m := &CombinedMessage{Constellation: constellation}
	h, err := decodeHeader(r, headerShape{hasSatRefDatum: true})
	if err != nil {
		return nil, err
	}
	m.Header = *h
	m.Satellites = make([]CombinedSatellite, h.NumSatellites)
	for i := range m.Satellites {
		s, err := decodeCombinedSatellite(r, constellation)
		if err != nil {
			return nil, err
		}
		m.Satellites[i] = *s
	}
	return m, nil
}

// Encode writes the message back, including the leading message type.
func (m *CombinedMessage) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(uint64(m.MessageType()), lenMessageType); err != nil {
		return err
	}
	if err := encodeHeader(w, &m.Header, headerShape{hasSatRefDatum: true}, len(m.Satellites)); err != nil {
		return err
	}
	for i := range m.Satellites {
		if err := encodeCombinedSatellite(w, &m.Satellites[i], m.Constellation); err != nil {
			return err
		}
	}
	return nil
}

func (m *CombinedMessage) String() string {
	return fmt.Sprintf("type %d %s SSR combined correction, %d satellites\n", m.MessageType(), m.Constellation, len(m.Satellites))
}
