package ssr

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// PhaseBias is one signal's phase bias value within a satellite's
// block.
type PhaseBias struct {
	SignalAndTrackingModeIndicator    uint
	SignalIntegerIndicator            bool
	SignalsWideLaneIntegerIndicator   uint
	SignalDiscontinuityCounter        uint
	PhaseBiasValue                    int64
}

// PhaseBiasSatellite is one satellite's phase bias block.
type PhaseBiasSatellite struct {
	SatelliteID uint
	YawAngle    uint
	YawRate     int64
	Phases      []PhaseBias
}

func decodePhaseBiasSatellite(r *bitstream.Reader) (*PhaseBiasSatellite, error) {
	s := &PhaseBiasSatellite{}
	var err error
	if s.SatelliteID, err = readUint(r, 6); err != nil {
		return nil, err
	}
	count, err := readUint(r, 5)
	if err != nil {
		return nil, err
	}
	if s.YawAngle, err = readUint(r, 9); err != nil {
		return nil, err
	}
	if s.YawRate, err = r.ReadInt(8); err != nil {
		return nil, err
	}
	s.Phases = make([]PhaseBias, count)
	for i := range s.Phases {
		p := &s.Phases[i]
		if p.SignalAndTrackingModeIndicator, err = readUint(r, 5); err != nil {
			return nil, err
		}
		if p.SignalIntegerIndicator, err = r.ReadBit(); err != nil {
			return nil, err
		}
		if p.SignalsWideLaneIntegerIndicator, err = readUint(r, 2); err != nil {
			return nil, err
		}
		if p.SignalDiscontinuityCounter, err = readUint(r, 4); err != nil {
			return nil, err
		}
		if p.PhaseBiasValue, err = r.ReadInt(20); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func encodePhaseBiasSatellite(w *bitstream.Writer, s *PhaseBiasSatellite) error {
	if err := w.WriteUint(uint64(s.SatelliteID), 6); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(len(s.Phases)), 5); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(s.YawAngle), 9); err != nil {
		return err
	}
	if err := w.WriteInt(s.YawRate, 8); err != nil {
		return err
	}
	for _, p := range s.Phases {
		if err := w.WriteUint(uint64(p.SignalAndTrackingModeIndicator), 5); err != nil {
			return err
		}
		if err := w.WriteBit(p.SignalIntegerIndicator); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(p.SignalsWideLaneIntegerIndicator), 2); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(p.SignalDiscontinuityCounter), 4); err != nil {
			return err
		}
		if err := w.WriteInt(p.PhaseBiasValue, 20); err != nil {
			return err
		}
	}
	return nil
}

// PhaseBiasMessage is the SSR phase bias message: 1265 (GPS), 1267
// (Galileo) or 1270 (BeiDou).
type PhaseBiasMessage struct {
	Constellation string
	Header        Header
	Satellites    []PhaseBiasSatellite
}

var phaseBiasMessageType = map[string]uint{GPS: 1265, Galileo: 1267, BeiDou: 1270}

func (m *PhaseBiasMessage) MessageType() uint { return phaseBiasMessageType[m.Constellation] }

// DecodePhaseBiasMessage reads a phase bias message for the given
// constellation, including its leading message type field.
func DecodePhaseBiasMessage(r *bitstream.Reader, constellation string) (*PhaseBiasMessage, error) {
	want, ok := phaseBiasMessageType[constellation]
	if !ok {
		return nil, fmt.Errorf("ssr: unknown phase-bias constellation %q", constellation)
	}
	if err := expectType(r, uint64(want)); err != nil {
		return nil, err
	}
	m := &PhaseBiasMessage{Constellation: constellation}
	h, err := decodeHeader(r, headerShape{hasConsistency: true})
	if err != nil {
		return nil, err
	}
	m.Header = *h
	m.Satellites = make([]PhaseBiasSatellite, h.NumSatellites)
	for i := range m.Satellites {
		s, err := decodePhaseBiasSatellite(r)
		if err != nil {
			return nil, err
		}
		m.Satellites[i] = *s
	}
	return m, nil
}

// Encode writes the message back, including the leading message type.
func (m *PhaseBiasMessage) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(uint64(m.MessageType()), lenMessageType); err != nil {
		return err
	}
	if err := encodeHeader(w, &m.Header, headerShape{hasConsistency: true}, len(m.Satellites)); err != nil {
		return err
	}
	for i := range m.Satellites {
		if err := encodePhaseBiasSatellite(w, &m.Satellites[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *PhaseBiasMessage) String() string {
	return fmt.Sprintf("type %d %s SSR phase bias, %d satellites\n", m.MessageType(), m.Constellation, len(m.Satellites))
}
