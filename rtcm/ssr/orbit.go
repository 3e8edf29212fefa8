package ssr

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// OrbitSatellite is one satellite's orbit correction record. IOD is the
// GPS gps_iode (width 8) or the Galileo gal_iodnav_i_nav (width 10);
// TOEModulo only applies to BeiDou, which additionally carries a
// bds_t_oe_modulo field ahead of its 8-bit IOD.
type OrbitSatellite struct {
	SatelliteID         uint
	TOEModulo           uint
	IOD                 uint
	DeltaRadial         int64
	DeltaAlongTrack     int64
	DeltaCrossTrack     int64
	DotDeltaRadial      int64
	DotDeltaAlongTrack  int64
	DotDeltaCrossTrack  int64
}

func decodeOrbitSatellite(r *bitstream.Reader, constellation string) (*OrbitSatellite, error) {
	s := &OrbitSatellite{}
	var err error
	if s.SatelliteID, err = readUint(r, 6); err != nil {
		return nil, err
	}
	switch constellation {
	case BeiDou:
		if s.TOEModulo, err = readUint(r, 10); err != nil {
			return nil, err
		}
		if s.IOD, err = readUint(r, 8); err != nil {
			return nil, err
		}
	case Galileo:
		if s.IOD, err = readUint(r, 10); err != nil {
			return nil, err
		}
	default:
		if s.IOD, err = readUint(r, 8); err != nil {
			return nil, err
		}
	}
	if s.DeltaRadial, err = r.ReadInt(22); err != nil {
		return nil, err
	}
	if s.DeltaAlongTrack, err = r.ReadInt(20); err != nil {
		return nil, err
	}
	if s.DeltaCrossTrack, err = r.ReadInt(20); err != nil {
		return nil, err
	}
	if s.DotDeltaRadial, err = r.ReadInt(21); err != nil {
		return nil, err
	}
	if s.DotDeltaAlongTrack, err = r.ReadInt(19); err != nil {
		return nil, err
	}
	if s.DotDeltaCrossTrack, err = r.ReadInt(19); err != nil {
		return nil, err
	}
	return s, nil
}

func encodeOrbitSatellite(w *bitstream.Writer, s *OrbitSatellite, constellation string) error {
	if err := w.WriteUint(uint64(s.SatelliteID), 6); err != nil {
		return err
	}
	switch constellation {
	case BeiDou:
		if err := w.WriteUint(uint64(s.TOEModulo), 10); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(s.IOD), 8); err != nil {
			return err
		}
	case Galileo:
		if err := w.WriteUint(uint64(s.IOD), 10); err != nil {
			return err
		}
	default:
		if err := w.WriteUint(uint64(s.IOD), 8); err != nil {
			return err
		}
	}
	if err := w.WriteInt(s.DeltaRadial, 22); err != nil {
		return err
	}
	if err := w.WriteInt(s.DeltaAlongTrack, 20); err != nil {
		return err
	}
	if err := w.WriteInt(s.DeltaCrossTrack, 20); err != nil {
		return err
	}
	if err := w.WriteInt(s.DotDeltaRadial, 21); err != nil {
		return err
	}
	if err := w.WriteInt(s.DotDeltaAlongTrack, 19); err != nil {
		return err
	}
	return w.WriteInt(s.DotDeltaCrossTrack, 19)
}

// OrbitMessage is the SSR orbit correction message: 1057 (GPS), 1240
// (Galileo) or 1258 (BeiDou).
type OrbitMessage struct {
	Constellation string
	Header        Header
	Satellites    []OrbitSatellite
}

var orbitMessageType = map[string]uint{GPS: 1057, Galileo: 1240, BeiDou: 1258}

func (m *OrbitMessage) MessageType() uint { return orbitMessageType[m.Constellation] }

// DecodeOrbitMessage reads an orbit correction message for the given
// constellation, including its leading message type field.
func DecodeOrbitMessage(r *bitstream.Reader, constellation string) (*OrbitMessage, error) {
	want, ok := orbitMessageType[constellation]
	if !ok {
		return nil, fmt.Errorf("ssr: unknown orbit constellation %q", constellation)
	}
	if err := expectType(r, uint64(want)); err != nil {
		return nil, err
	}
	m := &OrbitMessage{Constellation: constellation}
	h, err := decodeHeader(r, headerShape{hasSatRefDatum: true})
	if err != nil {
		return nil, err
	}
	m.Header = *h
	m.Satellites = make([]OrbitSatellite, h.NumSatellites)
	for i := range m.Satellites {
		s, err := decodeOrbitSatellite(r, constellation)
		if err != nil {
			return nil, err
		}
		m.Satellites[i] = *s
	}
	return m, nil
}

// Encode writes the message back, including the leading message type.
func (m *OrbitMessage) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(uint64(m.MessageType()), lenMessageType); err != nil {
		return err
	}
	if err := encodeHeader(w, &m.Header, headerShape{hasSatRefDatum: true}, len(m.Satellites)); err != nil {
		return err
	}
	for i := range m.Satellites {
		if err := encodeOrbitSatellite(w, &m.Satellites[i], m.Constellation); err != nil {
			return err
		}
	}
	return nil
}

func (m *OrbitMessage) String() string {
	return fmt.Sprintf("type %d %s SSR orbit correction, %d satellites\n", m.MessageType(), m.Constellation, len(m.Satellites))
}
