package ssr

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// CodeBias is one signal's code bias value within a satellite's block.
type CodeBias struct {
	SignalAndTrackingModeIndicator uint
	CodeBias                       int64
}

// CodeBiasSatellite is one satellite's code bias block: a satellite ID
// followed by a variable-length list of per-signal biases.
type CodeBiasSatellite struct {
	SatelliteID uint
	Biases      []CodeBias
}

func decodeCodeBiasSatellite(r *bitstream.Reader) (*CodeBiasSatellite, error) {
	s := &CodeBiasSatellite{}
	var err error
	if s.SatelliteID, err = readUint(r, 6); err != nil {
		return nil, err
	}
	count, err := readUint(r, 5)
	if err != nil {
		return nil, err
	}
	s.Biases = make([]CodeBias, count)
	for i := range s.Biases {
		if s.Biases[i].SignalAndTrackingModeIndicator, err = readUint(r, 5); err != nil {
			return nil, err
		}
		if s.Biases[i].CodeBias, err = r.ReadInt(14); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func encodeCodeBiasSatellite(w *bitstream.Writer, s *CodeBiasSatellite) error {
	if err := w.WriteUint(uint64(s.SatelliteID), 6); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(len(s.Biases)), 5); err != nil {
		return err
	}
	for _, b := range s.Biases {
		if err := w.WriteUint(uint64(b.SignalAndTrackingModeIndicator), 5); err != nil {
			return err
		}
		if err := w.WriteInt(b.CodeBias, 14); err != nil {
			return err
		}
	}
	return nil
}

// CodeBiasMessage is the SSR code bias message: 1059 (GPS), 1242
// (Galileo) or 1260 (BeiDou).
type CodeBiasMessage struct {
	Constellation string
	Header        Header
	Satellites    []CodeBiasSatellite
}

var codeBiasMessageType = map[string]uint{GPS: 1059, Galileo: 1242, BeiDou: 1260}

func (m *CodeBiasMessage) MessageType() uint { return codeBiasMessageType[m.Constellation] }

// DecodeCodeBiasMessage reads a code bias message for the given
// constellation, including its leading message type field.
func DecodeCodeBiasMessage(r *bitstream.Reader, constellation string) (*CodeBiasMessage, error) {
	want, ok := codeBiasMessageType[constellation]
	if !ok {
		return nil, fmt.Errorf("ssr: unknown code-bias constellation %q", constellation)
	}
	if err := expectType(r, uint64(want)); err != nil {
		return nil, err
	}
	m := &CodeBiasMessage{Constellation: constellation}
	h, err := decodeHeader(r, headerShape{})
	if err != nil {
		return nil, err
	}
	m.Header = *h
	m.Satellites = make([]CodeBiasSatellite, h.NumSatellites)
	for i := range m.Satellites {
		s, err := decodeCodeBiasSatellite(r)
		if err != nil {
			return nil, err
		}
		m.Satellites[i] = *s
	}
	return m, nil
}

// Encode writes the message back, including the leading message type.
func (m *CodeBiasMessage) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(uint64(m.MessageType()), lenMessageType); err != nil {
		return err
	}
	if err := encodeHeader(w, &m.Header, headerShape{}, len(m.Satellites)); err != nil {
		return err
	}
	for i := range m.Satellites {
		if err := encodeCodeBiasSatellite(w, &m.Satellites[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *CodeBiasMessage) String() string {
	return fmt.Sprintf("type %d %s SSR code bias, %d satellites\n", m.MessageType(), m.Constellation, len(m.Satellites))
}
