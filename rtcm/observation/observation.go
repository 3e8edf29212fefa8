// Package observation implements the legacy GPS/GLONASS observation
// messages 1004 and 1012, grounded on original_source's
// observations.rs (Header1004/Satellite1004, Header1012/Satellite1012)
// and on rtcm.go's handling of the equivalent per-satellite records.
package observation

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

const (
	lenMessageType          = 12
	lenStationID            = 12
	lenSatelliteCount       = 5
	lenSynchronousGNSSFlag  = 1
	lenDivergenceFreeFlag   = 1
	lenSmoothingInterval    = 3

	lenSatelliteID              = 6
	lenCodeIndicator            = 1
	lenL1Pseudorange1004        = 24
	lenL1Pseudorange1012        = 25
	lenPhaseRangeDiff           = 20
	lenLockTimeIndicator        = 7
	lenIntPseudorangeModulus1004 = 8
	lenIntPseudorangeModulus1012 = 7
	lenCNR                      = 8
	lenL2CodeIndicator          = 2
	lenL2L1PseudorangeDiff      = 14
	lenFrequencyChannelNumber   = 5
)

// Header1004 is the fixed-length GPS observation header.
type Header1004 struct {
	StationID                        uint
	EpochTimeTOW                     uint
	SynchronousGNSSFlag              bool
	NumberOfSatelliteSignals         uint
	DivergenceFreeSmoothingIndicator bool
	SmoothingInterval                uint
}

// Satellite1004 is one GPS satellite's L1/L2 observation record.
type Satellite1004 struct {
	SatelliteID                       uint
	L1CodeIndicator                   bool
	L1Pseudorange                     uint
	L1PhaseRangeL1PseudorangeDiff      int64
	L1LockTimeIndicator                uint
	IntegerL1PseudorangeModulusAmbiguity uint
	L1CNR                              uint
	L2CodeIndicator                    uint
	L2L1PseudorangeDiff                int64
	L2PhaseRangeL1PseudorangeDiff      int64
	L2LockTimeIndicator                uint
	L2CNR                              uint
}

// Message1004 is the GPS RTK observation message.
type Message1004 struct {
	Header     Header1004
	Satellites []Satellite1004
}

func (m *Message1004) MessageType() uint { return 1004 }

// DecodeMessage1004 reads a type 1004 message, including the leading
// message type.
func DecodeMessage1004(r *bitstream.Reader) (*Message1004, error) {
	if _, err := expectType(r, 1004); err != nil {
		return nil, err
	}
	m := &Message1004{}
	var err error
	if m.Header.StationID, err = readUint(r, lenStationID); err != nil {
		return nil, err
	}
	if m.Header.EpochTimeTOW, err = readUint(r, 30); err != nil {
		return nil, err
	}
	if m.Header.SynchronousGNSSFlag, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.Header.NumberOfSatelliteSignals, err = readUint(r, lenSatelliteCount); err != nil {
		return nil, err
	}
	if m.Header.DivergenceFreeSmoothingIndicator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.Header.SmoothingInterval, err = readUint(r, lenSmoothingInterval); err != nil {
		return nil, err
	}

	m.Satellites = make([]Satellite1004, m.Header.NumberOfSatelliteSignals)
	for i := range m.Satellites {
		s := &m.Satellites[i]
		if s.SatelliteID, err = readUint(r, lenSatelliteID); err != nil {
			return nil, err
		}
		if s.L1CodeIndicator, err = r.ReadBit(); err != nil {
			return nil, err
		}
		if s.L1Pseudorange, err = readUint(r, lenL1Pseudorange1004); err != nil {
			return nil, err
		}
		if s.L1PhaseRangeL1PseudorangeDiff, err = r.ReadInt(lenPhaseRangeDiff); err != nil {
			return nil, err
		}
		if s.L1LockTimeIndicator, err = readUint(r, lenLockTimeIndicator); err != nil {
			return nil, err
		}
		if s.IntegerL1PseudorangeModulusAmbiguity, err = readUint(r, lenIntPseudorangeModulus1004); err != nil {
			return nil, err
		}
		if s.L1CNR, err = readUint(r, lenCNR); err != nil {
			return nil, err
		}
		if s.L2CodeIndicator, err = readUint(r, lenL2CodeIndicator); err != nil {
			return nil, err
		}
		if s.L2L1PseudorangeDiff, err = r.ReadInt(lenL2L1PseudorangeDiff); err != nil {
			return nil, err
		}
		if s.L2PhaseRangeL1PseudorangeDiff, err = r.ReadInt(lenPhaseRangeDiff); err != nil {
			return nil, err
		}
		if s.L2LockTimeIndicator, err = readUint(r, lenLockTimeIndicator); err != nil {
			return nil, err
		}
		if s.L2CNR, err = readUint(r, lenCNR); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Encode writes the message back, including the leading message type.
func (m *Message1004) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1004, lenMessageType); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Header.StationID), lenStationID); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Header.EpochTimeTOW), 30); err != nil {
		return err
	}
	if err := w.WriteBit(m.Header.SynchronousGNSSFlag); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(len(m.Satellites)), lenSatelliteCount); err != nil {
		return err
	}
	if err := w.WriteBit(m.Header.DivergenceFreeSmoothingIndicator); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Header.SmoothingInterval), lenSmoothingInterval); err != nil {
		return err
	}
	for _, s := range m.Satellites {
		if err := w.WriteUint(uint64(s.SatelliteID), lenSatelliteID); err != nil {
			return err
		}
		if err := w.WriteBit(s.L1CodeIndicator); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(s.L1Pseudorange), lenL1Pseudorange1004); err != nil {
			return err
		}
		if err := w.WriteInt(s.L1PhaseRangeL1PseudorangeDiff, lenPhaseRangeDiff); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(s.L1LockTimeIndicator), lenLockTimeIndicator); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(s.IntegerL1PseudorangeModulusAmbiguity), lenIntPseudorangeModulus1004); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(s.L1CNR), lenCNR); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(s.L2CodeIndicator), lenL2CodeIndicator); err != nil {
			return err
		}
		if err := w.WriteInt(s.L2L1PseudorangeDiff, lenL2L1PseudorangeDiff); err != nil {
			return err
		}
		if err := w.WriteInt(s.L2PhaseRangeL1PseudorangeDiff, lenPhaseRangeDiff); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(s.L2LockTimeIndicator), lenLockTimeIndicator); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(s.L2CNR), lenCNR); err != nil {
			return err
		}
	}
	return nil
}

func (m *Message1004) String() string {
	return fmt.Sprintf("type 1004 stationID %d, %d satellites\n", m.Header.StationID, len(m.Satellites))
}

func expectType(r *bitstream.Reader, want uint64) (uint64, error) {
	got, err := r.ReadUint(lenMessageType)
	if err != nil {
		return 0, err
	}
	if got != want {
		return 0, fmt.Errorf("observation: expected message type %d, got %d", want, got)
	}
	return got, nil
}

func readUint(r *bitstream.Reader, width uint) (uint, error) {
	v, err := r.ReadUint(width)
	return uint(v), err
}
