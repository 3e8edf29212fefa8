package observation

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// Header1012 is the fixed-length GLONASS observation header.
type Header1012 struct {
	StationID                        uint
	EpochTimeTk                      uint
	SynchronousGNSSFlag              bool
	NumberOfSatelliteSignals         uint
	DivergenceFreeSmoothingIndicator bool
	SmoothingInterval                uint
}

// Satellite1012 is one GLONASS satellite's L1/L2 observation record.
type Satellite1012 struct {
	SatelliteID                          uint
	L1CodeIndicator                      bool
	SatelliteFrequencyChannelNumber      uint
	L1Pseudorange                        uint
	L1PhaseRangeL1PseudorangeDiff        int64
	L1LockTimeIndicator                  uint
	IntegerL1PseudorangeModulusAmbiguity uint
	L1CNR                                uint
	L2CodeIndicator                      uint
	L2L1PseudorangeDiff                  int64
	L2PhaseRangeL1PseudorangeDiff        int64
	L2LockTimeIndicator                  uint
	L2CNR                                uint
}

// Message1012 is the GLONASS RTK observation message.
type Message1012 struct {
	Header     Header1012
	Satellites []Satellite1012
}

func (m *Message1012) MessageType() uint { return 1012 }

// DecodeMessage1012 reads a type 1012 message, including the leading
// message type.
func DecodeMessage1012(r *bitstream.Reader) (*Message1012, error) {
	if _, err := expectType(r, 1012); err != nil {
		return nil, err
	}
	m := &Message1012{}
	var err error
	if m.Header.StationID, err = readUint(r, lenStationID); err != nil {
		return nil, err
	}
	if m.Header.EpochTimeTk, err = readUint(r, 27); err != nil {
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

	m.Satellites = make([]Satellite1012, m.Header.NumberOfSatelliteSignals)
	for i := range m.Satellites {
		s := &m.Satellites[i]
		if s.SatelliteID, err = readUint(r, lenSatelliteID); err != nil {
			return nil, err
		}
		if s.L1CodeIndicator, err = r.ReadBit(); err != nil {
			return nil, err
		}
		if s.SatelliteFrequencyChannelNumber, err = readUint(r, lenFrequencyChannelNumber); err != nil {
			return nil, err
		}
		if s.L1Pseudorange, err = readUint(r, lenL1Pseudorange1012); err != nil {
			return nil, err
		}
		if s.L1PhaseRangeL1PseudorangeDiff, err = r.ReadInt(lenPhaseRangeDiff); err != nil {
			return nil, err
		}
		if s.L1LockTimeIndicator, err = readUint(r, lenLockTimeIndicator); err != nil {
			return nil, err
		}
		if s.IntegerL1PseudorangeModulusAmbiguity, err = readUint(r, lenIntPseudorangeModulus1012); err != nil {
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
func (m *Message1012) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1012, lenMessageType); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Header.StationID), lenStationID); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Header.EpochTimeTk), 27); err != nil {
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
		if err := w.WriteUint(uint64(s.SatelliteFrequencyChannelNumber), lenFrequencyChannelNumber); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(s.L1Pseudorange), lenL1Pseudorange1012); err != nil {
			return err
		}
		if err := w.WriteInt(s.L1PhaseRangeL1PseudorangeDiff, lenPhaseRangeDiff); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(s.L1LockTimeIndicator), lenLockTimeIndicator); err != nil {
			return err
		}
		if err := w.WriteUint(uint64(s.IntegerL1PseudorangeModulusAmbiguity), lenIntPseudorangeModulus1012); err != nil {
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

func (m *Message1012) String() string {
	return fmt.Sprintf("type 1012 stationID %d, %d satellites\n", m.Header.StationID, len(m.Satellites))
}
