package msm

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
	"github.com/goblimey/rtcm3codec/rtcm/utils"
)

// Field widths for the per-cell signal vectors, grounded on
// original_source's msm.rs Msm1SignalData .. Msm7SignalData. MSM1-5
// use the narrower pseudorange/phaserange widths; MSM6/7 widen both.
const (
	lenFinePseudorangeNarrow  = 15
	lenFinePseudorangeWide    = 20
	lenFinePhaseRangeNarrow   = 22
	lenFinePhaseRangeWide     = 24
	lenPhaseRangeLockTimeNarrow = 4
	lenPhaseRangeLockTimeWide   = 10
	lenHalfCycleAmbiguity     = 1
	lenCNRNarrow              = 6
	lenCNRWide                = 10
	lenFinePhaseRangeRate     = 15
)

// Signal holds one (satellite, signal) cell's observation data. Which
// fields are populated depends on the MSM sub-type - see msm.rs for
// the authoritative per-sub-type shape.
type Signal struct {
	SatelliteID int
	SignalID    int

	FinePseudorange      int  // I15 (1-5) or I20 (6-7)
	FinePhaseRange       int  // I22 (1-5) or I24 (6-7)
	PhaseRangeLockTime   uint // U4 (1-5) or U10 (6-7)
	HalfCycleAmbiguity   bool
	CarrierNoiseRatio    uint // U6 (1-5) or U10 (6-7)
	FinePhaseRangeRate   int  // I15, sub-types 5 and 7 only

	hasPseudorange       bool
	hasPhaseRange        bool
	hasLockTime          bool
	hasAmbiguity         bool
	hasCNR               bool
	hasPhaseRangeRate    bool
}

// cellList returns the (satellite, signal) pairs that the header's
// cell mask marks present, in satellite-major, signal-minor order -
// the order MSM signal vectors are packed in.
func cellList(h *Header) []struct{ sat, sig int } {
	cells := make([]struct{ sat, sig int }, 0, h.NumCells())
	for i, satID := range h.Satellites {
		for j, sigID := range h.Signals {
			if i < len(h.Cells) && j < len(h.Cells[i]) && h.Cells[i][j] {
				cells = append(cells, struct{ sat, sig int }{int(satID), int(sigID)})
			}
		}
	}
	return cells
}

// NumCells returns the number of cells marked present in the header's
// cell mask - the length of every signal-data vector.
func (h *Header) NumCells() int {
	count := 0
	for _, row := range h.Cells {
		for _, v := range row {
			if v {
				count++
			}
		}
	}
	return count
}

// DecodeSignals reads the signal-data vectors for the given MSM
// sub-type, returning one Signal per cell the header's cell mask marks
// present.
func DecodeSignals(r *bitstream.Reader, subType int, h *Header) ([]Signal, error) {
	cells := cellList(h)
	n := len(cells)
	signals := make([]Signal, n)
	for i, c := range cells {
		signals[i].SatelliteID = c.sat
		signals[i].SignalID = c.sig
	}

	pseudorangeWidth := uint(lenFinePseudorangeNarrow)
	phaseRangeWidth := uint(lenFinePhaseRangeNarrow)
	lockTimeWidth := uint(lenPhaseRangeLockTimeNarrow)
	cnrWidth := uint(lenCNRNarrow)
	if subType == 6 || subType == 7 {
		pseudorangeWidth = lenFinePseudorangeWide
		phaseRangeWidth = lenFinePhaseRangeWide
		lockTimeWidth = lenPhaseRangeLockTimeWide
		cnrWidth = lenCNRWide
	}

	readPseudoranges := func() error {
		for i := range signals {
			v, err := r.ReadInt(pseudorangeWidth)
			if err != nil {
				return fmt.Errorf("msm: fine_pseudorange[%d]: %w", i, err)
			}
			signals[i].FinePseudorange = int(v)
			signals[i].hasPseudorange = true
		}
		return nil
	}
	readPhaseRanges := func() error {
		for i := range signals {
			v, err := r.ReadInt(phaseRangeWidth)
			if err != nil {
				return fmt.Errorf("msm: fine_phaserange[%d]: %w", i, err)
			}
			signals[i].FinePhaseRange = int(v)
			signals[i].hasPhaseRange = true
		}
		return nil
	}
	readLockTimes := func() error {
		for i := range signals {
			v, err := r.ReadUint(lockTimeWidth)
			if err != nil {
				return fmt.Errorf("msm: lock_time[%d]: %w", i, err)
			}
			signals[i].PhaseRangeLockTime = uint(v)
			signals[i].hasLockTime = true
		}
		return nil
	}
	readAmbiguity := func() error {
		for i := range signals {
			v, err := r.ReadBit()
			if err != nil {
				return fmt.Errorf("msm: half_cycle_ambiguity[%d]: %w", i, err)
			}
			signals[i].HalfCycleAmbiguity = v
			signals[i].hasAmbiguity = true
		}
		return nil
	}
	readCNR := func() error {
		for i := range signals {
			v, err := r.ReadUint(cnrWidth)
			if err != nil {
				return fmt.Errorf("msm: cnr[%d]: %w", i, err)
			}
			signals[i].CarrierNoiseRatio = uint(v)
			signals[i].hasCNR = true
		}
		return nil
	}
	readPhaseRangeRates := func() error {
		for i := range signals {
			v, err := r.ReadInt(lenFinePhaseRangeRate)
			if err != nil {
				return fmt.Errorf("msm: fine_phaserange_rate[%d]: %w", i, err)
			}
			signals[i].FinePhaseRangeRate = int(v)
			signals[i].hasPhaseRangeRate = true
		}
		return nil
	}

	switch subType {
	case 1:
		if err := readPseudoranges(); err != nil {
			return nil, err
		}
	case 2:
		if err := readPhaseRanges(); err != nil {
			return nil, err
		}
		if err := readLockTimes(); err != nil {
			return nil, err
		}
		if err := readAmbiguity(); err != nil {
			return nil, err
		}
	case 3:
		if err := readPseudoranges(); err != nil {
			return nil, err
		}
		if err := readPhaseRanges(); err != nil {
			return nil, err
		}
		if err := readLockTimes(); err != nil {
			return nil, err
		}
		if err := readAmbiguity(); err != nil {
			return nil, err
		}
	case 4, 6:
		if err := readPseudoranges(); err != nil {
			return nil, err
		}
		if err := readPhaseRanges(); err != nil {
			return nil, err
		}
		if err := readLockTimes(); err != nil {
			return nil, err
		}
		if err := readAmbiguity(); err != nil {
			return nil, err
		}
		if err := readCNR(); err != nil {
			return nil, err
		}
	case 5, 7:
		if err := readPseudoranges(); err != nil {
			return nil, err
		}
		if err := readPhaseRanges(); err != nil {
			return nil, err
		}
		if err := readLockTimes(); err != nil {
			return nil, err
		}
		if err := readAmbiguity(); err != nil {
			return nil, err
		}
		if err := readCNR(); err != nil {
			return nil, err
		}
		if err := readPhaseRangeRates(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("msm: unsupported sub-type %d", subType)
	}

	return signals, nil
}

// EncodeSignals writes the signal-data vectors back, in the same
// per-sub-type shape as DecodeSignals.
func EncodeSignals(w *bitstream.Writer, subType int, signals []Signal) error {
	pseudorangeWidth := uint(lenFinePseudorangeNarrow)
	phaseRangeWidth := uint(lenFinePhaseRangeNarrow)
	lockTimeWidth := uint(lenPhaseRangeLockTimeNarrow)
	cnrWidth := uint(lenCNRNarrow)
	if subType == 6 || subType == 7 {
		pseudorangeWidth = lenFinePseudorangeWide
		phaseRangeWidth = lenFinePhaseRangeWide
		lockTimeWidth = lenPhaseRangeLockTimeWide
		cnrWidth = lenCNRWide
	}

	writePseudoranges := func() error {
		for _, s := range signals {
			if err := w.WriteInt(int64(s.FinePseudorange), pseudorangeWidth); err != nil {
				return err
			}
		}
		return nil
	}
	writePhaseRanges := func() error {
		for _, s := range signals {
			if err := w.WriteInt(int64(s.FinePhaseRange), phaseRangeWidth); err != nil {
				return err
			}
		}
		return nil
	}
	writeLockTimes := func() error {
		for _, s := range signals {
			if err := w.WriteUint(uint64(s.PhaseRangeLockTime), lockTimeWidth); err != nil {
				return err
			}
		}
		return nil
	}
	writeAmbiguity := func() error {
		for _, s := range signals {
			if err := w.WriteBit(s.HalfCycleAmbiguity); err != nil {
				return err
			}
		}
		return nil
	}
	writeCNR := func() error {
		for _, s := range signals {
			if err := w.WriteUint(uint64(s.CarrierNoiseRatio), cnrWidth); err != nil {
				return err
			}
		}
		return nil
	}
	writePhaseRangeRates := func() error {
		for _, s := range signals {
			if err := w.WriteInt(int64(s.FinePhaseRangeRate), lenFinePhaseRangeRate); err != nil {
				return err
			}
		}
		return nil
	}

	switch subType {
	case 1:
		return writePseudoranges()
	case 2:
		if err := writePhaseRanges(); err != nil {
			return err
		}
		if err := writeLockTimes(); err != nil {
			return err
		}
		return writeAmbiguity()
	case 3:
		if err := writePseudoranges(); err != nil {
			return err
		}
		if err := writePhaseRanges(); err != nil {
			return err
		}
		if err := writeLockTimes(); err != nil {
			return err
		}
		return writeAmbiguity()
	case 4, 6:
		if err := writePseudoranges(); err != nil {
			return err
		}
		if err := writePhaseRanges(); err != nil {
			return err
		}
		if err := writeLockTimes(); err != nil {
			return err
		}
		if err := writeAmbiguity(); err != nil {
			return err
		}
		return writeCNR()
	case 5, 7:
		if err := writePseudoranges(); err != nil {
			return err
		}
		if err := writePhaseRanges(); err != nil {
			return err
		}
		if err := writeLockTimes(); err != nil {
			return err
		}
		if err := writeAmbiguity(); err != nil {
			return err
		}
		if err := writeCNR(); err != nil {
			return err
		}
		return writePhaseRangeRates()
	default:
		return fmt.Errorf("msm: unsupported sub-type %d", subType)
	}
}

// String renders one signal cell, as "{range (delta), lock, ambiguity, cnr}".
func (s Signal) String() string {
	return fmt.Sprintf("%2d %2d {%d, lock %d, ambiguity %v, cnr %d}",
		s.SatelliteID, s.SignalID, s.FinePseudorange, s.PhaseRangeLockTime,
		s.HalfCycleAmbiguity, s.CarrierNoiseRatio)
}

// RangeInMetres combines the satellite's rough range with this cell's
// fine pseudorange delta and returns the result in metres.
func (s Signal) RangeInMetres(sat Satellite) float64 {
	scaledRange := utils.GetScaledRange(sat.RoughRangeMs, sat.RoughRangeModuloMs, s.FinePseudorange)
	// GetScaledRange packs 29 fractional bits into the result.
	const scaleFactor = 0x20000000
	rangeMillis := float64(scaledRange) / scaleFactor
	return utils.GetPhaseRangeLightMilliseconds(rangeMillis)
}

// PhaseRangeInMetres combines the satellite's rough range with this
// cell's fine carrier phase range delta and returns the result in metres.
func (s Signal) PhaseRangeInMetres(sat Satellite) float64 {
	scaledRange := utils.GetScaledPhaseRange(sat.RoughRangeMs, sat.RoughRangeModuloMs, s.FinePhaseRange)
	rangeMillis := utils.GetPhaseRangeMilliseconds(scaledRange)
	return utils.GetPhaseRangeLightMilliseconds(rangeMillis)
}
