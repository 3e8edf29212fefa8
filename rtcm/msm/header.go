// Package msm implements the generic Multiple Signal Message (MSM)
// header, satellite-data and signal-data layouts shared by MSM1
// through MSM7 across all six constellations (GPS, GLONASS, Galileo,
// SBAS, QZSS, BeiDou).
//
// It replaces four parallel generations of the same logic, one per
// sub-type family, which each hand-wrote a near-identical header plus
// one bespoke satellite/signal pair, with one parameterized
// implementation selected by sub-type number. The header field layout,
// the satellite/signal mask bit-numbering and the cell-mask
// construction are kept from rtcm/header/header.go; the signal-data
// vector shapes per sub-type are grounded on
// original_source's msm.rs (Msm1SignalData .. Msm7SignalData).
package msm

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// Field widths, in bits. Kept identical to rtcm/header/header.go so the
// wire layout this package reads/writes is the same one that package
// already validated.
const (
	lenMessageType              = 12
	lenStationID                = 12
	lenEpochTime                = 30
	lenMultipleMessageFlag      = 1
	lenIssueOfDataStation       = 3
	lenSessionTransmissionTime  = 7
	lenClockSteeringIndicator   = 2
	lenExternalClockIndicator   = 2
	lenDivergenceFreeSmoothing  = 1
	lenGNSSSmoothingInterval    = 3
	lenSatelliteMask            = 64
	lenSignalMask               = 32
	maxLengthOfCellMask         = 64
)

// Constellation names, keyed by the base message type of each MSM1
// group (1071 GPS, 1081 GLONASS, 1091 Galileo, 1101 SBAS, 1111 QZSS,
// 1121 BeiDou), matching the RTCM 3 type-id ranges in spec.md §3/§4.4.
const (
	GPS     = "GPS"
	GLONASS = "GLONASS"
	Galileo = "Galileo"
	SBAS    = "SBAS"
	QZSS    = "QZSS"
	BeiDou  = "BeiDou"
)

// TypeInfo returns the constellation and MSM sub-type (1..7) for a
// 12-bit RTCM message type id, or ok=false if it is not an MSM type.
func TypeInfo(messageType uint) (constellation string, subType int, ok bool) {
	base := map[uint]string{
		1071: GPS, 1081: GLONASS, 1091: Galileo, 1101: SBAS, 1111: QZSS, 1121: BeiDou,
	}
	for start, name := range base {
		if messageType >= start && messageType <= start+6 {
			return name, int(messageType-start) + 1, true
		}
	}
	return "", 0, false
}

// MessageTypeFor returns the 12-bit type id for a constellation and
// sub-type (1..7), the inverse of TypeInfo.
func MessageTypeFor(constellation string, subType int) (uint, error) {
	starts := map[string]uint{GPS: 1071, GLONASS: 1081, Galileo: 1091, SBAS: 1101, QZSS: 1111, BeiDou: 1121}
	start, ok := starts[constellation]
	if !ok {
		return 0, fmt.Errorf("msm: unknown constellation %q", constellation)
	}
	if subType < 1 || subType > 7 {
		return 0, fmt.Errorf("msm: sub-type must be 1..7, got %d", subType)
	}
	return start + uint(subType-1), nil
}

// Header is the fixed-plus-variable-length MSM header common to every
// MSM sub-type and constellation.
type Header struct {
	MessageType             uint
	Constellation           string
	SubType                 int
	StationID               uint
	EpochTime               uint
	MultipleMessage         bool
	IssueOfDataStation      uint
	SessionTransmissionTime uint
	ClockSteeringIndicator  uint
	ExternalClockIndicator  uint
	DivergenceFreeSmoothing bool
	SmoothingInterval       uint
	SatelliteMask           uint64
	SignalMask              uint32
	CellMask                uint64

	// Satellites and Signals are the satellite/signal numbers (1-based)
	// whose mask bit was set, derived from SatelliteMask/SignalMask.
	Satellites []uint
	Signals    []uint
	// Cells[i][j] is true if satellite i's j'th observed signal carries data.
	Cells [][]bool
}

// DecodeHeader reads an MSM header, including the leading 12-bit
// message type, from r. The reader must be positioned at the start of
// the message payload.
func DecodeHeader(r *bitstream.Reader) (*Header, error) {
	messageType, err := r.ReadUint(lenMessageType)
	if err != nil {
		return nil, fmt.Errorf("msm: reading message type: %w", err)
	}
	constellation, subType, ok := TypeInfo(uint(messageType))
	if !ok {
		return nil, fmt.Errorf("msm: message type %d is not an MSM type", messageType)
	}

	h := &Header{MessageType: uint(messageType), Constellation: constellation, SubType: subType}

	if h.StationID, err = readUint(r, lenStationID); err != nil {
		return nil, err
	}
	if h.EpochTime, err = readUint(r, lenEpochTime); err != nil {
		return nil, err
	}
	mm, err := r.ReadBit()
	if err != nil {
		return nil, err
	}
	h.MultipleMessage = mm
	if h.IssueOfDataStation, err = readUint(r, lenIssueOfDataStation); err != nil {
		return nil, err
	}
	if h.SessionTransmissionTime, err = readUint(r, lenSessionTransmissionTime); err != nil {
		return nil, err
	}
	if h.ClockSteeringIndicator, err = readUint(r, lenClockSteeringIndicator); err != nil {
		return nil, err
	}
	if h.ExternalClockIndicator, err = readUint(r, lenExternalClockIndicator); err != nil {
		return nil, err
	}
	dfs, err := r.ReadBit()
	if err != nil {
		return nil, err
	}
	h.DivergenceFreeSmoothing = dfs
	if h.SmoothingInterval, err = readUint(r, lenGNSSSmoothingInterval); err != nil {
		return nil, err
	}

	satMask, err := r.ReadUint(lenSatelliteMask)
	if err != nil {
		return nil, err
	}
	h.SatelliteMask = satMask
	h.Satellites = bitsToIndices(satMask, lenSatelliteMask)

	sigMask, err := r.ReadUint(lenSignalMask)
	if err != nil {
		return nil, err
	}
	h.SignalMask = uint32(sigMask)
	h.Signals = bitsToIndices(sigMask, lenSignalMask)

	cellMaskWidth := cellMaskBits(len(h.Satellites), len(h.Signals))
	if cellMaskWidth > maxLengthOfCellMask {
		return nil, fmt.Errorf("msm: cell mask is %d bits, expected <= %d", cellMaskWidth, maxLengthOfCellMask)
	}
	cellMask, err := r.ReadUint(cellMaskWidth)
	if err != nil {
		return nil, err
	}
	h.CellMask = cellMask
	h.Cells = cellsFromMask(cellMask, len(h.Satellites), len(h.Signals))

	return h, nil
}

// Encode writes the header back to w, including the leading message
// type. The masks and derived slices must be consistent (Satellites,
// Signals and Cells are not re-derived here; callers construct a
// Header by Decode or by setting SatelliteMask/SignalMask/CellMask
// directly and calling Normalize first).
func (h *Header) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(uint64(h.MessageType), lenMessageType); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(h.StationID), lenStationID); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(h.EpochTime), lenEpochTime); err != nil {
		return err
	}
	if err := w.WriteBit(h.MultipleMessage); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(h.IssueOfDataStation), lenIssueOfDataStation); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(h.SessionTransmissionTime), lenSessionTransmissionTime); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(h.ClockSteeringIndicator), lenClockSteeringIndicator); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(h.ExternalClockIndicator), lenExternalClockIndicator); err != nil {
		return err
	}
	if err := w.WriteBit(h.DivergenceFreeSmoothing); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(h.SmoothingInterval), lenGNSSSmoothingInterval); err != nil {
		return err
	}
	if err := w.WriteUint(h.SatelliteMask, lenSatelliteMask); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(h.SignalMask), lenSignalMask); err != nil {
		return err
	}
	cellMaskWidth := cellMaskBits(len(h.Satellites), len(h.Signals))
	return w.WriteUint(h.CellMask, cellMaskWidth)
}

// Normalize recomputes Satellites, Signals and Cells from
// SatelliteMask, SignalMask and CellMask. Call this after constructing
// a Header field-by-field (rather than via Decode) and before Encode.
func (h *Header) Normalize() {
	h.Satellites = bitsToIndices(h.SatelliteMask, lenSatelliteMask)
	h.Signals = bitsToIndices(uint64(h.SignalMask), lenSignalMask)
	h.Cells = cellsFromMask(h.CellMask, len(h.Satellites), len(h.Signals))
}

func readUint(r *bitstream.Reader, width uint) (uint, error) {
	v, err := r.ReadUint(width)
	return uint(v), err
}

// cellMaskBits is min(nsat*nsig, 64), per spec.md §4.4 and msm.rs's
// read_cell_mask/write_cell_mask.
func cellMaskBits(nsat, nsig int) uint {
	n := nsat * nsig
	if n > maxLengthOfCellMask {
		return maxLengthOfCellMask
	}
	return uint(n)
}

// bitsToIndices returns the 1-based positions of set bits in mask,
// treating bit (width-1) as position 1 and bit 0 as position width -
// the same numbering as header.go's getSatellites/getSignals.
func bitsToIndices(mask uint64, width int) []uint {
	indices := make([]uint, 0)
	for n := 1; n <= width; n++ {
		bitPosition := width - n
		if (mask>>uint(bitPosition))&1 == 1 {
			indices = append(indices, uint(n))
		}
	}
	return indices
}

// cellsFromMask expands a cell mask into a [satellite][signal]bool
// grid, row-major, matching header.go's getCells.
func cellsFromMask(mask uint64, numSatellites, numSignals int) [][]bool {
	numCells := numSatellites * numSignals
	cellNumber := 0
	cells := make([][]bool, numSatellites)
	for i := 0; i < numSatellites; i++ {
		row := make([]bool, numSignals)
		for j := 0; j < numSignals; j++ {
			cellNumber++
			bitPosition := numCells - cellNumber
			row[j] = (mask>>uint(bitPosition))&1 == 1
		}
		cells[i] = row
	}
	return cells
}

// String renders the header the way header.go's String method does.
func (h *Header) String() string {
	mode := "single"
	if h.MultipleMessage {
		mode = "multiple"
	}
	return fmt.Sprintf(
		"type %d %s MSM%d\nstationID %d, epoch time %d, %s message, IODS %d\n%d satellites, %d signal types\n",
		h.MessageType, h.Constellation, h.SubType, h.StationID, h.EpochTime, mode,
		h.IssueOfDataStation, len(h.Satellites), len(h.Signals))
}
