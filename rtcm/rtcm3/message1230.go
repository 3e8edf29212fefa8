package rtcm3

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// Message1230 carries the GLONASS L1/L2 C/A and P code-phase bias
// corrections for one reference station. Field layout grounded
// verbatim on original_source's observations.rs Msg1230: the four bias
// fields are present unconditionally, regardless of which bits
// GLOFDMASignalsMask sets.
//
// spec.md §9 notes that two source branches disagree about whether the
// bias fields are conditional on GLOFDMASignalsMask; this package
// follows the branch the fixture-tested original_source struct
// actually implements (unconditional), treating the mask as
// descriptive metadata rather than a presence flag. A fixture
// exercising a partial mask such as 0b1010 still decodes and
// round-trips all four fields.
type Message1230 struct {
	ReferenceStationID  uint
	CodePhaseBiasIndicator bool
	Reserved            uint
	GLOFDMASignalsMask  uint
	L1CACodePhaseBias   int64
	L1PCodePhaseBias    int64
	L2CACodePhaseBias   int64
	L2PCodePhaseBias    int64
}

func (m *Message1230) MessageType() uint { return 1230 }

func decodeMessage1230(r *bitstream.Reader) (*Message1230, error) {
	if _, err := r.ReadUint(12); err != nil {
		return nil, err
	}
	m := &Message1230{}
	var err error
	refUint, err := r.ReadUint(12)
	if err != nil {
		return nil, err
	}
	m.ReferenceStationID = uint(refUint)
	if m.CodePhaseBiasIndicator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	reserved, err := r.ReadUint(3)
	if err != nil {
		return nil, err
	}
	m.Reserved = uint(reserved)
	mask, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}
	m.GLOFDMASignalsMask = uint(mask)
	if m.L1CACodePhaseBias, err = r.ReadInt(16); err != nil {
		return nil, err
	}
	if m.L1PCodePhaseBias, err = r.ReadInt(16); err != nil {
		return nil, err
	}
	if m.L2CACodePhaseBias, err = r.ReadInt(16); err != nil {
		return nil, err
	}
	if m.L2PCodePhaseBias, err = r.ReadInt(16); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Message1230) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1230, 12); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.ReferenceStationID), 12); err != nil {
		return err
	}
	if err := w.WriteBit(m.CodePhaseBiasIndicator); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Reserved), 3); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.GLOFDMASignalsMask), 4); err != nil {
		return err
	}
	if err := w.WriteInt(m.L1CACodePhaseBias, 16); err != nil {
		return err
	}
	if err := w.WriteInt(m.L1PCodePhaseBias, 16); err != nil {
		return err
	}
	if err := w.WriteInt(m.L2CACodePhaseBias, 16); err != nil {
		return err
	}
	return w.WriteInt(m.L2PCodePhaseBias, 16)
}

func (m *Message1230) String() string {
	return fmt.Sprintf("type 1230, station %d, GLONASS FDMA signals mask %04b\n",
		m.ReferenceStationID, m.GLOFDMASignalsMask)
}
