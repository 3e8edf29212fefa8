// Package antenna implements the station/antenna descriptor messages
// 1005, 1006, 1008 and 1033.
//
// Field layout is grounded on message1005/message.go's style
// (the ECEF reference-point fields, decode style) and on
// original_source's antennas.rs for the exact widths, 1006's extra
// antenna-height field, and 1008/1033's counter-prefixed 8-bit code
// unit strings (no UTF-8 validation, unlike message 1029 - see
// rtcm/system).
package antenna

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

const (
	lenMessageType           = 12
	lenStationID             = 12
	lenITRFRealisationYear   = 6
	lenGPSIndicator          = 1
	lenGLONASSIndicator      = 1
	lenGalileoIndicator      = 1
	lenReferenceStation      = 1
	lenECEFCoordinate        = 38
	lenSingleReceiverOsc     = 1
	lenQuarterCycleIndicator = 2
	lenAntennaHeight         = 16
	lenDescriptorCounter     = 8
)

// Message1005 is the Stationary RTK Reference Station ARP message.
type Message1005 struct {
	StationID                     uint
	ITRFRealisationYear           uint
	GPSIndicator                  bool
	GLONASSIndicator              bool
	GalileoIndicator              bool
	ReferenceStationIndicator     bool
	AntennaRefX                   int64
	SingleReceiverOscillator      bool
	AntennaRefY                   int64
	QuarterCycleIndicator         uint
	AntennaRefZ                   int64
}

func (m *Message1005) MessageType() uint { return 1005 }

// DecodeMessage1005 reads a type 1005 message, including the leading
// message type field.
func DecodeMessage1005(r *bitstream.Reader) (*Message1005, error) {
	if err := expectType(r, 1005); err != nil {
		return nil, err
	}
	m := &Message1005{}
	var err error
	if m.StationID, err = readUint(r, lenStationID); err != nil {
		return nil, err
	}
	if m.ITRFRealisationYear, err = readUint(r, lenITRFRealisationYear); err != nil {
		return nil, err
	}
	if m.GPSIndicator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.GLONASSIndicator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.GalileoIndicator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.ReferenceStationIndicator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.AntennaRefX, err = r.ReadInt(lenECEFCoordinate); err != nil {
		return nil, err
	}
	if m.SingleReceiverOscillator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if _, err = r.ReadBit(); err != nil { // reserved
		return nil, err
	}
	if m.AntennaRefY, err = r.ReadInt(lenECEFCoordinate); err != nil {
		return nil, err
	}
	if m.QuarterCycleIndicator, err = readUint(r, lenQuarterCycleIndicator); err != nil {
		return nil, err
	}
	if m.AntennaRefZ, err = r.ReadInt(lenECEFCoordinate); err != nil {
		return nil, err
	}
	return m, nil
}

// Encode writes the message back, including the leading type field.
func (m *Message1005) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1005, lenMessageType); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.StationID), lenStationID); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.ITRFRealisationYear), lenITRFRealisationYear); err != nil {
		return err
	}
	if err := w.WriteBit(m.GPSIndicator); err != nil {
		return err
	}
	if err := w.WriteBit(m.GLONASSIndicator); err != nil {
		return err
	}
	if err := w.WriteBit(m.GalileoIndicator); err != nil {
		return err
	}
	if err := w.WriteBit(m.ReferenceStationIndicator); err != nil {
		return err
	}
	if err := w.WriteInt(m.AntennaRefX, lenECEFCoordinate); err != nil {
		return err
	}
	if err := w.WriteBit(m.SingleReceiverOscillator); err != nil {
		return err
	}
	if err := w.WriteBit(false); err != nil { // reserved
		return err
	}
	if err := w.WriteInt(m.AntennaRefY, lenECEFCoordinate); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.QuarterCycleIndicator), lenQuarterCycleIndicator); err != nil {
		return err
	}
	return w.WriteInt(m.AntennaRefZ, lenECEFCoordinate)
}

func (m *Message1005) String() string {
	return fmt.Sprintf("type 1005 stationID %d ARP (%d, %d, %d) mm\n",
		m.StationID, m.AntennaRefX, m.AntennaRefY, m.AntennaRefZ)
}

// Message1006 is Message1005 plus an antenna height.
type Message1006 struct {
	Message1005
	AntennaHeight uint
}

func (m *Message1006) MessageType() uint { return 1006 }

// DecodeMessage1006 reads a type 1006 message.
func DecodeMessage1006(r *bitstream.Reader) (*Message1006, error) {
	if err := expectType(r, 1006); err != nil {
		return nil, err
	}
	base, err := decodeMessage1005Body(r)
	if err != nil {
		return nil, err
	}
	m := &Message1006{Message1005: *base}
	if m.AntennaHeight, err = readUint(r, lenAntennaHeight); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Message1006) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1006, lenMessageType); err != nil {
		return err
	}
	if err := encodeMessage1005Body(w, &m.Message1005); err != nil {
		return err
	}
	return w.WriteUint(uint64(m.AntennaHeight), lenAntennaHeight)
}

func (m *Message1006) String() string {
	return fmt.Sprintf("type 1006 stationID %d ARP (%d, %d, %d) mm, height %d mm\n",
		m.StationID, m.AntennaRefX, m.AntennaRefY, m.AntennaRefZ, m.AntennaHeight)
}

// decodeMessage1005Body decodes the fields shared with 1005, without
// the leading message type (already consumed by the caller).
func decodeMessage1005Body(r *bitstream.Reader) (*Message1005, error) {
	m := &Message1005{}
	var err error
	if m.StationID, err = readUint(r, lenStationID); err != nil {
		return nil, err
	}
	if m.ITRFRealisationYear, err = readUint(r, lenITRFRealisationYear); err != nil {
		return nil, err
	}
	if m.GPSIndicator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.GLONASSIndicator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.GalileoIndicator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.ReferenceStationIndicator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.AntennaRefX, err = r.ReadInt(lenECEFCoordinate); err != nil {
		return nil, err
	}
	if m.SingleReceiverOscillator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if _, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.AntennaRefY, err = r.ReadInt(lenECEFCoordinate); err != nil {
		return nil, err
	}
	if m.QuarterCycleIndicator, err = readUint(r, lenQuarterCycleIndicator); err != nil {
		return nil, err
	}
	if m.AntennaRefZ, err = r.ReadInt(lenECEFCoordinate); err != nil {
		return nil, err
	}
	return m, nil
}

func encodeMessage1005Body(w *bitstream.Writer, m *Message1005) error {
	if err := w.WriteUint(uint64(m.StationID), lenStationID); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.ITRFRealisationYear), lenITRFRealisationYear); err != nil {
		return err
	}
	if err := w.WriteBit(m.GPSIndicator); err != nil {
		return err
	}
	if err := w.WriteBit(m.GLONASSIndicator); err != nil {
		return err
	}
	if err := w.WriteBit(m.GalileoIndicator); err != nil {
		return err
	}
	if err := w.WriteBit(m.ReferenceStationIndicator); err != nil {
		return err
	}
	if err := w.WriteInt(m.AntennaRefX, lenECEFCoordinate); err != nil {
		return err
	}
	if err := w.WriteBit(m.SingleReceiverOscillator); err != nil {
		return err
	}
	if err := w.WriteBit(false); err != nil {
		return err
	}
	if err := w.WriteInt(m.AntennaRefY, lenECEFCoordinate); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.QuarterCycleIndicator), lenQuarterCycleIndicator); err != nil {
		return err
	}
	return w.WriteInt(m.AntennaRefZ, lenECEFCoordinate)
}

func expectType(r *bitstream.Reader, want uint64) error {
	got, err := r.ReadUint(lenMessageType)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("antenna: expected message type %d, got %d", want, got)
	}
	return nil
}

func readUint(r *bitstream.Reader, width uint) (uint, error) {
	v, err := r.ReadUint(width)
	return uint(v), err
}

func readString(r *bitstream.Reader, length uint) (string, error) {
	codeUnits := make([]byte, length)
	for i := range codeUnits {
		v, err := r.ReadUint(8)
		if err != nil {
			return "", fmt.Errorf("antenna: reading descriptor byte %d: %w", i, err)
		}
		codeUnits[i] = byte(v)
	}
	return string(codeUnits), nil
}

func writeString(w *bitstream.Writer, s string) error {
	for _, b := range []byte(s) {
		if err := w.WriteUint(uint64(b), 8); err != nil {
			return err
		}
	}
	return nil
}
