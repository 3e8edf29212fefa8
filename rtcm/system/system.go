// Package system implements message 1029, the UTF-8 system text
// message. Field layout grounded on original_source's system.rs.
package system

import (
	"fmt"
	"unicode/utf8"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

const (
	lenMessageType                = 12
	lenReferenceStationID         = 12
	lenModifiedJulianDayNumber    = 16
	lenSecondsOfDayUTC            = 17
	lenNumberOfCharactersToFollow = 7
	lenNumberOfCodeUnits          = 8
)

// Message1029 carries a UTF-8 text string from the reference station.
type Message1029 struct {
	ReferenceStationID         uint
	ModifiedJulianDayNumber    uint
	SecondsOfDayUTC            uint
	NumberOfCharactersToFollow uint
	NumberOfCodeUnits          uint
	CharacterCodeUnits         string
}

func (m *Message1029) MessageType() uint { return 1029 }

// Decode reads a type 1029 message, including the leading message
// type. It fails with a parse error if the code units do not form
// valid UTF-8, per spec.md §4.4/§7.
func Decode(r *bitstream.Reader) (*Message1029, error) {
	got, err := r.ReadUint(lenMessageType)
	if err != nil {
		return nil, err
	}
	if got != 1029 {
		return nil, fmt.Errorf("system: expected message type 1029, got %d", got)
	}

	m := &Message1029{}
	if m.ReferenceStationID, err = readUint(r, lenReferenceStationID); err != nil {
		return nil, err
	}
	if m.ModifiedJulianDayNumber, err = readUint(r, lenModifiedJulianDayNumber); err != nil {
		return nil, err
	}
	if m.SecondsOfDayUTC, err = readUint(r, lenSecondsOfDayUTC); err != nil {
		return nil, err
	}
	if m.NumberOfCharactersToFollow, err = readUint(r, lenNumberOfCharactersToFollow); err != nil {
		return nil, err
	}
	if m.NumberOfCodeUnits, err = readUint(r, lenNumberOfCodeUnits); err != nil {
		return nil, err
	}

	codeUnits := make([]byte, m.NumberOfCodeUnits)
	for i := range codeUnits {
		v, err := r.ReadUint(8)
		if err != nil {
			return nil, fmt.Errorf("system: reading code unit %d: %w", i, err)
		}
		codeUnits[i] = byte(v)
	}
	if !utf8.Valid(codeUnits) {
		return nil, fmt.Errorf("system: invalid UTF-8 sequence in message 1029")
	}
	m.CharacterCodeUnits = string(codeUnits)

	return m, nil
}

// Encode writes the message back, including the leading message type.
func (m *Message1029) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1029, lenMessageType); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.ReferenceStationID), lenReferenceStationID); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.ModifiedJulianDayNumber), lenModifiedJulianDayNumber); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.SecondsOfDayUTC), lenSecondsOfDayUTC); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.NumberOfCharactersToFollow), lenNumberOfCharactersToFollow); err != nil {
		return err
	}
	codeUnits := []byte(m.CharacterCodeUnits)
	if err := w.WriteUint(uint64(len(codeUnits)), lenNumberOfCodeUnits); err != nil {
		return err
	}
	for _, b := range codeUnits {
		if err := w.WriteUint(uint64(b), 8); err != nil {
			return err
		}
	}
	return nil
}

func (m *Message1029) String() string {
	return fmt.Sprintf("type 1029 stationID %d %q\n", m.ReferenceStationID, m.CharacterCodeUnits)
}

func readUint(r *bitstream.Reader, width uint) (uint, error) {
	v, err := r.ReadUint(width)
	return uint(v), err
}
