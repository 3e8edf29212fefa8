package antenna

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// Message1008 is the Antenna Descriptor & Serial Number message.
type Message1008 struct {
	StationID             uint
	AntennaDescriptor      string
	AntennaSetupID         uint
	AntennaSerialNumber    string
}

func (m *Message1008) MessageType() uint { return 1008 }

// DecodeMessage1008 reads a type 1008 message.
func DecodeMessage1008(r *bitstream.Reader) (*Message1008, error) {
	if err := expectType(r, 1008); err != nil {
		return nil, err
	}
	m := &Message1008{}
	var err error
	if m.StationID, err = readUint(r, lenStationID); err != nil {
		return nil, err
	}
	descCount, err := readUint(r, lenDescriptorCounter)
	if err != nil {
		return nil, err
	}
	if m.AntennaDescriptor, err = readString(r, descCount); err != nil {
		return nil, err
	}
	if m.AntennaSetupID, err = readUint(r, 8); err != nil {
		return nil, err
	}
	serialCount, err := readUint(r, lenDescriptorCounter)
	if err != nil {
		return nil, err
	}
	if m.AntennaSerialNumber, err = readString(r, serialCount); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Message1008) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1008, lenMessageType); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.StationID), lenStationID); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(len(m.AntennaDescriptor)), lenDescriptorCounter); err != nil {
		return err
	}
	if err := writeString(w, m.AntennaDescriptor); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.AntennaSetupID), 8); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(len(m.AntennaSerialNumber)), lenDescriptorCounter); err != nil {
		return err
	}
	return writeString(w, m.AntennaSerialNumber)
}

func (m *Message1008) String() string {
	return fmt.Sprintf("type 1008 stationID %d antenna %q serial %q\n",
		m.StationID, m.AntennaDescriptor, m.AntennaSerialNumber)
}

// Message1033 is the Receiver & Antenna Descriptors message.
type Message1033 struct {
	StationID                  uint
	AntennaDescriptor          string
	AntennaSetupID             uint
	AntennaSerialNumber        string
	ReceiverTypeDescriptor     string
	ReceiverFirmwareVersion    string
	ReceiverSerialNumber       string
}

func (m *Message1033) MessageType() uint { return 1033 }

// DecodeMessage1033 reads a type 1033 message.
func DecodeMessage1033(r *bitstream.Reader) (*Message1033, error) {
	if err := expectType(r, 1033); err != nil {
		return nil, err
	}
	m := &Message1033{}
	var err error
	if m.StationID, err = readUint(r, lenStationID); err != nil {
		return nil, err
	}

	readCounted := func() (string, error) {
		n, err := readUint(r, lenDescriptorCounter)
		if err != nil {
			return "", err
		}
		return readString(r, n)
	}

	if m.AntennaDescriptor, err = readCounted(); err != nil {
		return nil, err
	}
	if m.AntennaSetupID, err = readUint(r, 8); err != nil {
		return nil, err
	}
	if m.AntennaSerialNumber, err = readCounted(); err != nil {
		return nil, err
	}
	if m.ReceiverTypeDescriptor, err = readCounted(); err != nil {
		return nil, err
	}
	if m.ReceiverFirmwareVersion, err = readCounted(); err != nil {
		return nil, err
	}
	if m.ReceiverSerialNumber, err = readCounted(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Message1033) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1033, lenMessageType); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.StationID), lenStationID); err != nil {
		return err
	}

	writeCounted := func(s string) error {
		if err := w.WriteUint(uint64(len(s)), lenDescriptorCounter); err != nil {
			return err
		}
		return writeString(w, s)
	}

	if err := writeCounted(m.AntennaDescriptor); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.AntennaSetupID), 8); err != nil {
		return err
	}
	if err := writeCounted(m.AntennaSerialNumber); err != nil {
		return err
	}
	if err := writeCounted(m.ReceiverTypeDescriptor); err != nil {
		return err
	}
	if err := writeCounted(m.ReceiverFirmwareVersion); err != nil {
		return err
	}
	return writeCounted(m.ReceiverSerialNumber)
}

func (m *Message1033) String() string {
	return fmt.Sprintf("type 1033 stationID %d receiver %q firmware %q\n",
		m.StationID, m.ReceiverTypeDescriptor, m.ReceiverFirmwareVersion)
}
