package ephemeris

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// Message1020 is the GLONASS broadcast ephemeris message. Most of its
// orbital-element fields are sign-magnitude (IS<W>), unlike 1019's
// two's complement fields at similar widths.
type Message1020 struct {
	SatelliteID               uint
	SatelliteFreqChannelNr    uint
	AlmanacHealth             bool
	AlmanacHealthAvailIndi    bool
	P1                        uint
	Tk                        uint
	MsbOfBnWord               bool
	P2                        bool
	Tb                        uint
	XnTbFirst                 int64
	XnTb                      int64
	XnTbSecond                int64
	YnTbFirst                 int64
	YnTb                      int64
	YnTbSecond                int64
	ZnTbFirst                 int64
	ZnTb                      int64
	ZnTbSecond                int64
	P3                        bool
	GammaNTb                  int64
	Mp                        uint
	MLnThird                  bool
	TauNTb                    int64
	MDeltaTauN                int64
	En                        uint
	Mp4                       bool
	Mft                       uint
	Mnt                       uint
	Mm                        uint
	AdditionalDataAvail       bool
	Na                        uint
	TauC                      int64
	Mn4                       uint
	TauGps                    int64
	MLnFifth                  bool
	Reserved                  uint
}

func (m *Message1020) MessageType() uint { return 1020 }

// DecodeMessage1020 reads a type 1020 message.
func DecodeMessage1020(r *bitstream.Reader) (*Message1020, error) {
	if err := expectType(r, 1020); err != nil {
		return nil, err
	}
	m := &Message1020{}
	var err error

	if m.SatelliteID, err = ru(r, 6); err != nil {
		return nil, err
	}
	if m.SatelliteFreqChannelNr, err = ru(r, 5); err != nil {
		return nil, err
	}
	if m.AlmanacHealth, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.AlmanacHealthAvailIndi, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.P1, err = ru(r, 2); err != nil {
		return nil, err
	}
	if m.Tk, err = ru(r, 12); err != nil {
		return nil, err
	}
	if m.MsbOfBnWord, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.P2, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.Tb, err = ru(r, 7); err != nil {
		return nil, err
	}
	if m.XnTbFirst, err = r.ReadSignMagnitude(24); err != nil {
		return nil, err
	}
	if m.XnTb, err = r.ReadSignMagnitude(27); err != nil {
		return nil, err
	}
	if m.XnTbSecond, err = r.ReadSignMagnitude(5); err != nil {
		return nil, err
	}
	if m.YnTbFirst, err = r.ReadSignMagnitude(24); err != nil {
		return nil, err
	}
	if m.YnTb, err = r.ReadSignMagnitude(27); err != nil {
		return nil, err
	}
	if m.YnTbSecond, err = r.ReadSignMagnitude(5); err != nil {
		return nil, err
	}
	if m.ZnTbFirst, err = r.ReadSignMagnitude(24); err != nil {
		return nil, err
	}
	if m.ZnTb, err = r.ReadSignMagnitude(27); err != nil {
		return nil, err
	}
	if m.ZnTbSecond, err = r.ReadSignMagnitude(5); err != nil {
		return nil, err
	}
	if m.P3, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.GammaNTb, err = r.ReadSignMagnitude(11); err != nil {
		return nil, err
	}
	if m.Mp, err = ru(r, 2); err != nil {
		return nil, err
	}
	if m.MLnThird, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.TauNTb, err = r.ReadSignMagnitude(22); err != nil {
		return nil, err
	}
	if m.MDeltaTauN, err = r.ReadSignMagnitude(5); err != nil {
		return nil, err
	}
	if m.En, err = ru(r, 5); err != nil {
		return nil, err
	}
	if m.Mp4, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.Mft, err = ru(r, 4); err != nil {
		return nil, err
	}
	if m.Mnt, err = ru(r, 11); err != nil {
		return nil, err
	}
	if m.Mm, err = ru(r, 2); err != nil {
		return nil, err
	}
	if m.AdditionalDataAvail, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.Na, err = ru(r, 11); err != nil {
		return nil, err
	}
	if m.TauC, err = r.ReadSignMagnitude(32); err != nil {
		return nil, err
	}
	if m.Mn4, err = ru(r, 5); err != nil {
		return nil, err
	}
	if m.TauGps, err = r.ReadSignMagnitude(22); err != nil {
		return nil, err
	}
	if m.MLnFifth, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.Reserved, err = ru(r, 7); err != nil {
		return nil, err
	}
	return m, nil
}

// Encode writes the message back, including the leading message type.
func (m *Message1020) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1020, lenMessageType); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.SatelliteID), 6); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.SatelliteFreqChannelNr), 5); err != nil {
		return err
	}
	if err := w.WriteBit(m.AlmanacHealth); err != nil {
		return err
	}
	if err := w.WriteBit(m.AlmanacHealthAvailIndi); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.P1), 2); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Tk), 12); err != nil {
		return err
	}
	if err := w.WriteBit(m.MsbOfBnWord); err != nil {
		return err
	}
	if err := w.WriteBit(m.P2); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Tb), 7); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.XnTbFirst, 24); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.XnTb, 27); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.XnTbSecond, 5); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.YnTbFirst, 24); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.YnTb, 27); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.YnTbSecond, 5); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.ZnTbFirst, 24); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.ZnTb, 27); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.ZnTbSecond, 5); err != nil {
		return err
	}
	if err := w.WriteBit(m.P3); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.GammaNTb, 11); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Mp), 2); err != nil {
		return err
	}
	if err := w.WriteBit(m.MLnThird); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.TauNTb, 22); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.MDeltaTauN, 5); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.En), 5); err != nil {
		return err
	}
	if err := w.WriteBit(m.Mp4); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Mft), 4); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Mnt), 11); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Mm), 2); err != nil {
		return err
	}
	if err := w.WriteBit(m.AdditionalDataAvail); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Na), 11); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.TauC, 32); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.Mn4), 5); err != nil {
		return err
	}
	if err := w.WriteSignMagnitude(m.TauGps, 22); err != nil {
		return err
	}
	if err := w.WriteBit(m.MLnFifth); err != nil {
		return err
	}
	return w.WriteUint(uint64(m.Reserved), 7)
}

func (m *Message1020) String() string {
	return fmt.Sprintf("type 1020 GLONASS ephemeris sv %d, freq channel %d\n", m.SatelliteID, m.SatelliteFreqChannelNr)
}

func ru(r *bitstream.Reader, width uint) (uint, error) {
	v, err := r.ReadUint(width)
	return uint(v), err
}
