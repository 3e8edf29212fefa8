// Package ephemeris implements the broadcast ephemeris messages 1019
// (GPS), 1020 (GLONASS), 1042 (BeiDou) and 1045/1046 (Galileo).
//
// Field names, order and bit widths are grounded verbatim on
// original_source's msg_test/ephemeris.rs fixture assertions, which
// exercise the exact layout of each message type against a captured
// frame. 1020 is the sign-magnitude-heavy case spec.md §9 calls
// out: GLONASS encodes many of the same physical quantities that GPS
// (1019) encodes as two's complement (I<W>) using sign-magnitude
// (IS<W>) instead, at matching or related widths, and this package
// keeps the two representations distinct rather than unifying them.
package ephemeris

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

const lenMessageType = 12

// Message1019 is the GPS broadcast ephemeris message.
type Message1019 struct {
	SatelliteID  uint
	WeekNumber   uint
	SVAccuracy   uint
	CodeOnL2     uint
	IDOT         int64
	IODE         uint
	Toc          uint
	Af2          int64
	Af1          int64
	Af0          int64
	IODC         uint
	Crs          int64
	DeltaN       int64
	M0           int64
	Cuc          int64
	E            uint
	Cus          int64
	SqrtA        uint
	Toe          uint
	Cic          int64
	Omega0       int64
	Cis          int64
	I0           int64
	Crc          int64
	Omega        int64
	OmegaDot     int64
	Tgd          int64
	SVHealth     uint
	L2PDataFlag  bool
	FitInterval  bool
}

func (m *Message1019) MessageType() uint { return 1019 }

// DecodeMessage1019 reads a type 1019 message.
func DecodeMessage1019(r *bitstream.Reader) (*Message1019, error) {
	if err := expectType(r, 1019); err != nil {
		return nil, err
	}
	m := &Message1019{}
	var err error
	fields := []struct {
		name  string
		width uint
		kind  byte // 'u' unsigned, 'i' two's complement, 'b' bit
		dst   interface{}
	}{
		{"satellite_id", 6, 'u', &m.SatelliteID},
		{"week_number", 10, 'u', &m.WeekNumber},
		{"sv_accuracy", 4, 'u', &m.SVAccuracy},
		{"code_on_l2", 2, 'u', &m.CodeOnL2},
		{"idot", 14, 'i', &m.IDOT},
		{"iode", 8, 'u', &m.IODE},
		{"t_oc", 16, 'u', &m.Toc},
		{"a_f2", 8, 'i', &m.Af2},
		{"a_f1", 16, 'i', &m.Af1},
		{"a_f0", 22, 'i', &m.Af0},
		{"iodc", 10, 'u', &m.IODC},
		{"c_rs", 16, 'i', &m.Crs},
		{"delta_n", 16, 'i', &m.DeltaN},
		{"m_0", 32, 'i', &m.M0},
		{"c_uc", 16, 'i', &m.Cuc},
		{"e", 32, 'u', &m.E},
		{"c_us", 16, 'i', &m.Cus},
		{"a_1_2", 32, 'u', &m.SqrtA},
		{"t_oe", 16, 'u', &m.Toe},
		{"c_ic", 16, 'i', &m.Cic},
		{"omega_0", 32, 'i', &m.Omega0},
		{"c_is", 16, 'i', &m.Cis},
		{"i_0", 32, 'i', &m.I0},
		{"c_rc", 16, 'i', &m.Crc},
		{"omega", 32, 'i', &m.Omega},
		{"omegadot", 24, 'i', &m.OmegaDot},
		{"t_gd", 8, 'i', &m.Tgd},
		{"sv_health", 6, 'u', &m.SVHealth},
	}
	for _, f := range fields {
		if err = readInto(r, f.width, f.kind, f.dst); err != nil {
			return nil, fmt.Errorf("ephemeris: 1019 %s: %w", f.name, err)
		}
	}
	if m.L2PDataFlag, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.FitInterval, err = r.ReadBit(); err != nil {
		return nil, err
	}
	return m, nil
}

// Encode writes the message back, including the leading message type.
func (m *Message1019) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1019, lenMessageType); err != nil {
		return err
	}
	fields := []struct {
		width uint
		kind  byte
		src   int64
	}{
		{6, 'u', int64(m.SatelliteID)},
		{10, 'u', int64(m.WeekNumber)},
		{4, 'u', int64(m.SVAccuracy)},
		{2, 'u', int64(m.CodeOnL2)},
		{14, 'i', m.IDOT},
		{8, 'u', int64(m.IODE)},
		{16, 'u', int64(m.Toc)},
		{8, 'i', m.Af2},
		{16, 'i', m.Af1},
		{22, 'i', m.Af0},
		{10, 'u', int64(m.IODC)},
		{16, 'i', m.Crs},
		{16, 'i', m.DeltaN},
		{32, 'i', m.M0},
		{16, 'i', m.Cuc},
		{32, 'u', int64(m.E)},
		{16, 'i', m.Cus},
		{32, 'u', int64(m.SqrtA)},
		{16, 'u', int64(m.Toe)},
		{16, 'i', m.Cic},
		{32, 'i', m.Omega0},
		{16, 'i', m.Cis},
		{32, 'i', m.I0},
		{16, 'i', m.Crc},
		{32, 'i', m.Omega},
		{24, 'i', m.OmegaDot},
		{8, 'i', m.Tgd},
		{6, 'u', int64(m.SVHealth)},
	}
	for _, f := range fields {
		if err := writeFrom(w, f.width, f.kind, f.src); err != nil {
			return err
		}
	}
	if err := w.WriteBit(m.L2PDataFlag); err != nil {
		return err
	}
	return w.WriteBit(m.FitInterval)
}

func (m *Message1019) String() string {
	return fmt.Sprintf("type 1019 GPS ephemeris sv %d, week %d\n", m.SatelliteID, m.WeekNumber)
}

func expectType(r *bitstream.Reader, want uint64) error {
	got, err := r.ReadUint(lenMessageType)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("expected message type %d, got %d", want, got)
	}
	return nil
}

// readInto reads a field of the given width/kind into dst, which must
// be *uint or *int64.
func readInto(r *bitstream.Reader, width uint, kind byte, dst interface{}) error {
	switch kind {
	case 'u':
		v, err := r.ReadUint(width)
		if err != nil {
			return err
		}
		*dst.(*uint) = uint(v)
	case 'i':
		v, err := r.ReadInt(width)
		if err != nil {
			return err
		}
		*dst.(*int64) = v
	case 's':
		v, err := r.ReadSignMagnitude(width)
		if err != nil {
			return err
		}
		*dst.(*int64) = v
	default:
		return fmt.Errorf("ephemeris: unknown field kind %q", kind)
	}
	return nil
}

func writeFrom(w *bitstream.Writer, width uint, kind byte, src int64) error {
	switch kind {
	case 'u':
		return w.WriteUint(uint64(src), width)
	case 'i':
		return w.WriteInt(src, width)
	case 's':
		return w.WriteSignMagnitude(src, width)
	default:
		return fmt.Errorf("ephemeris: unknown field kind %q", kind)
	}
}
