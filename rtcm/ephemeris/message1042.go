package ephemeris

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// Message1042 is the BeiDou broadcast ephemeris message.
type Message1042 struct {
	SatelliteID uint
	WeekNumber  uint
	SVURAI      uint
	IDOT        int64
	AODE        uint
	Toc         uint
	A2          int64
	A1          int64
	A0          int64
	AODC        uint
	Crs         int64
	DeltaN      int64
	M0          int64
	Cuc         int64
	E           uint
	Cus         int64
	SqrtA       uint
	Toe         uint
	Cic         int64
	Omega0      int64
	Cis         int64
	I0          int64
	Crc         int64
	Omega       int64
	OmegaDot    int64
	Tgd1        int64
	Tgd2        int64
	SVHealth    bool
}

func (m *Message1042) MessageType() uint { return 1042 }

// DecodeMessage1042 reads a type 1042 message.
func DecodeMessage1042(r *bitstream.Reader) (*Message1042, error) {
	if err := expectType(r, 1042); err != nil {
		return nil, err
	}
	m := &Message1042{}
	var err error
	fields := []struct {
		name  string
		width uint
		kind  byte
		dst   interface{}
	}{
		{"satellite_id", 6, 'u', &m.SatelliteID},
		{"week_number", 13, 'u', &m.WeekNumber},
		{"sv_urai", 4, 'u', &m.SVURAI},
		{"idot", 14, 'i', &m.IDOT},
		{"aode", 5, 'u', &m.AODE},
		{"t_oc", 17, 'u', &m.Toc},
		{"a_2", 11, 'i', &m.A2},
		{"a_1", 22, 'i', &m.A1},
		{"a_0", 24, 'i', &m.A0},
		{"aodc", 5, 'u', &m.AODC},
		{"c_rs", 18, 'i', &m.Crs},
		{"delta_n", 16, 'i', &m.DeltaN},
		{"m_0", 32, 'i', &m.M0},
		{"c_uc", 18, 'i', &m.Cuc},
		{"e", 32, 'u', &m.E},
		{"c_us", 18, 'i', &m.Cus},
		{"a_1_2", 32, 'u', &m.SqrtA},
		{"t_oe", 17, 'u', &m.Toe},
		{"c_ic", 18, 'i', &m.Cic},
		{"omega_0", 32, 'i', &m.Omega0},
		{"c_is", 18, 'i', &m.Cis},
		{"i_0", 32, 'i', &m.I0},
		{"c_rc", 18, 'i', &m.Crc},
		{"omega", 32, 'i', &m.Omega},
		{"omegadot", 24, 'i', &m.OmegaDot},
		{"t_gd1", 10, 'i', &m.Tgd1},
		{"t_gd2", 10, 'i', &m.Tgd2},
	}
	for _, f := range fields {
		if err = readInto(r, f.width, f.kind, f.dst); err != nil {
			return nil, fmt.Errorf("ephemeris: 1042 %s: %w", f.name, err)
		}
	}
	if m.SVHealth, err = r.ReadBit(); err != nil {
		return nil, err
	}
	return m, nil
}

// Encode writes the message back, including the leading message type.
func (m *Message1042) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1042, lenMessageType); err != nil {
		return err
	}
	fields := []struct {
		width uint
		kind  byte
		src   int64
	}{
		{6, 'u', int64(m.SatelliteID)},
		{13, 'u', int64(m.WeekNumber)},
		{4, 'u', int64(m.SVURAI)},
		{14, 'i', m.IDOT},
		{5, 'u', int64(m.AODE)},
		{17, 'u', int64(m.Toc)},
		{11, 'i', m.A2},
		{22, 'i', m.A1},
		{24, 'i', m.A0},
		{5, 'u', int64(m.AODC)},
		{18, 'i', m.Crs},
		{16, 'i', m.DeltaN},
		{32, 'i', m.M0},
		{18, 'i', m.Cuc},
		{32, 'u', int64(m.E)},
		{18, 'i', m.Cus},
		{32, 'u', int64(m.SqrtA)},
		{17, 'u', int64(m.Toe)},
		{18, 'i', m.Cic},
		{32, 'i', m.Omega0},
		{18, 'i', m.Cis},
		{32, 'i', m.I0},
		{18, 'i', m.Crc},
		{32, 'i', m.Omega},
		{24, 'i', m.OmegaDot},
		{10, 'i', m.Tgd1},
		{10, 'i', m.Tgd2},
	}
	for _, f := range fields {
		if err := writeFrom(w, f.width, f.kind, f.src); err != nil {
			return err
		}
	}
	return w.WriteBit(m.SVHealth)
}

func (m *Message1042) String() string {
	return fmt.Sprintf("type 1042 BeiDou ephemeris sv %d, week %d\n", m.SatelliteID, m.WeekNumber)
}
