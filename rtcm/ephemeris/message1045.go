package ephemeris

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// galileoBody holds the orbital elements shared by Message1045 (F/NAV,
// E5a) and Message1046 (I/NAV, E5b), which differ only in their
// trailing health/validity fields.
type galileoBody struct {
	SatelliteID uint
	WeekNumber  uint
	IODNav      uint
	SISAIndex   uint
	IDOT        int64
	Toc         uint
	Af2         int64
	Af1         int64
	Af0         int64
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
	BGDE5aE1    int64
}

var galileoBodyFields = []struct {
	name  string
	width uint
	kind  byte
	get   func(*galileoBody) interface{}
}{
	{"satellite_id", 6, 'u', func(b *galileoBody) interface{} { return &b.SatelliteID }},
	{"week_number", 12, 'u', func(b *galileoBody) interface{} { return &b.WeekNumber }},
	{"iodnav", 10, 'u', func(b *galileoBody) interface{} { return &b.IODNav }},
	{"sisa_index", 8, 'u', func(b *galileoBody) interface{} { return &b.SISAIndex }},
	{"idot", 14, 'i', func(b *galileoBody) interface{} { return &b.IDOT }},
	{"t_oc", 14, 'u', func(b *galileoBody) interface{} { return &b.Toc }},
	{"a_f2", 6, 'i', func(b *galileoBody) interface{} { return &b.Af2 }},
	{"a_f1", 21, 'i', func(b *galileoBody) interface{} { return &b.Af1 }},
	{"a_f0", 31, 'i', func(b *galileoBody) interface{} { return &b.Af0 }},
	{"c_rs", 16, 'i', func(b *galileoBody) interface{} { return &b.Crs }},
	{"delta_n", 16, 'i', func(b *galileoBody) interface{} { return &b.DeltaN }},
	{"m_0", 32, 'i', func(b *galileoBody) interface{} { return &b.M0 }},
	{"c_uc", 16, 'i', func(b *galileoBody) interface{} { return &b.Cuc }},
	{"e", 32, 'u', func(b *galileoBody) interface{} { return &b.E }},
	{"c_us", 16, 'i', func(b *galileoBody) interface{} { return &b.Cus }},
	{"a_1_2", 32, 'u', func(b *galileoBody) interface{} { return &b.SqrtA }},
	{"t_oe", 14, 'u', func(b *galileoBody) interface{} { return &b.Toe }},
	{"c_ic", 16, 'i', func(b *galileoBody) interface{} { return &b.Cic }},
	{"omega_0", 32, 'i', func(b *galileoBody) interface{} { return &b.Omega0 }},
	{"c_is", 16, 'i', func(b *galileoBody) interface{} { return &b.Cis }},
	{"i_0", 32, 'i', func(b *galileoBody) interface{} { return &b.I0 }},
	{"c_rc", 16, 'i', func(b *galileoBody) interface{} { return &b.Crc }},
	{"omega", 32, 'i', func(b *galileoBody) interface{} { return &b.Omega }},
	{"omegadot", 24, 'i', func(b *galileoBody) interface{} { return &b.OmegaDot }},
	{"bgd_e5a_e1", 10, 'i', func(b *galileoBody) interface{} { return &b.BGDE5aE1 }},
}

func decodeGalileoBody(r *bitstream.Reader) (*galileoBody, error) {
	b := &galileoBody{}
	for _, f := range galileoBodyFields {
		if err := readInto(r, f.width, f.kind, f.get(b)); err != nil {
			return nil, fmt.Errorf("ephemeris: galileo %s: %w", f.name, err)
		}
	}
	return b, nil
}

func encodeGalileoBody(w *bitstream.Writer, b *galileoBody) error {
	for _, f := range galileoBodyFields {
		var src int64
		switch f.kind {
		case 'u':
			src = int64(*(f.get(b).(*uint)))
		case 'i':
			src = *(f.get(b).(*int64))
		}
		if err := writeFrom(w, f.width, f.kind, src); err != nil {
			return err
		}
	}
	return nil
}

// Message1045 is the Galileo F/NAV (E5a) broadcast ephemeris message.
type Message1045 struct {
	galileoBody
	NavSignalHealthStatus  uint
	NavDataValidityStatus  bool
	Reserved               uint
}

func (m *Message1045) MessageType() uint { return 1045 }

// DecodeMessage1045 reads a type 1045 message.
func DecodeMessage1045(r *bitstream.Reader) (*Message1045, error) {
	if err := expectType(r, 1045); err != nil {
		return nil, err
	}
	body, err := decodeGalileoBody(r)
	if err != nil {
		return nil, err
	}
	m := &Message1045{galileoBody: *body}
	if m.NavSignalHealthStatus, err = ru(r, 2); err != nil {
		return nil, err
	}
	if m.NavDataValidityStatus, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if m.Reserved, err = ru(r, 7); err != nil {
		return nil, err
	}
	return m, nil
}

// Encode writes the message back, including the leading message type.
func (m *Message1045) Encode(w *bitstream.Writer) error {
	if err := w.WriteUint(1045, lenMessageType); err != nil {
		return err
	}
	if err := encodeGalileoBody(w, &m.galileoBody); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(m.NavSignalHealthStatus), 2); err != nil {
		return err
	}
	if err := w.WriteBit(m.NavDataValidityStatus); err != nil {
		return err
	}
	return w.WriteUint(uint64(m.Reserved), 7)
}

func (m *Message1045) String() string {
	return fmt.Sprintf("type 1045 Galileo F/NAV ephemeris sv %d, week %d\n", m.SatelliteID, m.WeekNumber)
}
