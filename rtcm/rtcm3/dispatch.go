package rtcm3

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/antenna"
	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
	"github.com/goblimey/rtcm3codec/rtcm/ephemeris"
	"github.com/goblimey/rtcm3codec/rtcm/msm"
	"github.com/goblimey/rtcm3codec/rtcm/observation"
	"github.com/goblimey/rtcm3codec/rtcm/ssr"
	"github.com/goblimey/rtcm3codec/rtcm/system"
)

// DecodedMessage is implemented by every message schema this package
// knows about - the payload types of the tagged union that
// MessageDispatch routes to, keyed by the message's 12-bit type id.
type DecodedMessage interface {
	MessageType() uint
	String() string
	Encode(w *bitstream.Writer) error
}

// ssrOrbitConstellation etc. map a 12-bit type id to the constellation
// name the generic ssr package expects, grounded on mod.rs's Message
// enum (the id -> family -> constellation groupings it encodes as deku
// variants).
var ssrOrbitConstellation = map[uint]string{1057: ssr.GPS, 1240: ssr.Galileo, 1258: ssr.BeiDou}
var ssrClockConstellation = map[uint]string{1058: ssr.GPS, 1241: ssr.Galileo, 1259: ssr.BeiDou}
var ssrCodeBiasConstellation = map[uint]string{1059: ssr.GPS, 1242: ssr.Galileo, 1260: ssr.BeiDou}
var ssrCombinedConstellation = map[uint]string{1060: ssr.GPS, 1243: ssr.Galileo, 1261: ssr.BeiDou}
var ssrPhaseBiasConstellation = map[uint]string{1265: ssr.GPS, 1267: ssr.Galileo, 1270: ssr.BeiDou}

// peekType reads the 12-bit type id at the front of r without
// consuming it - every per-message Decode function re-reads it as
// part of its own header, the same way handler.go reads the length
// and type ahead of handing the frame to a decoder.
func peekType(r *bitstream.Reader) (uint, error) {
	saved := *r
	v, err := r.ReadUint(12)
	*r = saved
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// decodePayload dispatches on the message type at the front of payload
// and decodes the matching schema. It returns the decoded message, the
// number of payload bits the schema consumed (the caller uses this to
// compute the frame's trailing padding, spec.md §4.5/§4.6), and any
// error. An unrecognised type id decodes as Unknown, never an error -
// that is the open-world escape hatch spec.md §4.4 describes.
func decodePayload(payload []byte) (DecodedMessage, uint, error) {
	r := bitstream.NewReader(payload)
	typeID, err := peekType(r)
	if err != nil {
		return nil, 0, err
	}

	if constellation, ok := ssrOrbitConstellation[typeID]; ok {
		m, err := ssr.DecodeOrbitMessage(r, constellation)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	}
	if constellation, ok := ssrClockConstellation[typeID]; ok {
		m, err := ssr.DecodeClockMessage(r, constellation)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	}
	if constellation, ok := ssrCodeBiasConstellation[typeID]; ok {
		m, err := ssr.DecodeCodeBiasMessage(r, constellation)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	}
	if constellation, ok := ssrCombinedConstellation[typeID]; ok {
		m, err := ssr.DecodeCombinedMessage(r, constellation)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	}
	if constellation, ok := ssrPhaseBiasConstellation[typeID]; ok {
		m, err := ssr.DecodePhaseBiasMessage(r, constellation)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	}

	if _, _, ok := msm.TypeInfo(typeID); ok {
		m, err := msm.Decode(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	}

	switch typeID {
	case 1004:
		m, err := observation.DecodeMessage1004(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 1005:
		m, err := antenna.DecodeMessage1005(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 1006:
		m, err := antenna.DecodeMessage1006(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 1008:
		m, err := antenna.DecodeMessage1008(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 1012:
		m, err := observation.DecodeMessage1012(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 1019:
		m, err := ephemeris.DecodeMessage1019(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 1020:
		m, err := ephemeris.DecodeMessage1020(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 1029:
		m, err := system.Decode(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 1033:
		m, err := antenna.DecodeMessage1033(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 1042:
		m, err := ephemeris.DecodeMessage1042(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 1045:
		m, err := ephemeris.DecodeMessage1045(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 1046:
		m, err := ephemeris.DecodeMessage1046(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 1230:
		m, err := decodeMessage1230(r)
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	case 4062:
		m, err := decodeMessage4062(r, len(payload))
		if err != nil {
			return nil, 0, err
		}
		return m, r.BitPosition(), nil
	}

	m, err := decodeUnknown(r, typeID, len(payload))
	if err != nil {
		return nil, 0, err
	}
	return m, r.BitPosition(), nil
}

// typeDescription is used only for error messages and logging.
func typeDescription(typeID uint) string {
	return fmt.Sprintf("type %d", typeID)
}

// DecodeMessage decodes payload (the L bytes between the frame header
// and the CRC, NOT including either) into its matching schema, or into
// Unknown if the type id isn't one this package recognises. Callers
// that only have the raw payload bytes - rather than a whole frame to
// hand to DecodeFrame - use this entry point directly; the handler
// package's Analyse is one such caller.
func DecodeMessage(payload []byte) (DecodedMessage, error) {
	m, _, err := decodePayload(payload)
	return m, err
}
