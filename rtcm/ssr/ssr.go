// Package ssr implements the State Space Representation correction
// messages: GPS orbit/clock/combined/code-bias (1057-1060), Galileo
// (1240-1243), BeiDou (1258-1261), and the GPS/Galileo/BeiDou phase
// bias messages (1265/1267/1270).
//
// Field names, order and widths are grounded verbatim on
// original_source's msg/ssr.rs. The header shape varies slightly by
// message family: orbit and combined headers carry a
// satellite_reference_datum bit that clock and code-bias headers omit,
// and phase-bias headers replace it with a pair of consistency
// indicator bits. decodeHeader/encodeHeader take flags describing
// which optional fields the calling message's header has, instead of
// the package carrying five near-identical header types.
package ssr

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

const lenMessageType = 12

const (
	GPS     = "GPS"
	Galileo = "Galileo"
	BeiDou  = "BeiDou"
)

// Header is the common SSR correction header. Not every field applies
// to every message family: SatelliteReferenceDatum is only meaningful
// for orbit and combined messages, and DispersiveBiasConsistency /
// MWConsistency only for phase-bias messages.
type Header struct {
	EpochTime1s                   uint
	UpdateInterval                uint
	MultipleMessageIndicator      bool
	SatelliteReferenceDatum       bool
	IODSSR                        uint
	ProviderID                    uint
	SolutionID                    uint
	DispersiveBiasConsistency     bool
	MWConsistency                 bool
	NumSatellites                 uint
}

type headerShape struct {
	hasSatRefDatum  bool
	hasConsistency  bool
}

func decodeHeader(r *bitstream.Reader, shape headerShape) (*Header, error) {
	h := &Header{}
	var err error
	if h.EpochTime1s, err = readUint(r, 20); err != nil {
		return nil, err
	}
	if h.UpdateInterval, err = readUint(r, 4); err != nil {
		return nil, err
	}
	if h.MultipleMessageIndicator, err = r.ReadBit(); err != nil {
		return nil, err
	}
	if shape.hasSatRefDatum {
		if h.SatelliteReferenceDatum, err = r.ReadBit(); err != nil {
			return nil, err
		}
	}
	if h.IODSSR, err = readUint(r, 4); err != nil {
		return nil, err
	}
	if h.ProviderID, err = readUint(r, 16); err != nil {
		return nil, err
	}
	if h.SolutionID, err = readUint(r, 4); err != nil {
		return nil, err
	}
	if shape.hasConsistency {
		if h.DispersiveBiasConsistency, err = r.ReadBit(); err != nil {
			return nil, err
		}
		if h.MWConsistency, err = r.ReadBit(); err != nil {
			return nil, err
		}
	}
	if h.NumSatellites, err = readUint(r, 6); err != nil {
		return nil, err
	}
	return h, nil
}

func encodeHeader(w *bitstream.Writer, h *Header, shape headerShape, numSatellites int) error {
	if err := w.WriteUint(uint64(h.EpochTime1s), 20); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(h.UpdateInterval), 4); err != nil {
		return err
	}
	if err := w.WriteBit(h.MultipleMessageIndicator); err != nil {
		return err
	}
	if shape.hasSatRefDatum {
		if err := w.WriteBit(h.SatelliteReferenceDatum); err != nil {
			return err
		}
	}
	if err := w.WriteUint(uint64(h.IODSSR), 4); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(h.ProviderID), 16); err != nil {
		return err
	}
	if err := w.WriteUint(uint64(h.SolutionID), 4); err != nil {
		return err
	}
	if shape.hasConsistency {
		if err := w.WriteBit(h.DispersiveBiasConsistency); err != nil {
			return err
		}
		if err := w.WriteBit(h.MWConsistency); err != nil {
			return err
		}
	}
	return w.WriteUint(uint64(numSatellites), 6)
}

func expectType(r *bitstream.Reader, want uint64) error {
	got, err := r.ReadUint(lenMessageType)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("ssr: expected message type %d, got %d", want, got)
	}
	return nil
}

func readUint(r *bitstream.Reader, width uint) (uint, error) {
	v, err := r.ReadUint(width)
	return uint(v), err
}
