package msm

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
)

// Field widths for the per-satellite vectors, grounded on
// original_source's msm.rs Msm1_2_3SatelliteData / Msm4_6SatelliteData
// / Msm5_7SatelliteData.
const (
	lenRoughRangeMs        = 8
	lenRoughRangeModuloMs  = 10
	lenSatelliteInfo       = 4
	lenRoughPhaseRangeRate = 14
)

// Satellite holds one satellite's rough-range data. Which fields are
// populated depends on the MSM sub-type: 1/2/3 only set
// RoughRangeModuloMs; 4/6 add RoughRangeMs; 5/7 add SatelliteInfo and
// RoughPhaseRangeRate.
type Satellite struct {
	SatelliteID int // 1-based satellite number from the header's mask

	RoughRangeMs        uint // U8, present for sub-types 4-7
	SatelliteInfo       uint // U4, present for sub-types 5 and 7
	RoughRangeModuloMs  uint // U10, present for all sub-types
	RoughPhaseRangeRate int  // I14, present for sub-types 5 and 7

	hasRoughRangeMs        bool
	hasSatelliteInfo       bool
	hasRoughPhaseRangeRate bool
}

// DecodeSatellites reads the satellite-data vector for the given MSM
// sub-type and satellite id list (from Header.Satellites).
func DecodeSatellites(r *bitstream.Reader, subType int, satelliteIDs []uint) ([]Satellite, error) {
	n := len(satelliteIDs)
	sats := make([]Satellite, n)
	for i, id := range satelliteIDs {
		sats[i].SatelliteID = int(id)
	}

	readField := func(name string, width uint) ([]uint64, error) {
		vals := make([]uint64, n)
		for i := range vals {
			v, err := r.ReadUint(width)
			if err != nil {
				return nil, fmt.Errorf("msm: satellite %s[%d]: %w", name, i, err)
			}
			vals[i] = v
		}
		return vals, nil
	}

	switch subType {
	case 1, 2, 3:
		vals, err := readField("rough_range_modulo_ms", lenRoughRangeModuloMs)
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			sats[i].RoughRangeModuloMs = uint(v)
		}
	case 4, 6:
		rough, err := readField("rough_range_ms", lenRoughRangeMs)
		if err != nil {
			return nil, err
		}
		modulo, err := readField("rough_range_modulo_ms", lenRoughRangeModuloMs)
		if err != nil {
			return nil, err
		}
		for i := range sats {
			sats[i].RoughRangeMs = uint(rough[i])
			sats[i].hasRoughRangeMs = true
			sats[i].RoughRangeModuloMs = uint(modulo[i])
		}
	case 5, 7:
		rough, err := readField("rough_range_ms", lenRoughRangeMs)
		if err != nil {
			return nil, err
		}
		info, err := readField("satellite_info", lenSatelliteInfo)
		if err != nil {
			return nil, err
		}
		modulo, err := readField("rough_range_modulo_ms", lenRoughRangeModuloMs)
		if err != nil {
			return nil, err
		}
		for i := range sats {
			sats[i].RoughRangeMs = uint(rough[i])
			sats[i].hasRoughRangeMs = true
			sats[i].SatelliteInfo = uint(info[i])
			sats[i].hasSatelliteInfo = true
			sats[i].RoughRangeModuloMs = uint(modulo[i])
		}
		for i := range sats {
			rate, err := r.ReadInt(lenRoughPhaseRangeRate)
			if err != nil {
				return nil, fmt.Errorf("msm: satellite rough_phaserange_rate[%d]: %w", i, err)
			}
			sats[i].RoughPhaseRangeRate = int(rate)
			sats[i].hasRoughPhaseRangeRate = true
		}
	default:
		return nil, fmt.Errorf("msm: unsupported sub-type %d", subType)
	}
	return sats, nil
}

// EncodeSatellites writes the satellite-data vector back, following
// the same per-sub-type shape as DecodeSatellites.
func EncodeSatellites(w *bitstream.Writer, subType int, sats []Satellite) error {
	switch subType {
	case 1, 2, 3:
		for _, s := range sats {
			if err := w.WriteUint(uint64(s.RoughRangeModuloMs), lenRoughRangeModuloMs); err != nil {
				return err
			}
		}
	case 4, 6:
		for _, s := range sats {
			if err := w.WriteUint(uint64(s.RoughRangeMs), lenRoughRangeMs); err != nil {
				return err
			}
		}
		for _, s := range sats {
			if err := w.WriteUint(uint64(s.RoughRangeModuloMs), lenRoughRangeModuloMs); err != nil {
				return err
			}
		}
	case 5, 7:
		for _, s := range sats {
			if err := w.WriteUint(uint64(s.RoughRangeMs), lenRoughRangeMs); err != nil {
				return err
			}
		}
		for _, s := range sats {
			if err := w.WriteUint(uint64(s.SatelliteInfo), lenSatelliteInfo); err != nil {
				return err
			}
		}
		for _, s := range sats {
			if err := w.WriteUint(uint64(s.RoughRangeModuloMs), lenRoughRangeModuloMs); err != nil {
				return err
			}
		}
		for _, s := range sats {
			if err := w.WriteInt(int64(s.RoughPhaseRangeRate), lenRoughPhaseRangeRate); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("msm: unsupported sub-type %d", subType)
	}
	return nil
}

// String renders one satellite row, as "{range ms}".
func (s Satellite) String() string {
	return fmt.Sprintf("%2d {%d.%dms}", s.SatelliteID, s.RoughRangeMs, s.RoughRangeModuloMs)
}
