package rtcm3

import (
	"fmt"

	"github.com/goblimey/rtcm3codec/rtcm/bitstream"
	"github.com/goblimey/rtcm3codec/rtcm/crc24q"
)

const preamble = 0xD3

// minFrameLength is the shortest possible frame: 3 header bytes, a
// zero-length payload and 3 CRC bytes.
const minFrameLength = 6

// maxPayloadLength is the largest value the 10-bit length field can
// hold, and so the largest payload a frame can carry.
const maxPayloadLength = 1023

// maxFrameLength is minFrameLength plus the largest possible payload.
const maxFrameLength = minFrameLength + maxPayloadLength

// ErrIncomplete is returned by DecodeFrame when buf does not yet
// contain a whole frame - the caller should wait for more bytes and
// try again rather than treat this as a parse failure.
var ErrIncomplete = fmt.Errorf("rtcm3: incomplete frame")

// ParseError wraps a failure to decode a frame's payload once its
// length and CRC have already checked out.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("rtcm3: parse error: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// CrcMismatchError is returned when a frame's declared CRC does not
// match the CRC-24Q computed over its header and payload.
type CrcMismatchError struct {
	Computed uint32
	Received uint32
}

func (e *CrcMismatchError) Error() string {
	return fmt.Sprintf("rtcm3: CRC mismatch: computed 0x%06x, frame says 0x%06x", e.Computed, e.Received)
}

// Frame is one complete RTCM3 frame: the 0xD3 preamble, 6 reserved
// bits, the 10-bit payload length, the decoded message, any trailing
// padding bits the message didn't consume, and the CRC-24Q checksum.
//
// Encode rebuilds the wire bytes from Message and Padding rather than
// from any cached raw buffer, so a Frame built field-by-field and a
// Frame obtained from DecodeFrame re-encode identically.
type Frame struct {
	Reserved       uint8
	Length         uint16
	Message        DecodedMessage
	NumPaddingBits uint
	Padding        uint64
	CRC            uint32
}

// DecodeFrame parses one frame from the front of buf. On success it
// returns the frame and the number of bytes consumed. If buf does not
// contain a full frame yet, it returns ErrIncomplete and the caller
// should wait for more data. buf[0] must already be the preamble byte;
// callers scanning a stream are responsible for finding it first.
//
// The CRC is checked before the payload is interpreted, mirroring
// original_source's parse_frame/Frame::from_bytes ordering: a frame
// whose length field is plausible but whose CRC is wrong is reported
// as a CrcMismatchError, never as a parse error from the message
// decoder.
func DecodeFrame(buf []byte) (*Frame, int, error) {
	if len(buf) < 3 {
		return nil, 0, ErrIncomplete
	}
	if buf[0] != preamble {
		return nil, 0, fmt.Errorf("rtcm3: buf[0] is 0x%02x, not the preamble", buf[0])
	}

	header := bitstream.NewReader(buf[:3])
	if _, err := header.ReadUint(8); err != nil {
		return nil, 0, err
	}
	reserved, err := header.ReadUint(6)
	if err != nil {
		return nil, 0, err
	}
	length, err := header.ReadUint(10)
	if err != nil {
		return nil, 0, err
	}

	totalLength := minFrameLength + int(length)
	if len(buf) < totalLength {
		return nil, 0, ErrIncomplete
	}

	payload := buf[3 : 3+int(length)]
	computedCRC := crc24q.Checksum(buf[:3+int(length)])

	crcReader := bitstream.NewReader(buf[3+int(length) : totalLength])
	receivedCRC64, err := crcReader.ReadUint(24)
	if err != nil {
		return nil, 0, err
	}
	receivedCRC := uint32(receivedCRC64)

	if computedCRC != receivedCRC {
		return nil, 0, &CrcMismatchError{Computed: computedCRC, Received: receivedCRC}
	}

	message, bitsConsumed, err := decodePayload(payload)
	if err != nil {
		return nil, 0, &ParseError{Err: err}
	}

	totalPayloadBits := uint(length) * 8
	numPaddingBits := uint(0)
	if totalPayloadBits > bitsConsumed {
		numPaddingBits = totalPayloadBits - bitsConsumed
	}

	var padding uint64
	if numPaddingBits > 0 {
		r := bitstream.NewReader(payload)
		if err := r.Skip(bitsConsumed); err != nil {
			return nil, 0, &ParseError{Err: err}
		}
		padding, err = r.ReadUint(numPaddingBits)
		if err != nil {
			return nil, 0, &ParseError{Err: err}
		}
	}

	frame := &Frame{
		Reserved:       uint8(reserved),
		Length:         uint16(length),
		Message:        message,
		NumPaddingBits: numPaddingBits,
		Padding:        padding,
		CRC:            receivedCRC,
	}
	return frame, totalLength, nil
}

// Encode serialises f back to its wire form: preamble, reserved bits,
// length, the re-encoded message, any padding bits and a freshly
// computed CRC-24Q. The CRC is always recomputed from the bytes just
// written, never taken from f.CRC, so a Frame with a stale or zero CRC
// field still encodes correctly.
func (f *Frame) Encode() ([]byte, error) {
	payloadWriter := bitstream.NewWriter()
	if err := f.Message.Encode(payloadWriter); err != nil {
		return nil, err
	}
	if f.NumPaddingBits > 0 {
		if err := payloadWriter.WriteUint(f.Padding, f.NumPaddingBits); err != nil {
			return nil, err
		}
	}
	payload := payloadWriter.Bytes()

	header := bitstream.NewWriter()
	if err := header.WriteUint(preamble, 8); err != nil {
		return nil, err
	}
	if err := header.WriteUint(uint64(f.Reserved), 6); err != nil {
		return nil, err
	}
	if err := header.WriteUint(uint64(len(payload)), 10); err != nil {
		return nil, err
	}

	body := append(header.Bytes(), payload...)
	crc := crc24q.Checksum(body)

	crcWriter := bitstream.NewWriter()
	if err := crcWriter.WriteUint(uint64(crc), 24); err != nil {
		return nil, err
	}

	return append(body, crcWriter.Bytes()...), nil
}

func (f *Frame) String() string {
	if f.Message == nil {
		return "rtcm3: empty frame\n"
	}
	return f.Message.String()
}
