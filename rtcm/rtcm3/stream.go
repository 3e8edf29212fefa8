package rtcm3

import "bytes"

// StreamDecoder pulls frames out of a byte stream that may interleave
// RTCM3 frames with other data (NMEA sentences, partial frames split
// across reads, noise). Feed appends newly-arrived bytes; Next returns
// one decoded frame at a time, or (nil, nil) when there isn't a whole
// frame available yet.
//
// The resync behaviour is grounded on original_source's
// Decoder::decode: Next finds the next preamble byte, and on any
// decode failure - a CRC mismatch or a parse error - it advances the
// buffer by exactly one byte before returning the error, so the caller
// can call Next again and resume scanning from the following byte.
// Bytes before the first preamble are silently discarded; they are
// never reported as an error.
type StreamDecoder struct {
	buf []byte
}

// NewStreamDecoder creates an empty StreamDecoder.
func NewStreamDecoder() *StreamDecoder {
	return &StreamDecoder{}
}

// Feed appends data to the decoder's internal buffer.
func (d *StreamDecoder) Feed(data []byte) {
	d.buf = append(d.buf, data...)
}

// Next returns the next decoded frame, or (nil, nil) if the buffered
// data doesn't yet contain a whole frame. A non-nil error means a
// frame-shaped chunk of data failed to decode; the decoder has already
// advanced past one byte of it and a subsequent call to Next can make
// progress.
func (d *StreamDecoder) Next() (*Frame, error) {
	idx := bytes.IndexByte(d.buf, preamble)
	if idx < 0 {
		d.buf = d.buf[:0]
		return nil, nil
	}
	if idx > 0 {
		d.buf = d.buf[idx:]
	}

	frame, consumed, err := DecodeFrame(d.buf)
	if err == ErrIncomplete {
		return nil, nil
	}
	if err != nil {
		if len(d.buf) > 0 {
			d.buf = d.buf[1:]
		}
		return nil, err
	}

	d.buf = d.buf[consumed:]
	return frame, nil
}
