package testdata

// This file collects the bit streams used by the package tests.  Some are
// complete RTCM3 frames (a 0xd3 leader, a length, the embedded message and a
// CRC24Q trailer) as they would arrive off the wire or out of a base
// station log.  Others are bare message bodies - the leader has already
// been stripped - because that's what the MSM4/MSM7 decoders expect to be
// handed.  The comment on each variable says which.

// AllJunk is a run of bytes that never starts an RTCM3 frame.
var AllJunk = []byte{
	0x01, 0x02, 0x03, 0x9f, 0xaa, 0xbb, 0x10, 0x20, 0x30, 0x40,
	0x50, 0x60, 0x70, 0x80, 0x90, 0xa0, 0xb0, 0xc0, 0xe0, 0xff,
}

// EmptyFrame is an empty bit stream.
var EmptyFrame = []byte{}

// IncompleteMessage is a frame leader announcing a 20-byte message
// followed by only five bytes of message body and no CRC.
var IncompleteMessage = []byte{
	0xd3, 0x00, 0x14, 0x43, 0x50, 0x03, 0x00, 0x00,
}

// JunkAtStart is some non-RTCM bytes followed by one complete, valid
// message type 1074 frame (zero satellites observed).
var JunkAtStart = []byte{
	0x01, 0x02, 0xaa, 0xbb,
	0xd3, 0x00, 0x16, 0x43, 0x20, 0x02, 0x00, 0x00, 0x01, 0x90,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0xa1, 0xf1, 0x00,
}

// MessageFrameWithIncorrectStart looks like a complete frame except that
// the leader byte isn't 0xd3.
var MessageFrameWithIncorrectStart = []byte{
	0x00, 0x00, 0x16, 0x43, 0x20, 0x02, 0x00, 0x00, 0x01, 0x90,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0xa1, 0xf1, 0x00,
}

// MessageFrameWithLengthTooBig declares a message body far longer than the
// bytes that actually follow it.
var MessageFrameWithLengthTooBig = []byte{
	0xd3, 0x03, 0xff, 0x43, 0x50, 0x03, 0x00, 0x00,
}

// MessageFrameWithLengthZero is a syntactically valid frame whose message
// body is empty, with a correctly computed CRC.
var MessageFrameWithLengthZero = []byte{
	0xd3, 0x00, 0x00, 0x47, 0xea, 0x4b,
}

// MessageFrameWithCRCFailure is frame1074_2 (see below) with
// the last CRC byte corrupted.
var MessageFrameWithCRCFailure = []byte{
	0xd3, 0x00, 0x16, 0x43, 0x20, 0x02, 0x00, 0x00, 0x01, 0x90,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xa1, 0xf1, 0xff,
}

// frame1074_2 is a complete, valid type 1074 frame with no satellites
// observed - a minimal but well-formed MSM4 message.
var frame1074_2 = []byte{
	0xd3, 0x00, 0x16, 0x43, 0x20, 0x02, 0x00, 0x00, 0x01, 0x90,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0xa1, 0xf1, 0x00,
}

// frame1077 is a complete, valid type 1077 frame with no satellites
// observed - a minimal but well-formed MSM7 message.
var frame1077 = []byte{
	0xd3, 0x00, 0x16, 0x43, 0x50, 0x03, 0x00, 0x00, 0x03, 0x20,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0xa2, 0x2f, 0xd4,
}

// MessageBatch is two complete frames back to back, a type 1074 message
// followed by a type 1077 message.
var MessageBatch = append(append([]byte{}, frame1074_2...), frame1077...)

// FullFrameType1074 is the same type 1074 message as MessageFrameType1074_2,
// with its leader and CRC still attached.
var FullFrameType1074 = frame1074_2

// MessageBatchWithJunk is a capture taken from a real base station log: four
// genuine RTCM3 frames (types 1077, 1087, 1097 and 1127) separated by a few
// stray bytes that don't belong to any frame, finishing with a fifth frame
// that gets cut off before its CRC.  It's used to check that a reader can
// find the real messages and skip everything else.
var MessageBatchWithJunk = []byte{
	0xd3, 0x00, 0xdc, 0x43, 0x50, 0x00, 0x67, 0x00, 0x97, 0x62,
	0x00, 0x00, 0x08, 0x40, 0xa0, 0x65, 0x00, 0x00, 0x00, 0x00,
	0x20, 0x00, 0x80, 0x00, 0x6d, 0xff, 0xa8, 0xaa, 0x26, 0x23,
	0xa6, 0xa2, 0x23, 0x24, 0x00, 0x00, 0x00, 0x00, 0x36, 0x68,
	0xcb, 0x83, 0x7a, 0x6f, 0x9d, 0x7c, 0x04, 0x92, 0xfe, 0xf2,
	0x05, 0xb0, 0x4a, 0xa0, 0xec, 0x7b, 0x0e, 0x09, 0x27, 0xd0,
	0x3f, 0x23, 0x7c, 0xb9, 0x6f, 0xbd, 0x73, 0xee, 0x1f, 0x01,
	0x64, 0x96, 0xf5, 0x7b, 0x27, 0x46, 0xf1, 0xf2, 0x1a, 0xbf,
	0x19, 0xfa, 0x08, 0x41, 0x08, 0x7b, 0xb1, 0x1b, 0x67, 0xe1,
	0xa6, 0x70, 0x71, 0xd9, 0xdf, 0x0c, 0x61, 0x7f, 0x19, 0x9c,
	0x7e, 0x66, 0x66, 0xfb, 0x86, 0xc0, 0x04, 0xe9, 0xc7, 0x7d,
	0x85, 0x83, 0x7d, 0xac, 0xad, 0xfc, 0xbe, 0x2b, 0xfc, 0x3c,
	0x84, 0x02, 0x1d, 0xeb, 0x81, 0xa6, 0x9c, 0x87, 0x17, 0x5d,
	0x86, 0xf5, 0x60, 0xfb, 0x66, 0x72, 0x7b, 0xfa, 0x2f, 0x48,
	0xd2, 0x29, 0x67, 0x08, 0xc8, 0x72, 0x15, 0x0d, 0x37, 0xca,
	0x92, 0xa4, 0xe9, 0x3a, 0x4e, 0x13, 0x80, 0x00, 0x14, 0x04,
	0xc0, 0xe8, 0x50, 0x16, 0x04, 0xc1, 0x40, 0x46, 0x17, 0x05,
	0x41, 0x70, 0x52, 0x17, 0x05, 0x01, 0xef, 0x4b, 0xde, 0x70,
	0x4c, 0xb1, 0xaf, 0x84, 0x37, 0x08, 0x2a, 0x77, 0x95, 0xf1,
	0x6e, 0x75, 0xe8, 0xea, 0x36, 0x1b, 0xdc, 0x3d, 0x7a, 0xbc,
	0x75, 0x42, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0xfe, 0x69, 0xe8, 0x6a, 0xd3, 0x00, 0xc3,
	0x43, 0xf0, 0x00, 0xa2, 0x93, 0x7c, 0x22, 0x00, 0x00, 0x04,
	0x0e, 0x03, 0x80, 0x00, 0x00, 0x00, 0x00, 0x20, 0x80, 0x00,
	0x00, 0x7f, 0xfe, 0x9c, 0x8a, 0x80, 0x94, 0x86, 0x84, 0x99,
	0x0c, 0xa0, 0x95, 0x2a, 0x8b, 0xd8, 0x3a, 0x92, 0xf5, 0x74,
	0x7d, 0x56, 0xfe, 0xb7, 0xec, 0xe8, 0x0d, 0x41, 0x69, 0x7c,
	0x00, 0x0e, 0xf0, 0x61, 0x42, 0x9c, 0xf0, 0x27, 0x38, 0x86,
	0x2a, 0xda, 0x62, 0x36, 0x3c, 0x8f, 0xeb, 0xc8, 0x27, 0x1b,
	0x77, 0x6f, 0xb9, 0x4c, 0xbe, 0x36, 0x2b, 0xe4, 0x26, 0x1d,
	0xc1, 0x4f, 0xdc, 0xd9, 0x01, 0x16, 0x24, 0x11, 0x9a, 0xe0,
	0x91, 0x02, 0x00, 0x7a, 0xea, 0x61, 0x9d, 0xb4, 0xe1, 0x52,
	0xf6, 0x1f, 0x22, 0xae, 0xdf, 0x26, 0x28, 0x3e, 0xe0, 0xf6,
	0xbe, 0xdf, 0x90, 0xdf, 0xb8, 0x01, 0x3f, 0x8e, 0x86, 0xbf,
	0x7e, 0x67, 0x1f, 0x83, 0x8f, 0x20, 0x51, 0x53, 0x60, 0x46,
	0x60, 0x30, 0x43, 0xc3, 0x3d, 0xcf, 0x12, 0x84, 0xb7, 0x10,
	0xc4, 0x33, 0x53, 0x3d, 0x25, 0x48, 0xb0, 0x14, 0x00, 0x00,
	0x04, 0x81, 0x28, 0x60, 0x13, 0x84, 0x81, 0x08, 0x54, 0x13,
	0x85, 0x40, 0xe8, 0x60, 0x12, 0x85, 0x01, 0x38, 0x5c, 0x67,
	0xb7, 0x67, 0xa5, 0xff, 0x4e, 0x71, 0xcd, 0xd3, 0x78, 0x27,
	0x29, 0x0e, 0x5c, 0xed, 0xd9, 0xd7, 0xcc, 0x7e, 0x04, 0xf8,
	0x09, 0xc3, 0x73, 0xa0, 0x40, 0x70, 0xd9, 0x6d, 0x6a, 0x75,
	0x6e, 0x6b, 0xd3, 0x00, 0xc3, 0x44, 0x90, 0x00, 0x67, 0x00,
	0x97, 0x62, 0x00, 0x00, 0x21, 0x18, 0x00, 0xc0, 0x08, 0x00,
	0x00, 0x00, 0x20, 0x01, 0x00, 0x00, 0x7f, 0xfe, 0xae, 0xbe,
	0x90, 0x98, 0xa6, 0x9c, 0xb4, 0x00, 0x00, 0x00, 0x08, 0xc1,
	0x4b, 0xc1, 0x32, 0xf8, 0x0b, 0x08, 0xc5, 0x83, 0xc8, 0x01,
	0xe8, 0x25, 0x3f, 0x74, 0x7c, 0xc4, 0x02, 0xa0, 0x4b, 0xc1,
	0x47, 0x90, 0x12, 0x86, 0x62, 0x72, 0x92, 0x28, 0x53, 0x18,
	0x9d, 0x8d, 0x85, 0x82, 0xc6, 0xe1, 0x8a, 0x6a, 0x2f, 0xdd,
	0x5e, 0xcd, 0xd3, 0xe1, 0x1a, 0x15, 0x01, 0xa1, 0x2b, 0xdc,
	0x56, 0x3f, 0xc4, 0xea, 0xc0, 0x5e, 0xdc, 0x40, 0x48, 0xd3,
	0x80, 0xb2, 0x25, 0x60, 0x9c, 0x7b, 0x7e, 0x32, 0xdd, 0x3e,
	0x22, 0xf7, 0x01, 0xb6, 0xf3, 0x81, 0xaf, 0xb7, 0x1f, 0x78,
	0xe0, 0x7f, 0x6c, 0xaa, 0xfe, 0x9a, 0x7e, 0x7e, 0x94, 0x9f,
	0xbf, 0x06, 0x72, 0x3f, 0x15, 0x8c, 0xb1, 0x44, 0x56, 0xe1,
	0xb1, 0x92, 0xdc, 0xb5, 0x37, 0x4a, 0xd4, 0x5d, 0x17, 0x38,
	0x4e, 0x30, 0x24, 0x14, 0x00, 0x04, 0xc1, 0x50, 0x3e, 0x0f,
	0x85, 0x41, 0x40, 0x52, 0x13, 0x85, 0x61, 0x50, 0x5a, 0x16,
	0x04, 0xa1, 0x38, 0x12, 0x5b, 0x24, 0x7e, 0x03, 0x6c, 0x07,
	0x89, 0xdb, 0x93, 0xbd, 0xba, 0x0d, 0x34, 0x27, 0x68, 0x75,
	0xd0, 0xa6, 0x72, 0x24, 0xe4, 0x88, 0xdc, 0x61, 0xa9, 0x40,
	0xb1, 0x9d, 0x0d, 0xd3, 0x00, 0xaa, 0x46, 0x70, 0x00, 0x66,
	0xff, 0xbc, 0xa0, 0x00, 0x00, 0x00, 0x04, 0x00, 0x26, 0x18,
	0x00, 0x00, 0x00, 0x20, 0x02, 0x00, 0x00, 0x75, 0x53, 0xfa,
	0x82, 0x42, 0x62, 0x9a, 0x80, 0x00, 0x00, 0x06, 0x95, 0x4e,
	0xa7, 0xa0, 0xbf, 0x1e, 0x78, 0x7f, 0x0a, 0x10, 0x08, 0x18,
	0x7f, 0x35, 0x04, 0xab, 0xee, 0x50, 0x77, 0x8a, 0x86, 0xf0,
	0x51, 0xf1, 0x4d, 0x82, 0x46, 0x38, 0x29, 0x0a, 0x8c, 0x35,
	0x57, 0x23, 0x87, 0x82, 0x24, 0x2a, 0x01, 0xb5, 0x40, 0x07,
	0xeb, 0xc5, 0x01, 0x37, 0xa8, 0x80, 0xb3, 0x88, 0x03, 0x23,
	0xc4, 0xfc, 0x61, 0xe0, 0x4f, 0x33, 0xc4, 0x73, 0x31, 0xcd,
	0x90, 0x54, 0xb2, 0x02, 0x70, 0x90, 0x26, 0x0b, 0x42, 0xd0,
	0x9c, 0x2b, 0x0c, 0x02, 0x97, 0xf4, 0x08, 0x3d, 0x9e, 0xc7,
	0xb2, 0x6e, 0x44, 0x0f, 0x19, 0x48, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xe5, 0x1e, 0xd8, 0xd3,
	0x00, 0xaa, 0x46, 0x70, 0x00, 0x66, 0xff, 0xbc, 0xa0, 0x00,
	0x00, 0x00, 0x04, 0x00, 0x26, 0x18, 0x00, 0x00, 0x00, 0x20,
	0x02, 0x00, 0x00, 0x75, 0x53, 0xfa, 0x82, 0x42, 0x62, 0x9a,
	0x80,
}

// WantResultFromProcessingMessageBatchWithJunk is the RTCM content of
// MessageBatchWithJunk with the surrounding junk bytes stripped out.
var WantResultFromProcessingMessageBatchWithJunk = []byte{
	0xd3, 0x00, 0xdc, 0x43, 0x50, 0x00, 0x67, 0x00, 0x97, 0x62,
	0x00, 0x00, 0x08, 0x40, 0xa0, 0x65, 0x00, 0x00, 0x00, 0x00,
	0x20, 0x00, 0x80, 0x00, 0x6d, 0xff, 0xa8, 0xaa, 0x26, 0x23,
	0xa6, 0xa2, 0x23, 0x24, 0x00, 0x00, 0x00, 0x00, 0x36, 0x68,
	0xcb, 0x83, 0x7a, 0x6f, 0x9d, 0x7c, 0x04, 0x92, 0xfe, 0xf2,
	0x05, 0xb0, 0x4a, 0xa0, 0xec, 0x7b, 0x0e, 0x09, 0x27, 0xd0,
	0x3f, 0x23, 0x7c, 0xb9, 0x6f, 0xbd, 0x73, 0xee, 0x1f, 0x01,
	0x64, 0x96, 0xf5, 0x7b, 0x27, 0x46, 0xf1, 0xf2, 0x1a, 0xbf,
	0x19, 0xfa, 0x08, 0x41, 0x08, 0x7b, 0xb1, 0x1b, 0x67, 0xe1,
	0xa6, 0x70, 0x71, 0xd9, 0xdf, 0x0c, 0x61, 0x7f, 0x19, 0x9c,
	0x7e, 0x66, 0x66, 0xfb, 0x86, 0xc0, 0x04, 0xe9, 0xc7, 0x7d,
	0x85, 0x83, 0x7d, 0xac, 0xad, 0xfc, 0xbe, 0x2b, 0xfc, 0x3c,
	0x84, 0x02, 0x1d, 0xeb, 0x81, 0xa6, 0x9c, 0x87, 0x17, 0x5d,
	0x86, 0xf5, 0x60, 0xfb, 0x66, 0x72, 0x7b, 0xfa, 0x2f, 0x48,
	0xd2, 0x29, 0x67, 0x08, 0xc8, 0x72, 0x15, 0x0d, 0x37, 0xca,
	0x92, 0xa4, 0xe9, 0x3a, 0x4e, 0x13, 0x80, 0x00, 0x14, 0x04,
	0xc0, 0xe8, 0x50, 0x16, 0x04, 0xc1, 0x40, 0x46, 0x17, 0x05,
	0x41, 0x70, 0x52, 0x17, 0x05, 0x01, 0xef, 0x4b, 0xde, 0x70,
	0x4c, 0xb1, 0xaf, 0x84, 0x37, 0x08, 0x2a, 0x77, 0x95, 0xf1,
	0x6e, 0x75, 0xe8, 0xea, 0x36, 0x1b, 0xdc, 0x3d, 0x7a, 0xbc,
	0x75, 0x42, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0xfe, 0x69, 0xe8, 0xd3, 0x00, 0xc3, 0x43,
	0xf0, 0x00, 0xa2, 0x93, 0x7c, 0x22, 0x00, 0x00, 0x04, 0x0e,
	0x03, 0x80, 0x00, 0x00, 0x00, 0x00, 0x20, 0x80, 0x00, 0x00,
	0x7f, 0xfe, 0x9c, 0x8a, 0x80, 0x94, 0x86, 0x84, 0x99, 0x0c,
	0xa0, 0x95, 0x2a, 0x8b, 0xd8, 0x3a, 0x92, 0xf5, 0x74, 0x7d,
	0x56, 0xfe, 0xb7, 0xec, 0xe8, 0x0d, 0x41, 0x69, 0x7c, 0x00,
	0x0e, 0xf0, 0x61, 0x42, 0x9c, 0xf0, 0x27, 0x38, 0x86, 0x2a,
	0xda, 0x62, 0x36, 0x3c, 0x8f, 0xeb, 0xc8, 0x27, 0x1b, 0x77,
	0x6f, 0xb9, 0x4c, 0xbe, 0x36, 0x2b, 0xe4, 0x26, 0x1d, 0xc1,
	0x4f, 0xdc, 0xd9, 0x01, 0x16, 0x24, 0x11, 0x9a, 0xe0, 0x91,
	0x02, 0x00, 0x7a, 0xea, 0x61, 0x9d, 0xb4, 0xe1, 0x52, 0xf6,
	0x1f, 0x22, 0xae, 0xdf, 0x26, 0x28, 0x3e, 0xe0, 0xf6, 0xbe,
	0xdf, 0x90, 0xdf, 0xb8, 0x01, 0x3f, 0x8e, 0x86, 0xbf, 0x7e,
	0x67, 0x1f, 0x83, 0x8f, 0x20, 0x51, 0x53, 0x60, 0x46, 0x60,
	0x30, 0x43, 0xc3, 0x3d, 0xcf, 0x12, 0x84, 0xb7, 0x10, 0xc4,
	0x33, 0x53, 0x3d, 0x25, 0x48, 0xb0, 0x14, 0x00, 0x00, 0x04,
	0x81, 0x28, 0x60, 0x13, 0x84, 0x81, 0x08, 0x54, 0x13, 0x85,
	0x40, 0xe8, 0x60, 0x12, 0x85, 0x01, 0x38, 0x5c, 0x67, 0xb7,
	0x67, 0xa5, 0xff, 0x4e, 0x71, 0xcd, 0xd3, 0x78, 0x27, 0x29,
	0x0e, 0x5c, 0xed, 0xd9, 0xd7, 0xcc, 0x7e, 0x04, 0xf8, 0x09,
	0xc3, 0x73, 0xa0, 0x40, 0x70, 0xd9, 0x6d, 0xd3, 0x00, 0xc3,
	0x44, 0x90, 0x00, 0x67, 0x00, 0x97, 0x62, 0x00, 0x00, 0x21,
	0x18, 0x00, 0xc0, 0x08, 0x00, 0x00, 0x00, 0x20, 0x01, 0x00,
	0x00, 0x7f, 0xfe, 0xae, 0xbe, 0x90, 0x98, 0xa6, 0x9c, 0xb4,
	0x00, 0x00, 0x00, 0x08, 0xc1, 0x4b, 0xc1, 0x32, 0xf8, 0x0b,
	0x08, 0xc5, 0x83, 0xc8, 0x01, 0xe8, 0x25, 0x3f, 0x74, 0x7c,
	0xc4, 0x02, 0xa0, 0x4b, 0xc1, 0x47, 0x90, 0x12, 0x86, 0x62,
	0x72, 0x92, 0x28, 0x53, 0x18, 0x9d, 0x8d, 0x85, 0x82, 0xc6,
	0xe1, 0x8a, 0x6a, 0x2f, 0xdd, 0x5e, 0xcd, 0xd3, 0xe1, 0x1a,
	0x15, 0x01, 0xa1, 0x2b, 0xdc, 0x56, 0x3f, 0xc4, 0xea, 0xc0,
	0x5e, 0xdc, 0x40, 0x48, 0xd3, 0x80, 0xb2, 0x25, 0x60, 0x9c,
	0x7b, 0x7e, 0x32, 0xdd, 0x3e, 0x22, 0xf7, 0x01, 0xb6, 0xf3,
	0x81, 0xaf, 0xb7, 0x1f, 0x78, 0xe0, 0x7f, 0x6c, 0xaa, 0xfe,
	0x9a, 0x7e, 0x7e, 0x94, 0x9f, 0xbf, 0x06, 0x72, 0x3f, 0x15,
	0x8c, 0xb1, 0x44, 0x56, 0xe1, 0xb1, 0x92, 0xdc, 0xb5, 0x37,
	0x4a, 0xd4, 0x5d, 0x17, 0x38, 0x4e, 0x30, 0x24, 0x14, 0x00,
	0x04, 0xc1, 0x50, 0x3e, 0x0f, 0x85, 0x41, 0x40, 0x52, 0x13,
	0x85, 0x61, 0x50, 0x5a, 0x16, 0x04, 0xa1, 0x38, 0x12, 0x5b,
	0x24, 0x7e, 0x03, 0x6c, 0x07, 0x89, 0xdb, 0x93, 0xbd, 0xba,
	0x0d, 0x34, 0x27, 0x68, 0x75, 0xd0, 0xa6, 0x72, 0x24, 0xe4,
	0x88, 0xdc, 0x61, 0xa9, 0x40, 0xb1, 0x9d, 0x0d, 0xd3, 0x00,
	0xaa, 0x46, 0x70, 0x00, 0x66, 0xff, 0xbc, 0xa0, 0x00, 0x00,
	0x00, 0x04, 0x00, 0x26, 0x18, 0x00, 0x00, 0x00, 0x20, 0x02,
	0x00, 0x00, 0x75, 0x53, 0xfa, 0x82, 0x42, 0x62, 0x9a, 0x80,
	0x00, 0x00, 0x06, 0x95, 0x4e, 0xa7, 0xa0, 0xbf, 0x1e, 0x78,
	0x7f, 0x0a, 0x10, 0x08, 0x18, 0x7f, 0x35, 0x04, 0xab, 0xee,
	0x50, 0x77, 0x8a, 0x86, 0xf0, 0x51, 0xf1, 0x4d, 0x82, 0x46,
	0x38, 0x29, 0x0a, 0x8c, 0x35, 0x57, 0x23, 0x87, 0x82, 0x24,
	0x2a, 0x01, 0xb5, 0x40, 0x07, 0xeb, 0xc5, 0x01, 0x37, 0xa8,
	0x80, 0xb3, 0x88, 0x03, 0x23, 0xc4, 0xfc, 0x61, 0xe0, 0x4f,
	0x33, 0xc4, 0x73, 0x31, 0xcd, 0x90, 0x54, 0xb2, 0x02, 0x70,
	0x90, 0x26, 0x0b, 0x42, 0xd0, 0x9c, 0x2b, 0x0c, 0x02, 0x97,
	0xf4, 0x08, 0x3d, 0x9e, 0xc7, 0xb2, 0x6e, 0x44, 0x0f, 0x19,
	0x48, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0xe5, 0x1e, 0xd8,
}

// MesageBatchWith1077 is a longer batch of alternating type 1074 and type
// 1077 frames, used to exercise stream handling over many messages.
var MesageBatchWith1077 = func() []byte {
	var b []byte
	for i := 0; i < 5; i++ {
		b = append(b, frame1074_2...)
		b = append(b, frame1077...)
	}
	return b
}()

// Fake1230 is a complete, minimal frame containing just a message type
// 1230 (GLONASS code phase biases) header - enough to be recognised and
// routed but not decoded.
var Fake1230 = []byte{
	0xd3, 0x00, 0x02, 0x4c, 0xe0, 0x73, 0x79, 0x0f,
}

// UnhandledMessageType1024 is a genuine 14-byte type 1024 frame (a
// coordinate transformation message), a type this codec recognises but
// doesn't attempt to decode.
var UnhandledMessageType1024 = []byte{
	0xd3, 0x00, 0x08, 0x40, 0x00, 0x00, 0x8a, 0x00, 0x00, 0x00, 0x00, 0x4f, 0x5e, 0xe7,
}

// MessageFrameType1005 is a complete, valid type 1005 (station antenna
// reference point) frame.  It decodes to station ID 2, ITRF realisation
// year 3, AntennaRefX 123456, AntennaRefY 234567, AntennaRefZ 345678.
var MessageFrameType1005 = []byte{
	0xd3, 0x00, 0x13, 0x3e, 0xd0, 0x02, 0x0f, 0xc0, 0x00, 0x01,
	0xe2, 0x40, 0x40, 0x00, 0x03, 0x94, 0x47, 0x80, 0x00, 0x05,
	0x46, 0x4e, 0x5b, 0x90, 0x5f,
}

// MessageFrameType1077 is the bare (leader-stripped) body of a type 1077
// message with no satellites observed.  It's handed directly to the MSM7
// decoder, which expects the message type bits at position zero.
var MessageFrameType1077 = []byte{
	0x43, 0x50, 0x03, 0x00, 0x00, 0x03, 0x20, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00,
}

// MessageFrame1077 and Message1077 are the same bare message body, used
// by different tests in the MSM7 package.
var MessageFrame1077 = MessageFrameType1077
var Message1077 = MessageFrameType1077

// MessageFrameType1074_1 is the bare (leader-stripped) body of a type 1074
// message observing one satellite (number 4) and two signals (numbers 2
// and 16).  It decodes to wholeMillis 1, fractionalMillis 0x100, range
// deltas {1024, 2048}, phase range deltas {0x40000, invalid}, lock time
// indicators {3, 4}, half cycle ambiguity {false, true} and CNR {7, 16}.
var MessageFrameType1074_1 = []byte{
	0x43, 0x20, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x20, 0x00, 0x80,
	0x00, 0x60, 0x28, 0x00, 0x40, 0x01, 0x00, 0x02, 0x00, 0x00,
	0x40, 0x00, 0x00, 0x68, 0x8e, 0x80,
}

// MessageFrameType1074_2 is the bare body of a type 1074 message with no
// satellites observed - a minimal but well-formed MSM4 message.
var MessageFrameType1074_2 = []byte{
	0x43, 0x20, 0x02, 0x00, 0x00, 0x01, 0x90, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00,
}

// MessageType1074 is the same bare message body as MessageFrameType1074_1,
// used where a test just needs a message that is recognisably type 1074
// and not an MSM7.
var MessageType1074 = MessageFrameType1074_1

// FullFrameType1077 is a complete frame (leader, body and CRC) whose body
// starts with a type 1077 message type and is otherwise empty.  Unlike
// MessageFrameType1077 (a bare, leader-stripped MSM7 body), this is used
// where a decoder expects the leader to still be present.
var FullFrameType1077 = []byte{
	0xd3, 0x00, 0x13, 0x43, 0x50, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xf8, 0x05, 0x41,
}
