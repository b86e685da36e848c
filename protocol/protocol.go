// Package protocol carries the firmware's init report to a host.
//
// Framing follows the Klipper transport: each frame is
//
//	len | 0x10|seq | payload | crc16 hi | crc16 lo | 0x7E
//
// and the payload is a VLQ message id followed by VLQ arguments. The
// firmware prefixes every frame with a sync byte so a host can lock on in
// the middle of a stream that also carries plain debug text.
package protocol

import "errors"

const (
	MessageHeaderSize  = 2
	MessageTrailerSize = 3
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessagePayloadMax  = MessageLengthMax - MessageLengthMin
	MessageValueSync   = 0x7E
	MessageDest        = 0x10
	MessageSeqMask     = 0x0F
)

var (
	ErrBufferTooSmall   = errors.New("buffer too small for VLQ")
	ErrFrameTooLarge    = errors.New("payload does not fit in one frame")
	ErrUnknownMessage   = errors.New("unknown message id")
	ErrIncompleteReport = errors.New("report ended before config message")
)
