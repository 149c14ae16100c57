// Package wire frames binary values over a byte stream.
//
// Fixed framing writes the encoded value as is; both sides know its size.
// Variable framing prefixes the encoded value with its length as an 8-byte
// little-endian unsigned integer.
package wire

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/dayanaadylkhanova/tcp-wow/internal/entity"
)

// DefaultMaxVarsize bounds the payload size ReceiveVarsize will allocate.
const DefaultMaxVarsize = 1 << 20

var ErrDecode = errors.New("decode")

type Transport struct {
	rw         io.ReadWriter
	maxVarsize uint64
}

type Option func(*Transport)

func WithMaxVarsize(n uint64) Option {
	return func(t *Transport) { t.maxVarsize = n }
}

func New(rw io.ReadWriter, opts ...Option) *Transport {
	t := &Transport{rw: rw, maxVarsize: DefaultMaxVarsize}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *Transport) Send(v encoding.BinaryMarshaler) error {
	data, err := v.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := t.rw.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (t *Transport) SendWithVarsize(v encoding.BinaryMarshaler) error {
	data, err := v.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	frame := make([]byte, entity.LengthPrefixSize, entity.LengthPrefixSize+len(data))
	binary.LittleEndian.PutUint64(frame, uint64(len(data)))
	frame = append(frame, data...)
	if _, err := t.rw.Write(frame); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Receive reads exactly size bytes and decodes them into v.
func (t *Transport) Receive(size int, v encoding.BinaryUnmarshaler) error {
	buf := make([]byte, size)
	if _, err := io.ReadFull(t.rw, buf); err != nil {
		return fmt.Errorf("read %d bytes: %w", size, err)
	}
	if err := v.UnmarshalBinary(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

func (t *Transport) ReceiveVarsize(v encoding.BinaryUnmarshaler) error {
	var prefix [entity.LengthPrefixSize]byte
	if _, err := io.ReadFull(t.rw, prefix[:]); err != nil {
		return fmt.Errorf("read length prefix: %w", err)
	}
	n := binary.LittleEndian.Uint64(prefix[:])
	if n > t.maxVarsize {
		return fmt.Errorf("%w: frame of %d bytes exceeds limit %d", ErrDecode, n, t.maxVarsize)
	}
	return t.Receive(int(n), v)
}
