// Package codec encodes the three persisted record shapes to their fixed
// binary layouts: documents, the document name index, and settings.
//
// The layouts are closed and carry no version byte; records written by
// earlier builds of the device decode unchanged. Decoding is strict and
// all-or-nothing: a truncated record, an invalid UTF-8 span, or an
// out-of-range settings byte yields ErrMalformedRecord and no partial
// result. Length fields are validated against the remaining buffer before
// any allocation, since records may come back corrupted from storage.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

// ErrMalformedRecord reports corrupt or truncated bytes during decode.
// Callers decide per record whether to discard or refuse to load; other
// records are unaffected.
var ErrMalformedRecord = errors.New("codec: malformed record")

// EncodeDocument lays out a document record:
//
//	title_length (u16, little-endian) | title (UTF-8) | body (UTF-8, rest)
//
// The body runs to the end of the record; there is no body length field.
func EncodeDocument(title, body string) ([]byte, error) {
	if len(title) > math.MaxUint16 {
		return nil, fmt.Errorf("codec: title of %d bytes exceeds record limit", len(title))
	}
	buf := make([]byte, 0, 2+len(title)+len(body))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(title)))
	buf = append(buf, title...)
	buf = append(buf, body...)
	return buf, nil
}

// DecodeDocument reads a document record back into title and body.
func DecodeDocument(data []byte) (title, body string, err error) {
	if len(data) < 2 {
		return "", "", fmt.Errorf("codec: document record of %d bytes: %w", len(data), ErrMalformedRecord)
	}
	n := int(binary.LittleEndian.Uint16(data))
	if n > len(data)-2 {
		return "", "", fmt.Errorf("codec: title length %d exceeds record: %w", n, ErrMalformedRecord)
	}
	title = string(data[2 : 2+n])
	body = string(data[2+n:])
	if !utf8.ValidString(title) || !utf8.ValidString(body) {
		return "", "", fmt.Errorf("codec: document record is not UTF-8: %w", ErrMalformedRecord)
	}
	return title, body, nil
}

// EncodeIndex lays out the document name index:
//
//	count (u32, little-endian) | count x { name_length (u16) | name (UTF-8) }
//
// Order is preserved as written.
func EncodeIndex(names []string) ([]byte, error) {
	size := 4
	for _, name := range names {
		if len(name) > math.MaxUint16 {
			return nil, fmt.Errorf("codec: name of %d bytes exceeds record limit", len(name))
		}
		size += 2 + len(name)
	}
	buf := make([]byte, 0, size)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(names)))
	for _, name := range names {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(len(name)))
		buf = append(buf, name...)
	}
	return buf, nil
}

// DecodeIndex reads the name index back. The declared count and every
// declared length are checked against the remaining bytes before use.
func DecodeIndex(data []byte) ([]string, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("codec: index record of %d bytes: %w", len(data), ErrMalformedRecord)
	}
	count := binary.LittleEndian.Uint32(data)
	rest := data[4:]

	// Each entry takes at least two bytes, which bounds a corrupt count
	// before any allocation happens.
	if uint64(count) > uint64(len(rest)/2) {
		return nil, fmt.Errorf("codec: index count %d exceeds record: %w", count, ErrMalformedRecord)
	}

	names := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		if len(rest) < 2 {
			return nil, fmt.Errorf("codec: index truncated at entry %d: %w", i, ErrMalformedRecord)
		}
		n := int(binary.LittleEndian.Uint16(rest))
		rest = rest[2:]
		if n > len(rest) {
			return nil, fmt.Errorf("codec: name length %d exceeds record: %w", n, ErrMalformedRecord)
		}
		name := string(rest[:n])
		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("codec: index entry %d is not UTF-8: %w", i, ErrMalformedRecord)
		}
		names = append(names, name)
		rest = rest[n:]
	}
	return names, nil
}
