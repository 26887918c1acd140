package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
)

// record writes entities in the protobuf wire format without generated code.
// Field numbers are part of the on-disk format and must never be reused.
type record struct {
	b []byte
}

func (r *record) str(num protowire.Number, v string) {
	if v == "" {
		return
	}
	r.b = protowire.AppendTag(r.b, num, protowire.BytesType)
	r.b = protowire.AppendString(r.b, v)
}

func (r *record) bytes(num protowire.Number, v []byte) {
	r.b = protowire.AppendTag(r.b, num, protowire.BytesType)
	r.b = protowire.AppendBytes(r.b, v)
}

func (r *record) id(num protowire.Number, v uuid.UUID) {
	if v == uuid.Nil {
		return
	}
	r.b = protowire.AppendTag(r.b, num, protowire.BytesType)
	r.b = protowire.AppendBytes(r.b, v[:])
}

func (r *record) varint(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	r.b = protowire.AppendTag(r.b, num, protowire.VarintType)
	r.b = protowire.AppendVarint(r.b, v)
}

func (r *record) time(num protowire.Number, t time.Time) {
	if t.IsZero() {
		return
	}
	r.varint(num, uint64(t.UnixNano()))
}

func (r *record) bool(num protowire.Number, v bool) {
	if v {
		r.varint(num, 1)
	}
}

// fields is a decoded record. The last occurrence of a field wins.
type fields struct {
	bytes   map[protowire.Number][]byte
	varints map[protowire.Number]uint64
}

func decode(b []byte) (fields, error) {
	f := fields{
		bytes:   make(map[protowire.Number][]byte),
		varints: make(map[protowire.Number]uint64),
	}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fields{}, fmt.Errorf("decode tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch typ {
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return fields{}, fmt.Errorf("decode field %d: %w", num, protowire.ParseError(n))
			}
			f.bytes[num] = v
			b = b[n:]
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fields{}, fmt.Errorf("decode field %d: %w", num, protowire.ParseError(n))
			}
			f.varints[num] = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fields{}, fmt.Errorf("skip field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return f, nil
}

func (f fields) str(num protowire.Number) string {
	return string(f.bytes[num])
}

func (f fields) id(num protowire.Number) uuid.UUID {
	v, ok := f.bytes[num]
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.FromBytes(v)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func (f fields) optionalID(num protowire.Number) *uuid.UUID {
	id := f.id(num)
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func (f fields) time(num protowire.Number) time.Time {
	v, ok := f.varints[num]
	if !ok {
		return time.Time{}
	}
	return time.Unix(0, int64(v)).UTC()
}

func (f fields) optionalTime(num protowire.Number) *time.Time {
	if _, ok := f.varints[num]; !ok {
		return nil
	}
	t := f.time(num)
	return &t
}

func (f fields) bool(num protowire.Number) bool {
	return f.varints[num] != 0
}

// tsKey pads a timestamp to 19 digits so lexicographic order is chronological.
func tsKey(t time.Time) string {
	return fmt.Sprintf("%019d", t.UnixNano())
}
