package dat

import (
	"encoding/binary"
	"fmt"
)

// Serialized layout, all integers little-endian:
//
//	header:  uint32 length | uint32 capacity | uint32 element size (20)
//	nodes:   capacity records of
//	         int32 base | int32 check | int32 prev | int32 next | int32 son
//
// Every allocated slot is written, free ones included. A terminal node is
// written with a negated base.
const (
	headerSize = 12
	nodeSize   = 20
)

// SerializedLen returns the number of bytes Serialize writes.
func (d *DAT) SerializedLen() int {
	return headerSize + d.nodes.Cap()*nodeSize
}

// Serialize writes d to buf and returns the number of bytes written.
func (d *DAT) Serialize(buf []byte) (int, error) {
	size := d.SerializedLen()
	if len(buf) < size {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, size, len(buf))
	}
	le := binary.LittleEndian
	le.PutUint32(buf[0:], uint32(d.nodes.Len()))
	le.PutUint32(buf[4:], uint32(d.nodes.Cap()))
	le.PutUint32(buf[8:], nodeSize)
	off := headerSize
	for i := range d.nodes.data {
		putNode(buf[off:off+nodeSize], &d.nodes.data[i])
		off += nodeSize
	}
	return size, nil
}

func putNode(b []byte, n *Node) {
	le := binary.LittleEndian
	base := n.Base
	if n.Terminal {
		base = -base
	}
	le.PutUint32(b[0:], uint32(base))
	le.PutUint32(b[4:], uint32(n.Check))
	le.PutUint32(b[8:], uint32(n.Prev))
	le.PutUint32(b[12:], uint32(n.Next))
	le.PutUint32(b[16:], uint32(n.Son))
}

func getNode(b []byte) Node {
	le := binary.LittleEndian
	n := Node{
		Base:  int32(le.Uint32(b[0:])),
		Check: int32(le.Uint32(b[4:])),
		Prev:  int32(le.Uint32(b[8:])),
		Next:  int32(le.Uint32(b[12:])),
		Son:   int32(le.Uint32(b[16:])),
	}
	if n.Base < 0 {
		n.Base = -n.Base
		n.Terminal = true
	}
	return n
}

// Deserialize restores a trie written by Serialize. The restored trie is
// verified; a buffer failing verification yields ErrMalformed.
func Deserialize(buf []byte) (*DAT, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: header truncated", ErrMalformed)
	}
	le := binary.LittleEndian
	length := int64(le.Uint32(buf[0:]))
	capacity := int64(le.Uint32(buf[4:]))
	elemSize := le.Uint32(buf[8:])
	if elemSize != nodeSize {
		return nil, fmt.Errorf("%w: element size %d, expected %d", ErrMalformed, elemSize, nodeSize)
	}
	if length < 2 || length > capacity || capacity > int64(maxSlots) {
		return nil, fmt.Errorf("%w: length %d, capacity %d", ErrMalformed, length, capacity)
	}
	if int64(len(buf)) < headerSize+capacity*nodeSize {
		return nil, fmt.Errorf("%w: %d node records announced, buffer holds %d bytes",
			ErrMalformed, capacity, len(buf))
	}
	d := &DAT{nodes: withCapacity[Node](int(length), int(capacity))}
	off := headerSize
	for i := range d.nodes.data {
		d.nodes.data[i] = getNode(buf[off : off+nodeSize])
		if int64(i) >= length && d.nodes.data[i] != (Node{}) {
			return nil, fmt.Errorf("%w: slot %d beyond length is not zero", ErrMalformed, i)
		}
		off += nodeSize
	}
	if err := d.Verify(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return d, nil
}

// maxSlots bounds the node array so that every index fits into an int32.
const maxSlots = 1<<31 - 1

// MarshalBinary implements encoding.BinaryMarshaler.
func (d *DAT) MarshalBinary() ([]byte, error) {
	buf := make([]byte, d.SerializedLen())
	_, err := d.Serialize(buf)
	return buf, err
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *DAT) UnmarshalBinary(data []byte) error {
	restored, err := Deserialize(data)
	if err != nil {
		return err
	}
	*d = *restored
	return nil
}
