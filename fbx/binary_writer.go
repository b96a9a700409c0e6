package fbx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Binary FBX writer (version 7.4 layout, uncompressed arrays).

const binaryVersion = 7400

// 13 zero bytes mark the end of a child list.
var nullRecord = make([]byte, 13)

var footerMagic = []byte{
	0xfa, 0xbc, 0xab, 0x09, 0xd0, 0xc8, 0xd4, 0x66, 0xb1, 0x76, 0xfb, 0x83, 0x1c, 0xf7, 0x26, 0x7e,
}

type binaryWriter struct {
	w   io.Writer
	pos uint32
	err error
}

func (w *binaryWriter) write(v interface{}) {
	if w.err != nil {
		return
	}
	w.err = binary.Write(w.w, binary.LittleEndian, v)
	if w.err == nil {
		w.pos += uint32(binary.Size(v))
	}
}

func (w *binaryWriter) writeBytes(b []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(b)
	if w.err == nil {
		w.pos += uint32(len(b))
	}
}

func writeAttr(buf *bytes.Buffer, a *Attribute) error {
	putArray := func(typ byte, count int, data interface{}) {
		buf.WriteByte(typ)
		binary.Write(buf, binary.LittleEndian, uint32(count))
		binary.Write(buf, binary.LittleEndian, uint32(0)) // encoding: raw
		binary.Write(buf, binary.LittleEndian, uint32(binary.Size(data)))
		binary.Write(buf, binary.LittleEndian, data)
	}
	switch v := a.Value.(type) {
	case bool:
		b := byte(0)
		if v {
			b = 1
		}
		buf.WriteByte('C')
		buf.WriteByte(b)
	case byte:
		buf.WriteByte('C')
		buf.WriteByte(v)
	case int16:
		buf.WriteByte('Y')
		binary.Write(buf, binary.LittleEndian, v)
	case uint16:
		buf.WriteByte('Y')
		binary.Write(buf, binary.LittleEndian, v)
	case int:
		buf.WriteByte('I')
		binary.Write(buf, binary.LittleEndian, int32(v))
	case int32:
		buf.WriteByte('I')
		binary.Write(buf, binary.LittleEndian, v)
	case uint32:
		buf.WriteByte('I')
		binary.Write(buf, binary.LittleEndian, v)
	case int64:
		buf.WriteByte('L')
		binary.Write(buf, binary.LittleEndian, v)
	case uint64:
		buf.WriteByte('L')
		binary.Write(buf, binary.LittleEndian, v)
	case float32:
		buf.WriteByte('F')
		binary.Write(buf, binary.LittleEndian, v)
	case float64:
		buf.WriteByte('D')
		binary.Write(buf, binary.LittleEndian, v)
	case string:
		buf.WriteByte('S')
		binary.Write(buf, binary.LittleEndian, uint32(len(v)))
		buf.WriteString(v)
	case []byte:
		if a.ArraySize > 0 {
			putArray('b', len(v), v)
			break
		}
		buf.WriteByte('R')
		binary.Write(buf, binary.LittleEndian, uint32(len(v)))
		buf.Write(v)
	case []int32:
		putArray('i', len(v), v)
	case []int64:
		putArray('l', len(v), v)
	case []float32:
		putArray('f', len(v), v)
	case []float64:
		putArray('d', len(v), v)
	default:
		return fmt.Errorf("unsupported attribute value: %T", a.Value)
	}
	return nil
}

func (w *binaryWriter) writeNode(n *Node) {
	if w.err != nil {
		return
	}
	var attrs bytes.Buffer
	for _, a := range n.Attributes {
		if err := writeAttr(&attrs, a); err != nil {
			w.err = err
			return
		}
	}

	headerLen := uint32(4 + 4 + 4 + 1 + len(n.Name))
	childrenStart := w.pos + headerLen + uint32(attrs.Len())

	// Children have to be serialized first: the record header
	// carries the absolute end offset of the whole node.
	var children bytes.Buffer
	cw := &binaryWriter{w: &children, pos: childrenStart}
	for _, c := range n.Children {
		cw.writeNode(c)
	}
	if cw.err != nil {
		w.err = cw.err
		return
	}
	if len(n.Children) > 0 || len(n.Attributes) == 0 {
		cw.writeBytes(nullRecord)
	}

	w.write(cw.pos) // end offset
	w.write(uint32(len(n.Attributes)))
	w.write(uint32(attrs.Len()))
	w.write(uint8(len(n.Name)))
	w.writeBytes([]byte(n.Name))
	w.writeBytes(attrs.Bytes())
	w.writeBytes(children.Bytes())
}

func (w *binaryWriter) writeFooter() {
	w.writeBytes(nullRecord)
	w.writeBytes(footerMagic)
	for w.pos%16 != 0 {
		w.writeBytes([]byte{0})
	}
	w.writeBytes(make([]byte, 4))
	w.write(uint32(binaryVersion))
	w.writeBytes(make([]byte, 120))
	w.writeBytes([]byte{
		0xf8, 0x5a, 0x8c, 0x6a, 0xde, 0xf5, 0xd9, 0x7e, 0xec, 0xe9, 0x0c, 0xe3, 0x75, 0x8f, 0x29, 0x0b,
	})
}

// WriteBinary writes the raw node tree of doc as a binary FBX stream.
func WriteBinary(doc *Document, w io.Writer) error {
	bw := &binaryWriter{w: w}
	bw.writeBytes([]byte(binaryMagic))
	bw.writeBytes([]byte{0x00, 0x1a, 0x00})
	bw.write(uint32(binaryVersion))

	for _, n := range doc.RawNode.Children {
		bw.writeNode(n)
	}
	bw.writeFooter()
	return bw.err
}
