package ber

import (
	"strix.dev/der/asn1"
	"strix.dev/der/tlv"
)

// flatNode is one pre-order entry in the vector a [Parser] builds. depth is
// 1-based, with the root node at depth 1. encodedBytes is the whole TLV
// (identifier + length + content); dataBytes is only set for primitive
// nodes and is the content octets alone.
type flatNode struct {
	identifier   asn1.Tag
	constructed  bool
	depth        int
	encodedBytes []byte
	dataBytes    []byte
}

// Node is a read-only view of one entry in a parsed flat vector. It borrows
// from the vector built by the [Parser] that produced it and is only valid
// as long as that vector is reachable; copying a Node is cheap since it
// carries no owned memory.
type Node struct {
	nodes []flatNode
	index int
}

// Tag returns the identifier of n.
func (n Node) Tag() asn1.Tag {
	return n.nodes[n.index].identifier
}

// Constructed reports whether n's identifier had the constructed bit set.
func (n Node) Constructed() bool {
	return n.nodes[n.index].constructed
}

// Bytes returns the full TLV encoding of n, including its identifier and
// length octets.
func (n Node) Bytes() []byte {
	return n.nodes[n.index].encodedBytes
}

// Data returns the primitive content octets of n. It panics if n is
// constructed; callers should check [Node.Constructed] first, or use
// [Node.Children] for constructed content.
func (n Node) Data() []byte {
	if n.nodes[n.index].constructed {
		panic("ber: Data called on constructed node")
	}
	return n.nodes[n.index].dataBytes
}

// Raw returns n as a [RawValue], letting a caller inspect its identifier and
// content before deciding how (or whether) to decode it — useful for
// unrecognized tags or diagnostic output. For a constructed node, Bytes is
// its children's encoded octets, not a decoded value.
func (n Node) Raw() RawValue {
	fn := n.nodes[n.index]
	if !fn.constructed {
		return RawValue{Tag: fn.identifier, Constructed: false, Bytes: fn.dataBytes}
	}
	_, _, headerLen, err := tlv.DecodeIdentifier(fn.encodedBytes)
	if err != nil {
		panic("ber: re-parsing already-parsed identifier: " + err.Error())
	}
	_, lenLen, err := tlv.DecodeLength(fn.encodedBytes[headerLen:], tlv.Basic)
	if err != nil {
		panic("ber: re-parsing already-parsed length: " + err.Error())
	}
	return RawValue{Tag: fn.identifier, Constructed: true, Bytes: fn.encodedBytes[headerLen+lenLen:]}
}

// childEnd returns the flat index one past the last descendant of the node
// at index i — the first later index whose depth is <= depth[i], or
// len(nodes) if there is none.
func childEnd(nodes []flatNode, i int) int {
	d := nodes[i].depth
	for j := i + 1; j < len(nodes); j++ {
		if nodes[j].depth <= d {
			return j
		}
	}
	return len(nodes)
}

// Children returns an iterator over n's direct children. It panics if n is
// primitive.
func (n Node) Children() *Iterator {
	if !n.nodes[n.index].constructed {
		panic("ber: Children called on primitive node")
	}
	end := childEnd(n.nodes, n.index)
	return &Iterator{
		nodes:       n.nodes,
		cursor:      n.index + 1,
		end:         end,
		parentDepth: n.nodes[n.index].depth,
	}
}

// Iterator walks the direct children of a constructed [Node]. It is
// single-pass: advancing past a child also skips that child's entire
// subtree. An Iterator is cheap to copy, which lets a caller snapshot a
// position (for example, before attempting an optional element) and restore
// it on failure.
type Iterator struct {
	nodes       []flatNode
	cursor      int
	end         int
	parentDepth int
}

// Len reports the number of children remaining in it.
func (it *Iterator) Len() int {
	n := 0
	for i := it.cursor; i < it.end; i++ {
		if it.nodes[i].depth <= it.parentDepth+1 {
			n++
		}
	}
	return n
}

// Done reports whether it has no more children.
func (it *Iterator) Done() bool {
	return it.cursor >= it.end
}

// Peek returns the next child without advancing it. Peek panics if it is
// Done.
func (it *Iterator) Peek() Node {
	if it.Done() {
		panic("ber: Peek on exhausted iterator")
	}
	return Node{nodes: it.nodes, index: it.cursor}
}

// Next returns the next child and advances it past that child's entire
// subtree. Next panics if it is Done.
func (it *Iterator) Next() Node {
	if it.Done() {
		panic("ber: Next on exhausted iterator")
	}
	n := Node{nodes: it.nodes, index: it.cursor}
	it.cursor = childEnd(it.nodes, it.cursor)
	return n
}
