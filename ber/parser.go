package ber

import (
	"strix.dev/der/asn1"
	"strix.dev/der/tlv"
)

// eocTag is the reserved Universal, primitive, zero-length tag used as the
// end-of-contents sentinel in indefinite-length encodings.
var eocTag = asn1.Tag{Class: asn1.ClassUniversal, Number: asn1.TagReserved}

// Parser builds a flat, pre-order vector of nodes from a byte slice. A
// Parser is single-use: construct one with [NewParser], call [Parser.Parse]
// once, and discard it.
type Parser struct {
	rule  tlv.RuleSet
	input []byte
	nodes []flatNode
}

// NewParser returns a Parser over input that applies the given rule set's
// length-octet strictness. The identifier syntax is the same under both
// rule sets.
func NewParser(input []byte, rule tlv.RuleSet) *Parser {
	return &Parser{rule: rule, input: input}
}

// Parse parses the entirety of p's input as a single root value and returns
// a [Node] view of it. The whole input must be consumed by exactly one
// root node; trailing bytes fail with [asn1.ErrInvalidObject].
func (p *Parser) Parse() (Node, error) {
	cursor := 0
	if err := p.parseOne(&cursor, 1); err != nil {
		return Node{}, err
	}
	if cursor != len(p.input) {
		return Node{}, asn1.NewError(asn1.ErrorKindInvalidObject, "trailing bytes after root value")
	}
	if len(p.nodes) == 0 {
		return Node{}, asn1.NewError(asn1.ErrorKindInvalidObject, "empty input")
	}
	return Node{nodes: p.nodes, index: 0}, nil
}

// Parse decodes the single root value in input under rule and returns a
// [Node] view of it. It is a convenience wrapper around [NewParser] and
// [Parser.Parse] for callers that do not need to reuse the parser's flat
// vector directly.
func Parse(input []byte, rule tlv.RuleSet) (Node, error) {
	return NewParser(input, rule).Parse()
}

// parseOne parses one node (and, if constructed, its entire subtree)
// starting at *cursor, appending to p.nodes. depth is the depth to record
// for this node; children (if any) are parsed at depth+1.
func (p *Parser) parseOne(cursor *int, depth int) error {
	if depth > MaxDepth {
		return asn1.NewError(asn1.ErrorKindInvalidObject, "nesting depth exceeds MaxDepth")
	}
	if len(p.nodes) >= MaxNodes {
		return asn1.NewError(asn1.ErrorKindInvalidObject, "node count exceeds MaxNodes")
	}

	start := *cursor
	rest := p.input[start:]
	tag, constructed, idLen, err := tlv.DecodeIdentifier(rest)
	if err != nil {
		return err
	}
	length, lenLen, err := tlv.DecodeLength(rest[idLen:], p.rule)
	if err != nil {
		return err
	}
	headerLen := idLen + lenLen

	if length == tlv.LengthIndefinite {
		if !constructed {
			return asn1.NewError(asn1.ErrorKindUnsupportedLength, "indefinite length on primitive value")
		}
		return p.parseIndefinite(cursor, depth, tag, start, headerLen)
	}

	if length < 0 || length > len(rest)-headerLen {
		return asn1.WrapError(asn1.ErrorKindTruncatedField, "content runs past end of input", nil)
	}
	end := start + headerLen + length
	node := flatNode{
		identifier:   tag,
		constructed:  constructed,
		depth:        depth,
		encodedBytes: p.input[start:end],
	}
	if !constructed {
		node.dataBytes = p.input[start+headerLen : end]
	}
	idx := len(p.nodes)
	p.nodes = append(p.nodes, node)
	*cursor = start + headerLen

	if constructed {
		for *cursor < end {
			if err := p.parseOne(cursor, depth+1); err != nil {
				return err
			}
		}
		if *cursor != end {
			return asn1.WrapError(asn1.ErrorKindTruncatedField, "child runs past end of constructed content", nil)
		}
		p.nodes[idx].encodedBytes = p.input[start:end]
	}
	*cursor = end
	return nil
}

// parseIndefinite handles a constructed, indefinite-length value under BER:
// children are parsed one after another at depth+1 until one of them is the
// end-of-contents sentinel (Universal 0, primitive, zero-length), which is
// then popped from the flat vector.
func (p *Parser) parseIndefinite(cursor *int, depth int, tag asn1.Tag, start, headerLen int) error {
	idx := len(p.nodes)
	p.nodes = append(p.nodes, flatNode{identifier: tag, constructed: true, depth: depth})
	*cursor = start + headerLen

	for {
		if *cursor >= len(p.input) {
			return asn1.WrapError(asn1.ErrorKindTruncatedField, "unterminated indefinite-length value", nil)
		}
		childIdx := len(p.nodes)
		if err := p.parseOne(cursor, depth+1); err != nil {
			return err
		}
		last := p.nodes[childIdx]
		if last.identifier == eocTag && !last.constructed && len(last.dataBytes) == 0 {
			p.nodes = p.nodes[:childIdx]
			p.nodes[idx].encodedBytes = p.input[start:*cursor]
			return nil
		}
	}
}
