package lazyxml

import (
	"bytes"
	"io"
)

// RawKind classifies one lexical chunk of a document.
type RawKind uint8

const (
	// RawDocument is the synthetic chunk before the first real one.
	RawDocument RawKind = iota
	// RawText is character data between tags.
	RawText
	// RawComment is a <!-- --> section.
	RawComment
	// RawCData is a <![CDATA[ ]]> section.
	RawCData
	// RawProcessingInstruction is <?target ...?> with target != "xml".
	RawProcessingInstruction
	// RawDeclaration is <?xml ...?>.
	RawDeclaration
	// RawDTD is <!DOCTYPE ...>.
	RawDTD
	// RawElementOpen is <tag ...>.
	RawElementOpen
	// RawElementClose is </tag>.
	RawElementClose
	// RawElementSelfClosed is <tag .../>.
	RawElementSelfClosed
)

var rawKindNames = [...]string{
	RawDocument:              "Document",
	RawText:                  "Text",
	RawComment:               "Comment",
	RawCData:                 "CData",
	RawProcessingInstruction: "ProcessingInstruction",
	RawDeclaration:           "Declaration",
	RawDTD:                   "DTD",
	RawElementOpen:           "ElementOpen",
	RawElementClose:          "ElementClose",
	RawElementSelfClosed:     "ElementSelfClosed",
}

func (k RawKind) String() string {
	if int(k) < len(rawKindNames) {
		return rawKindNames[k]
	}
	return "Unknown"
}

// NodeKind maps the lexical kind to its materialized counterpart.
// RawElementOpen, RawElementClose and RawElementSelfClosed all map
// to ElementNode.
func (k RawKind) NodeKind() NodeKind {
	switch k {
	case RawText:
		return TextNode
	case RawComment:
		return CommentNode
	case RawCData:
		return CDataNode
	case RawProcessingInstruction:
		return ProcessingInstructionNode
	case RawDeclaration:
		return DeclarationNode
	case RawDTD:
		return DTDNode
	case RawElementOpen, RawElementClose, RawElementSelfClosed:
		return ElementNode
	}
	return DocumentNode
}

// A Raw is a lightweight descriptor of one lexical chunk: its kind,
// its nesting depth from the synthetic document (depth 0), and the
// byte span [Pos, Pos+Len) it occupies in the source buffer. A Raw
// borrows from the buffer handed to Parse and must not outlive it.
type Raw struct {
	Kind  RawKind
	Depth int
	Pos   int
	Len   int

	data []byte
}

// Bytes returns the exact byte span of the chunk.
func (r Raw) Bytes() []byte {
	return r.data[r.Pos : r.Pos+r.Len]
}

// Source returns the underlying buffer the chunk borrows from.
func (r Raw) Source() []byte {
	return r.data
}

func (r Raw) String() string {
	return string(r.Bytes())
}

func (r Raw) end() int {
	return r.Pos + r.Len
}

var (
	commentEnd = []byte("-->")
	cdataEnd   = []byte("]]>")
	piEnd      = []byte("?>")
	declName   = []byte("xml")

	commentStart = []byte("<!--")
	cdataStart   = []byte("<![CDATA[")
	piStart      = []byte("<?")
)

// Next returns the chunk immediately following r, or io.EOF when the
// input is exhausted. It is a pure function of the position: calling
// it twice on the same Raw yields the same result.
func (r Raw) Next() (Raw, error) {
	buf := r.data
	i := r.end()
	if i >= len(buf) {
		return Raw{}, io.EOF
	}
	depth := r.Depth
	if r.Kind == RawDocument || r.Kind == RawElementOpen {
		depth++
	}
	if buf[i] != '<' {
		// Character data runs to the byte before the next '<'.
		j := indexAt(buf, '<', i)
		if j == -1 {
			j = len(buf)
		}
		s := skipSpace(buf, i)
		e := skipSpaceBack(buf, j-1)
		switch {
		case s > e:
			// Whitespace-only run: significant only under
			// xml:space="preserve", skipped otherwise.
			if r.spacePreserved() {
				return Raw{Kind: RawText, Depth: depth, Pos: i, Len: j - i, data: buf}, nil
			}
			if j >= len(buf) {
				return Raw{}, io.EOF
			}
			i = j
		case s > i || e < j-1:
			if r.spacePreserved() {
				return Raw{Kind: RawText, Depth: depth, Pos: i, Len: j - i, data: buf}, nil
			}
			return Raw{Kind: RawText, Depth: depth, Pos: s, Len: e + 1 - s, data: buf}, nil
		default:
			return Raw{Kind: RawText, Depth: depth, Pos: i, Len: j - i, data: buf}, nil
		}
	}
	if i+1 >= len(buf) {
		return Raw{}, &MalformedTokenError{Construct: "element", Pos: i}
	}
	switch buf[i+1] {
	case '!':
		if i+2 >= len(buf) {
			return Raw{}, &MalformedTokenError{Construct: "markup", Pos: i}
		}
		switch buf[i+2] {
		case '-':
			j := searchAt(buf, commentEnd, i+4)
			if j == -1 {
				return Raw{}, &MalformedTokenError{Construct: "comment", Pos: i}
			}
			return Raw{Kind: RawComment, Depth: depth, Pos: i, Len: j + 3 - i, data: buf}, nil
		case '[':
			j := searchAt(buf, cdataEnd, i+9)
			if j == -1 {
				return Raw{}, &MalformedTokenError{Construct: "CDATA", Pos: i}
			}
			return Raw{Kind: RawCData, Depth: depth, Pos: i, Len: j + 3 - i, data: buf}, nil
		case 'D':
			j, err := dtdEnd(buf, i)
			if err != nil {
				return Raw{}, err
			}
			return Raw{Kind: RawDTD, Depth: depth, Pos: i, Len: j + 1 - i, data: buf}, nil
		}
		return Raw{}, &UnknownMarkupError{Pos: i}
	case '?':
		j := searchAt(buf, piEnd, i+2)
		if j == -1 {
			return Raw{}, &MalformedTokenError{Construct: "processing instruction", Pos: i}
		}
		kind := RawProcessingInstruction
		if bytes.Equal(buf[i+2:nameEnd(buf, i+2)], declName) {
			kind = RawDeclaration
		}
		return Raw{Kind: kind, Depth: depth, Pos: i, Len: j + 2 - i, data: buf}, nil
	case '/':
		j := indexAt(buf, '>', i)
		if j == -1 {
			return Raw{}, &MalformedTokenError{Construct: "close tag", Pos: i}
		}
		return Raw{Kind: RawElementClose, Depth: depth - 1, Pos: i, Len: j + 1 - i, data: buf}, nil
	}
	j := indexAt(buf, '>', i)
	if j == -1 {
		return Raw{}, &MalformedTokenError{Construct: "element", Pos: i}
	}
	kind := RawElementOpen
	if buf[j-1] == '/' {
		kind = RawElementSelfClosed
	}
	return Raw{Kind: kind, Depth: depth, Pos: i, Len: j + 1 - i, data: buf}, nil
}

// dtdEnd finds the '>' closing a DOCTYPE starting at i. The internal
// subset may nest markup declarations, so the end is the first '>'
// balancing every '<' seen so far.
func dtdEnd(buf []byte, i int) (int, error) {
	var opens, closes int
	for j := i; j < len(buf); j++ {
		switch buf[j] {
		case '<':
			opens++
		case '>':
			closes++
			if closes == opens {
				return j, nil
			}
		}
	}
	return 0, &MalformedTokenError{Construct: "DOCTYPE", Pos: i}
}

// Prev returns the chunk immediately preceding r, the synthetic
// document raw when nothing precedes it, or io.EOF when called on the
// document itself.
func (r Raw) Prev() (Raw, error) {
	if r.Kind == RawDocument {
		return Raw{}, io.EOF
	}
	buf := r.data
	j := skipSpaceBack(buf, r.Pos-1)
	if j < 0 {
		return Raw{Kind: RawDocument, data: buf}, nil
	}
	out, err := classifyBack(buf, j)
	if err != nil {
		return Raw{}, err
	}
	out.Depth = r.Depth
	if out.Kind != RawElementOpen && r.Kind == RawElementClose {
		out.Depth++
	} else if out.Kind == RawElementOpen && r.Kind != RawElementClose {
		out.Depth--
	}
	return out, nil
}

// classifyBack identifies the chunk whose last byte is at j from its
// trailing marker.
func classifyBack(buf []byte, j int) (Raw, error) {
	if buf[j] != '>' {
		// Text: anchored just past the previous '>'. A bare '>'
		// inside the run shortens the reconstructed chunk; forward
		// scans are authoritative for such input.
		i := skipSpace(buf, lastIndexAt(buf, '>', j)+1)
		return Raw{Kind: RawText, Pos: i, Len: j + 1 - i, data: buf}, nil
	}
	if j == 0 {
		return Raw{}, &MalformedTokenError{Construct: "element", Pos: j}
	}
	switch {
	case j >= 2 && buf[j-1] == '-' && buf[j-2] == '-':
		i := lastSearchAt(buf, commentStart, j)
		if i == -1 {
			return Raw{}, &MalformedTokenError{Construct: "comment", Pos: j}
		}
		return Raw{Kind: RawComment, Pos: i, Len: j + 1 - i, data: buf}, nil
	case j >= 2 && buf[j-1] == ']' && buf[j-2] == ']':
		i := lastSearchAt(buf, cdataStart, j)
		if i == -1 {
			return Raw{}, &MalformedTokenError{Construct: "CDATA", Pos: j}
		}
		return Raw{Kind: RawCData, Pos: i, Len: j + 1 - i, data: buf}, nil
	case buf[j-1] == '?':
		i := lastSearchAt(buf, piStart, j)
		if i == -1 {
			return Raw{}, &MalformedTokenError{Construct: "processing instruction", Pos: j}
		}
		kind := RawProcessingInstruction
		if bytes.Equal(buf[i+2:nameEnd(buf, i+2)], declName) {
			kind = RawDeclaration
		}
		return Raw{Kind: kind, Pos: i, Len: j + 1 - i, data: buf}, nil
	case buf[j-1] == '/':
		i := lastIndexAt(buf, '<', j)
		if i == -1 {
			return Raw{}, &MalformedTokenError{Construct: "element", Pos: j}
		}
		return Raw{Kind: RawElementSelfClosed, Pos: i, Len: j + 1 - i, data: buf}, nil
	}
	i := lastIndexAt(buf, '<', j)
	if i == -1 {
		return Raw{}, &MalformedTokenError{Construct: "element", Pos: j}
	}
	if i+1 < len(buf) && buf[i+1] == '/' {
		return Raw{Kind: RawElementClose, Pos: i, Len: j + 1 - i, data: buf}, nil
	}
	if i+1 < len(buf) && buf[i+1] == '!' {
		// DOCTYPE with an internal subset ends in '>' like a plain
		// element but spans nested declarations; extend backwards
		// until '<' and '>' counts balance.
		for bytes.Count(buf[i:j+1], []byte("<")) != bytes.Count(buf[i:j+1], []byte(">")) {
			prev := lastIndexAt(buf, '<', i-1)
			if prev == -1 {
				return Raw{}, &MalformedTokenError{Construct: "DOCTYPE", Pos: j}
			}
			i = prev
		}
		return Raw{Kind: RawDTD, Pos: i, Len: j + 1 - i, data: buf}, nil
	}
	return Raw{Kind: RawElementOpen, Pos: i, Len: j + 1 - i, data: buf}, nil
}

// spacePreserved reports whether xml:space="preserve" is in effect
// for content immediately following r. It walks open ancestors
// backwards until an explicit xml:space value decides the mode.
func (r Raw) spacePreserved() bool {
	skip := 0
	p := r
	for {
		switch p.Kind {
		case RawDocument:
			return false
		case RawElementClose:
			skip++
		case RawElementOpen:
			if skip > 0 {
				skip--
			} else if v, ok := p.Attribute("xml:space"); ok {
				return v == "preserve"
			}
		}
		var err error
		p, err = p.Prev()
		if err != nil {
			return false
		}
	}
}

// Walk calls fn for every chunk after r in document order, stopping
// at the end of input, on a tokenizer error, or when fn returns false.
func (r Raw) Walk(fn func(Raw) bool) error {
	p := r
	for {
		n, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !fn(n) {
			return nil
		}
		p = n
	}
}
