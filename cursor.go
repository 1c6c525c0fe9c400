package lazyxml

import "io"

// Tag returns the name of the chunk. It is defined for element open,
// close and self-closed tags and for processing instructions.
func (r Raw) Tag() (string, bool) {
	switch r.Kind {
	case RawElementOpen, RawElementClose, RawElementSelfClosed, RawProcessingInstruction:
	default:
		return "", false
	}
	buf := r.data
	i := r.Pos + 1
	for i < r.end() && (buf[i] == '/' || buf[i] == '?') {
		i++
	}
	return string(buf[i:nameEnd(buf, i)]), true
}

// EachAttribute calls fn for each name="value" span of the chunk
// without materializing a list, stopping early when fn returns false.
// The spans borrow from the source buffer and values are the raw
// bytes: entities are not resolved. Chunks that carry no attributes
// produce no calls.
func (r Raw) EachAttribute(fn func(key, value []byte) bool) error {
	switch r.Kind {
	case RawElementOpen, RawElementSelfClosed, RawProcessingInstruction, RawDeclaration:
	default:
		return nil
	}
	buf := r.data
	end := r.end() - 1
	if end > r.Pos && (buf[end-1] == '/' || buf[end-1] == '?') {
		end--
	}
	i := r.Pos + 1
	for i < end && (buf[i] == '/' || buf[i] == '?') {
		i++
	}
	i = nameEnd(buf, i)
	for {
		i = skipSpace(buf, i)
		if i >= end {
			return nil
		}
		if !isNameStart(buf[i]) {
			return &BadAttributeError{Pos: i}
		}
		keyStart := i
		keyEnd := nameEnd(buf, i)
		i = skipSpace(buf, keyEnd)
		if i >= end || buf[i] != '=' {
			return &BadAttributeError{Pos: keyStart}
		}
		i = skipSpace(buf, i+1)
		if i >= end || (buf[i] != '"' && buf[i] != '\'') {
			return &BadAttributeError{Pos: keyStart}
		}
		quote := buf[i]
		valStart := i + 1
		valEnd := indexAt(buf, quote, valStart)
		if valEnd == -1 || valEnd > end {
			return &BadAttributeError{Pos: keyStart}
		}
		if !fn(buf[keyStart:keyEnd], buf[valStart:valEnd]) {
			return nil
		}
		i = valEnd + 1
	}
}

// Attributes parses the name="value" pairs of the chunk. It is
// defined for element open and self-closed tags, processing
// instructions and the declaration; for every other kind it returns
// nil. Values are unescaped. Single or double quotes are accepted.
func (r Raw) Attributes() (Attributes, error) {
	var attrs Attributes
	err := r.EachAttribute(func(key, value []byte) bool {
		attrs.Set(string(key), Unescape(string(value)))
		return true
	})
	if err != nil {
		return nil, err
	}
	return attrs, nil
}

// Attribute returns the unescaped value of the named attribute,
// scanning the chunk without building the full list.
func (r Raw) Attribute(key string) (string, bool) {
	var out string
	var found bool
	_ = r.EachAttribute(func(k, v []byte) bool {
		if string(k) == key {
			out = Unescape(string(v))
			found = true
			return false
		}
		return true
	})
	return out, found
}

// Value returns the textual payload of the chunk. It is defined for
// text, CDATA, comment and DTD chunks. Text is unescaped; CDATA
// payloads are returned as-is; comment payloads are trimmed of
// surrounding whitespace but otherwise untouched. A DTD payload starts
// after the DOCTYPE keyword and the whitespace following it and runs
// up to the closing '>'; trailing whitespace is kept.
func (r Raw) Value() (string, bool) {
	buf := r.data
	switch r.Kind {
	case RawText:
		return Unescape(string(r.Bytes())), true
	case RawCData:
		return string(buf[r.Pos+9 : r.end()-3]), true
	case RawComment:
		inner := buf[r.Pos+4 : r.end()-3]
		s := skipSpace(inner, 0)
		if s == len(inner) {
			return "", true
		}
		e := skipSpaceBack(inner, len(inner)-1)
		return string(inner[s : e+1]), true
	case RawDTD:
		i := skipSpace(buf, nameEnd(buf, r.Pos+2))
		return string(buf[i : r.end()-1]), true
	}
	return "", false
}

// Children collects the chunks one level below r, stopping when the
// depth falls back to r's own level. It is defined for element open
// tags and the document; close tags are not children.
func (r Raw) Children() ([]Raw, error) {
	if r.Kind != RawElementOpen && r.Kind != RawDocument {
		return nil, nil
	}
	var out []Raw
	p := r
	for {
		n, err := p.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if n.Depth <= r.Depth {
			return out, nil
		}
		if n.Depth == r.Depth+1 && n.Kind != RawElementClose {
			out = append(out, n)
		}
		p = n
	}
}

// Root walks forward from r to the document's root element: the
// first element open or self-closed chunk at depth 1.
func (r Raw) Root() (Raw, bool) {
	var root Raw
	var found bool
	_ = r.Walk(func(n Raw) bool {
		if n.Depth == 1 && (n.Kind == RawElementOpen || n.Kind == RawElementSelfClosed) {
			root, found = n, true
			return false
		}
		return true
	})
	return root, found
}

// Parent walks backwards to the first chunk strictly above r,
// returning the document raw at the top. It reports false on the
// document itself.
func (r Raw) Parent() (Raw, bool) {
	if r.Kind == RawDocument {
		return Raw{}, false
	}
	p := r
	for {
		q, err := p.Prev()
		if err != nil {
			return Raw{}, false
		}
		if q.Kind == RawDocument || q.Depth < r.Depth {
			return q, true
		}
		p = q
	}
}
