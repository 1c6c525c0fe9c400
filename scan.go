package lazyxml

import "bytes"

// isSpace reports whether b is insignificant XML whitespace.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// isNameStart reports whether b may start a tag or attribute name.
func isNameStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isNameByte reports whether b may appear inside a name. The
// namespace colon is accepted as part of the name.
func isNameByte(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9') || b == '-' || b == '.' || b == ':'
}

// skipSpace returns the first offset at or after i holding a
// non-space byte, or len(buf).
func skipSpace(buf []byte, i int) int {
	for i < len(buf) && isSpace(buf[i]) {
		i++
	}
	return i
}

// skipSpaceBack returns the last offset at or before j holding a
// non-space byte, or -1.
func skipSpaceBack(buf []byte, j int) int {
	if j >= len(buf) {
		j = len(buf) - 1
	}
	for j >= 0 && isSpace(buf[j]) {
		j--
	}
	return j
}

// nameEnd returns the offset one past the name starting at i.
func nameEnd(buf []byte, i int) int {
	for i < len(buf) && isNameByte(buf[i]) {
		i++
	}
	return i
}

// indexAt finds c at or after i, returning an absolute offset or -1.
func indexAt(buf []byte, c byte, i int) int {
	if i >= len(buf) {
		return -1
	}
	if idx := bytes.IndexByte(buf[i:], c); idx != -1 {
		return idx + i
	}
	return -1
}

// searchAt finds needle at or after i, returning an absolute offset or -1.
func searchAt(buf []byte, needle []byte, i int) int {
	if i >= len(buf) {
		return -1
	}
	if idx := bytes.Index(buf[i:], needle); idx != -1 {
		return idx + i
	}
	return -1
}

// lastIndexAt finds c at or before j, returning an absolute offset or -1.
func lastIndexAt(buf []byte, c byte, j int) int {
	if j < 0 {
		return -1
	}
	if j >= len(buf) {
		j = len(buf) - 1
	}
	return bytes.LastIndexByte(buf[:j+1], c)
}

// lastSearchAt finds needle ending at or before j, returning an
// absolute offset or -1.
func lastSearchAt(buf []byte, needle []byte, j int) int {
	if j < 0 {
		return -1
	}
	if j >= len(buf) {
		j = len(buf) - 1
	}
	return bytes.LastIndex(buf[:j+1], needle)
}
