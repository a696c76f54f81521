package dom

import "unicode/utf8"

// lossyDecoder converts arbitrary byte chunks to valid UTF-8. Malformed
// sequences become U+FFFD. An incomplete multi-byte sequence at the end of
// a chunk (at most utf8.UTFMax-1 bytes) is held back and completed by the
// next chunk.
type lossyDecoder struct {
	pending []byte
}

// Decode appends the decoded form of p to dst and returns the extended
// slice.
func (d *lossyDecoder) Decode(dst, p []byte) []byte {
	b := p
	if len(d.pending) > 0 {
		b = append(d.pending, p...)
		d.pending = nil
	}
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(b) {
				// incomplete trailing sequence, wait for the next chunk
				d.pending = append(d.pending, b...)
				return dst
			}
			dst = utf8.AppendRune(dst, utf8.RuneError)
			b = b[1:]
			continue
		}
		dst = append(dst, b[:size]...)
		b = b[size:]
	}
	return dst
}

// Flush appends the replacement for any held-back incomplete sequence and
// resets the decoder.
func (d *lossyDecoder) Flush(dst []byte) []byte {
	if len(d.pending) > 0 {
		dst = utf8.AppendRune(dst, utf8.RuneError)
		d.pending = nil
	}
	return dst
}
