package couponcode

import "crypto/sha1"

// byteStream yields an effectively infinite deterministic byte sequence by
// repeatedly hashing its own buffer. SHA-1 serves purely as a fixed 20-byte
// mixing function here; collision resistance is irrelevant.
type byteStream struct {
	buf []byte
}

func newByteStream(seed []byte) *byteStream {
	sum := sha1.Sum(seed)
	return &byteStream{buf: sum[:]}
}

// take returns the next n bytes of the stream. When fewer than n bytes
// remain, the remainder is rehashed into a fresh 20-byte buffer first, so a
// short tail is never split across two digests.
func (s *byteStream) take(n int) []byte {
	for len(s.buf) < n {
		s.rehash()
	}
	out := s.buf[:n]
	s.buf = s.buf[n:]
	return out
}

// rehash replaces the unconsumed buffer with its digest. Called on exhaustion
// and after a candidate part is rejected, so rejected bytes never reappear in
// the stream.
func (s *byteStream) rehash() {
	sum := sha1.Sum(s.buf)
	s.buf = sum[:]
}
