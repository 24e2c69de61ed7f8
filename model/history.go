package model

import "crypto/md5"

// history records every generation visited since the last halt. Frames are
// indexed by digest, and a digest hit is only trusted after a full comparison.
type history struct {
	frames []*frame
	index  map[[md5.Size]byte][]int
}

func (h *history) push(f *frame) {
	if h.index == nil {
		h.index = make(map[[md5.Size]byte][]int)
	}
	sum := f.digest()
	h.index[sum] = append(h.index[sum], len(h.frames))
	h.frames = append(h.frames, f)
}

// contains reports whether a frame equal to f has been recorded
func (h *history) contains(f *frame) bool {
	for _, i := range h.index[f.digest()] {
		if h.frames[i].equal(f) {
			return true
		}
	}
	return false
}

func (h *history) len() int {
	return len(h.frames)
}

// clear drops every recorded frame, handing each to release when non-nil
func (h *history) clear(release func(*frame)) {
	if release != nil {
		for _, f := range h.frames {
			release(f)
		}
	}
	h.frames = nil
	h.index = nil
}
