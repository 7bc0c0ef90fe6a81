package scrollreel

import "github.com/hajimehoshi/ebiten/v2"

// FrameSet is the ordered collection of loaded frames for the active
// category and theme. Slot i holds frame ordinal i+1; empty slots are nil.
type FrameSet struct {
	frames []*ebiten.Image
	loaded int
}

// NewFrameSet creates an empty set with room for n frames.
func NewFrameSet(n int) *FrameSet {
	return &FrameSet{frames: make([]*ebiten.Image, n)}
}

// Reset empties every slot. Images are left to the garbage collector since
// the canvas may still be showing one of them.
func (s *FrameSet) Reset() {
	clear(s.frames)
	s.loaded = 0
}

// Set stores img at index. Returns false for an out-of-range index.
func (s *FrameSet) Set(index int, img *ebiten.Image) bool {
	if index < 0 || index >= len(s.frames) {
		return false
	}
	if s.frames[index] == nil && img != nil {
		s.loaded++
	}
	s.frames[index] = img
	return true
}

// Get returns the frame at index, or nil if it is not loaded.
func (s *FrameSet) Get(index int) *ebiten.Image {
	if index < 0 || index >= len(s.frames) {
		return nil
	}
	return s.frames[index]
}

// Cap returns the number of slots.
func (s *FrameSet) Cap() int {
	return len(s.frames)
}

// Loaded returns the number of filled slots.
func (s *FrameSet) Loaded() int {
	return s.loaded
}
