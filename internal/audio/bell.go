package audio

import (
	"io"
)

const bel = "\a"

// Bell is a Backend that rings the terminal bell for selected cues.
// A bell cannot be rewound: each Start is a fresh ring.
type Bell struct {
	w    io.Writer
	cues map[Cue]bool
}

// NewBell rings on w for the given cues, or for every cue when none are given.
func NewBell(w io.Writer, cues ...Cue) *Bell {
	if len(cues) == 0 {
		cues = Cues
	}
	set := make(map[Cue]bool, len(cues))
	for _, c := range cues {
		set[c] = true
	}
	return &Bell{w: w, cues: set}
}

// Rewind is a no-op for the bell.
func (b *Bell) Rewind(Cue) error {
	return nil
}

// Start rings the bell if the cue is enabled.
func (b *Bell) Start(c Cue) error {
	if !b.cues[c] {
		return nil
	}
	_, err := io.WriteString(b.w, bel)
	return err
}
