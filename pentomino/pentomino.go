// Package pentomino enumerates tilings of the classic 6×10 rectangle by
// the twelve pentominoes, encoded as an exact cover: one condition per
// board cell (each must be covered exactly once) plus one per piece kind
// (each of the twelve pieces is used exactly once).
//
// The full solution space holds 9356 tilings; no symmetry reduction is
// applied, so every tiling appears together with its rotations and
// reflections. Tilings are streamed lazily — pull as many as you need.
//
// Complexity: the matrix holds roughly two thousand candidate placements;
// a single tiling is found in milliseconds, the full enumeration takes
// seconds.
package pentomino

import "github.com/katalvlaran/dlx/matrix"

// Board dimensions of the classic rectangle.
const (
	Width  = 10
	Height = 6
)

// Board is a solved tiling: each cell carries the letter of the pentomino
// covering it (F I L P N T U V W X Y Z).
type Board [Height][Width]byte

// orientation describes one fixed rotation/reflection of a piece as five
// row bitmasks; bit 3 (0x08) of mask[0] is the placement origin, so cells
// may extend up to three columns left of it and four rows down.
type orientation struct {
	kind byte
	mask [5]byte
}

// orientations lists all 63 distinct placements shapes of the twelve
// pentominoes under rotation and reflection (I contributes 2, X just 1).
var orientations = [63]orientation{
	{'F', [5]byte{0x18, 0x30, 0x10, 0x00, 0x00}},
	{'F', [5]byte{0x08, 0x0e, 0x04, 0x00, 0x00}},
	{'F', [5]byte{0x08, 0x0c, 0x18, 0x00, 0x00}},
	{'F', [5]byte{0x08, 0x1c, 0x04, 0x00, 0x00}},
	{'F', [5]byte{0x18, 0x0c, 0x08, 0x00, 0x00}},
	{'F', [5]byte{0x08, 0x38, 0x10, 0x00, 0x00}},
	{'F', [5]byte{0x08, 0x18, 0x0c, 0x00, 0x00}},
	{'F', [5]byte{0x08, 0x1c, 0x10, 0x00, 0x00}},
	{'I', [5]byte{0xf8, 0x00, 0x00, 0x00, 0x00}},
	{'I', [5]byte{0x08, 0x08, 0x08, 0x08, 0x08}},
	{'L', [5]byte{0x78, 0x40, 0x00, 0x00, 0x00}},
	{'L', [5]byte{0x78, 0x08, 0x00, 0x00, 0x00}},
	{'L', [5]byte{0x08, 0x08, 0x08, 0x18, 0x00}},
	{'L', [5]byte{0x08, 0x08, 0x08, 0x0c, 0x00}},
	{'L', [5]byte{0x08, 0x78, 0x00, 0x00, 0x00}},
	{'L', [5]byte{0x08, 0x0f, 0x00, 0x00, 0x00}},
	{'L', [5]byte{0x18, 0x10, 0x10, 0x10, 0x00}},
	{'L', [5]byte{0x18, 0x08, 0x08, 0x08, 0x00}},
	{'P', [5]byte{0x18, 0x18, 0x08, 0x00, 0x00}},
	{'P', [5]byte{0x18, 0x18, 0x10, 0x00, 0x00}},
	{'P', [5]byte{0x08, 0x18, 0x18, 0x00, 0x00}},
	{'P', [5]byte{0x08, 0x0c, 0x0c, 0x00, 0x00}},
	{'P', [5]byte{0x38, 0x18, 0x00, 0x00, 0x00}},
	{'P', [5]byte{0x38, 0x30, 0x00, 0x00, 0x00}},
	{'P', [5]byte{0x18, 0x1c, 0x00, 0x00, 0x00}},
	{'P', [5]byte{0x18, 0x38, 0x00, 0x00, 0x00}},
	{'N', [5]byte{0x18, 0x70, 0x00, 0x00, 0x00}},
	{'N', [5]byte{0x18, 0x0e, 0x00, 0x00, 0x00}},
	{'N', [5]byte{0x38, 0x60, 0x00, 0x00, 0x00}},
	{'N', [5]byte{0x38, 0x0c, 0x00, 0x00, 0x00}},
	{'N', [5]byte{0x08, 0x18, 0x10, 0x10, 0x00}},
	{'N', [5]byte{0x08, 0x0c, 0x04, 0x04, 0x00}},
	{'N', [5]byte{0x08, 0x08, 0x18, 0x10, 0x00}},
	{'N', [5]byte{0x08, 0x08, 0x0c, 0x04, 0x00}},
	{'T', [5]byte{0x38, 0x10, 0x10, 0x00, 0x00}},
	{'T', [5]byte{0x08, 0x08, 0x1c, 0x00, 0x00}},
	{'T', [5]byte{0x08, 0x0e, 0x08, 0x00, 0x00}},
	{'T', [5]byte{0x08, 0x38, 0x08, 0x00, 0x00}},
	{'U', [5]byte{0x28, 0x38, 0x00, 0x00, 0x00}},
	{'U', [5]byte{0x38, 0x28, 0x00, 0x00, 0x00}},
	{'U', [5]byte{0x18, 0x08, 0x18, 0x00, 0x00}},
	{'U', [5]byte{0x18, 0x10, 0x18, 0x00, 0x00}},
	{'V', [5]byte{0x38, 0x08, 0x08, 0x00, 0x00}},
	{'V', [5]byte{0x38, 0x20, 0x20, 0x00, 0x00}},
	{'V', [5]byte{0x08, 0x08, 0x0e, 0x00, 0x00}},
	{'V', [5]byte{0x08, 0x08, 0x38, 0x00, 0x00}},
	{'W', [5]byte{0x18, 0x30, 0x20, 0x00, 0x00}},
	{'W', [5]byte{0x18, 0x0c, 0x04, 0x00, 0x00}},
	{'W', [5]byte{0x08, 0x18, 0x30, 0x00, 0x00}},
	{'W', [5]byte{0x08, 0x0c, 0x06, 0x00, 0x00}},
	{'X', [5]byte{0x08, 0x1c, 0x08, 0x00, 0x00}},
	{'Y', [5]byte{0x78, 0x10, 0x00, 0x00, 0x00}},
	{'Y', [5]byte{0x78, 0x20, 0x00, 0x00, 0x00}},
	{'Y', [5]byte{0x08, 0x3c, 0x00, 0x00, 0x00}},
	{'Y', [5]byte{0x08, 0x1e, 0x00, 0x00, 0x00}},
	{'Y', [5]byte{0x08, 0x18, 0x08, 0x08, 0x00}},
	{'Y', [5]byte{0x08, 0x0c, 0x08, 0x08, 0x00}},
	{'Y', [5]byte{0x08, 0x08, 0x18, 0x08, 0x00}},
	{'Y', [5]byte{0x08, 0x08, 0x0c, 0x08, 0x00}},
	{'Z', [5]byte{0x18, 0x10, 0x30, 0x00, 0x00}},
	{'Z', [5]byte{0x18, 0x08, 0x0c, 0x00, 0x00}},
	{'Z', [5]byte{0x08, 0x38, 0x20, 0x00, 0x00}},
	{'Z', [5]byte{0x08, 0x0e, 0x02, 0x00, 0x00}},
}

// kindColumn maps a piece letter to its "use this piece once" condition.
// Cell conditions occupy ids below 100.
const kindBase = 100

var kindIndex = map[byte]int{
	'F': 0, 'I': 1, 'L': 2, 'P': 3, 'N': 4, 'T': 5,
	'U': 6, 'V': 7, 'W': 8, 'X': 9, 'Y': 10, 'Z': 11,
}

// offsets decodes an orientation's bitmasks into relative cell coordinates;
// dx may be negative, dy never is.
func (o orientation) offsets() [5][2]int {
	var out [5][2]int
	n := 0
	for dy := 0; dy < 5; dy++ {
		for bit := 0; bit < 8; bit++ {
			if o.mask[dy]&(1<<bit) != 0 {
				out[n] = [2]int{bit - 3, dy}
				n++
			}
		}
	}

	return out
}

// encode declares one matrix row per legal placement: row id
// orientation*60 + y*10 + x, conditions for its five cells plus its kind.
func encode() *matrix.SparseMatrix {
	m := matrix.New()
	for p, o := range orientations {
		offs := o.offsets()
		for x := 0; x < Width; x++ {
			for y := 0; y < Height; y++ {
				fits := true
				for _, off := range offs {
					cx, cy := x+off[0], y+off[1]
					if cx < 0 || cx >= Width || cy >= Height {
						fits = false

						break
					}
				}
				if !fits {
					continue
				}

				r := p*60 + y*10 + x
				for _, off := range offs {
					m.Declare((x+off[0])*10+(y+off[1]), r)
				}
				m.Declare(kindBase+kindIndex[o.kind], r)
			}
		}
	}

	return m
}

// Tiling streams solved boards one Next call at a time.
type Tiling struct {
	st *matrix.Stream
}

// Tilings starts a lazy enumeration over all 6×10 pentomino tilings.
func Tilings() *Tiling {
	return &Tiling{st: encode().Solutions()}
}

// Next returns the next tiling, or (zero Board, false) once the space is
// exhausted.
func (t *Tiling) Next() (Board, bool) {
	rows, ok := t.st.Next()
	if !ok {
		return Board{}, false
	}

	var b Board
	for _, r := range rows {
		o := orientations[r/60]
		x, y := r%10, (r/10)%6
		for _, off := range o.offsets() {
			b[y+off[1]][x+off[0]] = o.kind
		}
	}

	return b, ok
}
