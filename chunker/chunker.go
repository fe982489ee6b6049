// Package chunker implements the two-stage gear-based content-defined
// chunker (L5): the first 100 chunks use the "small" size discipline,
// subsequent chunks use the "large" one. Boundaries depend only on the
// input bytes, the chunk index (which selects the stage), and the fixed
// GearTable; no random state is involved.
package chunker

import (
	"io"
	"iter"
)

// Stage bundles one boundary-detection parameter set: normal-zone
// target size, hard minimum and maximum, and the two zone masks.
type Stage struct {
	Norm, Min, Max int
	Mask1, Mask2   uint64
}

// SmallStage governs chunks 0..99; LargeStage governs chunk 100 onward.
// Both are normative — every compliant implementation must use the
// same parameters or chunk (and therefore Data-ID) boundaries diverge.
var (
	SmallStage = Stage{Norm: 40, Min: 20, Max: 640, Mask1: 0x016118, Mask2: 0x00a0b1}
	LargeStage = Stage{Norm: 4096, Min: 2048, Max: 65536, Mask1: 0x0003590703530000, Mask2: 0x0000d90003530000}
)

// stageSwitchCount is the chunk index at which the driver switches from
// SmallStage to LargeStage.
const stageSwitchCount = 100

// ChunkLength returns the boundary offset within data for the given
// stage parameters: the length of the next chunk to cut from the front
// of data. If len(data) <= stage.Min, the whole buffer is one terminal
// short chunk.
func ChunkLength(data []byte, stage Stage) int {
	n := len(data)
	if n <= stage.Min {
		return n
	}

	var pattern uint64
	i := stage.Min

	normLimit := stage.Norm
	if n < normLimit {
		normLimit = n
	}
	for i < normLimit {
		pattern = (pattern << 1) + GearTable[data[i]]
		if pattern&stage.Mask1 == 0 {
			return i
		}
		i++
	}

	maxLimit := stage.Max
	if n < maxLimit {
		maxLimit = n
	}
	for i < maxLimit {
		pattern = (pattern << 1) + GearTable[data[i]]
		if pattern&stage.Mask2 == 0 {
			return i
		}
		i++
	}

	return i
}

// Chunks streams variable-size content-defined chunks read from r.
// Concatenating every yielded chunk reproduces the input exactly.
// Iteration stops (with no further yields) once r is exhausted and the
// working buffer is empty, or the first time r.Read returns an error
// other than io.EOF, which is surfaced as the iterator's error value.
func Chunks(r io.Reader) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		var section []byte
		var err error

		section, err = fill(r, section, SmallStage.Max)
		if err != nil {
			yield(nil, err)
			return
		}

		counter := 0
		for {
			stage := SmallStage
			if counter >= stageSwitchCount {
				stage = LargeStage
			}

			if len(section) < stage.Max {
				section, err = fill(r, section, stage.Max)
				if err != nil {
					yield(nil, err)
					return
				}
			}

			if len(section) == 0 {
				return
			}

			boundary := ChunkLength(section, stage)

			chunk := append([]byte(nil), section[:boundary]...)
			if !yield(chunk, nil) {
				return
			}

			section = append([]byte(nil), section[boundary:]...)
			counter++
		}
	}
}

// fill reads additional bytes from r, appending to section until its
// length reaches target or r is exhausted. Running out of input is not
// an error; only a non-EOF read failure is propagated.
func fill(r io.Reader, section []byte, target int) ([]byte, error) {
	need := target - len(section)
	if need <= 0 {
		return section, nil
	}

	grow := make([]byte, need)
	n, err := io.ReadFull(r, grow)
	section = append(section, grow[:n]...)

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return section, nil
	}
	return section, err
}
