package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DefaultMaxWords is how many words a round hides in the buffer.
const DefaultMaxWords = 9

var ErrPlacement = errors.New("game: words do not fit the board")

// Place shuffles words, keeps up to maxWords of them and hides each one in
// its own equal slice of the buffer. The i-th kept word starts at a random
// offset inside [i*span, i*span+padding) and is tagged WordCell(i+1).
//
// All words must share one length L, and every slice must leave room for L
// plus a two-cell margin. Returns the kept words in placement order.
func Place(b *Board, words []string, maxWords int, rng *rand.Rand) ([]string, error) {
	if len(words) == 0 || maxWords <= 0 {
		return nil, fmt.Errorf("%w: no words to place", ErrPlacement)
	}
	length := len(words[0])
	for _, w := range words {
		if len(w) != length {
			return nil, fmt.Errorf("%w: mixed word lengths %d and %d", ErrPlacement, length, len(w))
		}
	}

	pool := append([]string(nil), words...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > maxWords {
		pool = pool[:maxWords]
	}

	span := b.Len() / len(pool)
	padding := ((span - 2) - length) / 2
	if span < length+2 || padding < 0 {
		return nil, fmt.Errorf("%w: %d words of length %d in %d cells", ErrPlacement, len(pool), length, b.Len())
	}

	for i, w := range pool {
		at := i * span
		if padding > 0 {
			at += rng.IntN(padding)
		}
		b.Write(at, w)
		b.Tag(Range{Start: at, End: at + length}, WordCell(i+1))
	}
	return pool, nil
}
