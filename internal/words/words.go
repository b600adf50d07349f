// internal/words/words.go
//
// Word bank for the puzzle engine.
//
// Responsibilities:
//   - Tokenize a word source (whitespace separated), keep ASCII words of at
//     least MinWordLength characters and uppercase them. The board is a byte
//     buffer, so non-ASCII tokens are skipped.
//   - Group words by length into unique sets and discard any length bucket
//     holding fewer than MinBucketSize words.
//   - Split the surviving buckets into three difficulty tiers and hand out a
//     random bucket from a requested tier.
//
// Loading sources:
//   1. LoadFile(path) for an explicit word file (WORDS_FILE / -wordfile).
//   2. LoadDefault() for the dictionary embedded in the assets package.
//
// A Bank is built once at startup and is read-only afterwards, so it can be
// shared by every round of a session.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/zyedidia/generic/mapset"

	"github.com/robalobadob/termlink/assets"
)

const (
	// MinWordLength is the shortest word kept from a source.
	MinWordLength = 4
	// MinBucketSize is the fewest distinct words a length bucket needs to survive loading.
	MinBucketSize = 10
)

var (
	ErrEmptyDictionary  = errors.New("words: no word length has enough words")
	ErrNoWordsAvailable = errors.New("words: no words available for tier")
	ErrBadDifficulty    = errors.New("words: difficulty must be between 0 and 3")
)

// Bank maps word length to the set of unique uppercase words of that length.
type Bank struct {
	buckets map[int]mapset.Set[string]
	lengths []int // sorted ascending
}

// Load reads whitespace separated tokens from r and builds a Bank.
// Returns ErrEmptyDictionary when no bucket survives the size floor.
func Load(r io.Reader) (*Bank, error) {
	buckets := make(map[int]mapset.Set[string])

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	kept, skipped := 0, 0
	for sc.Scan() {
		w := sc.Text()
		if len(w) < MinWordLength || !isASCII(w) {
			skipped++
			continue
		}
		w = strings.ToUpper(w)
		set, ok := buckets[len(w)]
		if !ok {
			set = mapset.New[string]()
			buckets[len(w)] = set
		}
		set.Put(w)
		kept++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read source: %w", err)
	}
	log.Debug().Int("kept", kept).Int("skipped", skipped).Msg("tokenized word source")

	for length, set := range buckets {
		if set.Size() < MinBucketSize {
			log.Debug().Int("length", length).Int("count", set.Size()).Msg("discarding short bucket")
			delete(buckets, length)
		}
	}
	if len(buckets) == 0 {
		return nil, ErrEmptyDictionary
	}

	lengths := lo.Keys(buckets)
	sort.Ints(lengths)

	b := &Bank{buckets: buckets, lengths: lengths}
	_, total := b.Stats()
	log.Info().Int("buckets", len(lengths)).Int("words", total).Msg("dictionary loaded")
	return b, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// LoadDefault loads the dictionary embedded in the assets package.
func LoadDefault() (*Bank, error) {
	text, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("words: embedded list: %w", err)
	}
	return Load(strings.NewReader(text))
}

// Lengths returns the surviving word lengths in ascending order.
func (b *Bank) Lengths() []int {
	return append([]int(nil), b.lengths...)
}

// Words returns the words of the given length, sorted.
func (b *Bank) Words(length int) []string {
	set, ok := b.buckets[length]
	if !ok {
		return nil
	}
	out := make([]string, 0, set.Size())
	set.Each(func(w string) {
		out = append(out, w)
	})
	sort.Strings(out)
	return out
}

// Stats returns the number of buckets and the number of words across them.
func (b *Bank) Stats() (buckets int, total int) {
	total = lo.SumBy(b.lengths, func(l int) int { return b.buckets[l].Size() })
	return len(b.lengths), total
}

// Tiers splits the sorted lengths into Easy, Medium and Hard groups of
// n/3 buckets each. One leftover bucket goes to Medium, two leftovers go to
// Easy and Medium.
func (b *Bank) Tiers() [3][]int {
	n := len(b.lengths)
	size := [3]int{n / 3, n / 3, n / 3}
	switch n % 3 {
	case 1:
		size[1]++
	case 2:
		size[0]++
		size[1]++
	}

	var tiers [3][]int
	at := 0
	for i := range tiers {
		tiers[i] = b.lengths[at : at+size[i]]
		at += size[i]
	}
	return tiers
}

// SelectTier picks the word set for a round.
// difficulty 0 picks a random tier that holds a bucket; 1..3 select Easy,
// Medium or Hard.
// Within the tier one length bucket is chosen uniformly.
func (b *Bank) SelectTier(difficulty int, rng *rand.Rand) ([]string, error) {
	if difficulty < 0 || difficulty > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDifficulty, difficulty)
	}
	tiers := b.Tiers()
	tier := difficulty - 1
	if difficulty == 0 {
		// only tiers that hold a bucket; fewer than three buckets leave some empty
		filled := lo.Filter([]int{0, 1, 2}, func(i int, _ int) bool { return len(tiers[i]) > 0 })
		tier = filled[rng.IntN(len(filled))]
	}
	lengths := tiers[tier]
	if len(lengths) == 0 {
		return nil, fmt.Errorf("%w: tier %d", ErrNoWordsAvailable, tier+1)
	}
	length := lengths[rng.IntN(len(lengths))]
	log.Debug().Int("tier", tier+1).Int("length", length).Msg("selected word bucket")
	return b.Words(length), nil
}

// Dump writes every bucket and its words to w.
func (b *Bank) Dump(w io.Writer) error {
	for _, l := range b.lengths {
		list := b.Words(l)
		if _, err := fmt.Fprintf(w, "Size: %d count: %d\n%s\n%s\n%s\n\n",
			l, len(list), strings.Repeat("=", 35), strings.Join(list, " "), strings.Repeat("=", 35)); err != nil {
			return err
		}
	}
	buckets, total := b.Stats()
	_, err := fmt.Fprintf(w, "Dictionary contains %d words in %d buckets.\n", total, buckets)
	return err
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
