package game

// Brackets maps each closing bracket to its opener.
type Brackets map[byte]byte

// DefaultBrackets are the pairs recognised as duds.
var DefaultBrackets = Brackets{
	')': '(',
	']': '[',
	'}': '{',
	'>': '<',
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// ScanDuds tags bracket pairs that enclose no letters as duds.
//
// The scan walks backwards from the end of the buffer. For every closing
// bracket it looks for the nearest matching opener before it; the pair is
// accepted when the enclosed span, brackets included, is shorter than one
// panel row, holds no letter and overlaps nothing already tagged. Accepted
// spans are tagged DudCell(1), DudCell(2), ... and the scan resumes before
// the opener. Otherwise it resumes one position before the closer.
//
// Returns the number of duds tagged.
func ScanDuds(b *Board, brackets Brackets) int {
	span := b.geom.Span
	count := 0

	end := lastCloser(b.Text, len(b.Text), brackets)
	for end > 0 {
		start := lastIndexByte(b.Text, end, brackets[b.Text[end]])
		if start >= 0 && end-start+1 < span && enclosesNothing(b, start, end) {
			count++
			b.Tag(Range{Start: start, End: end + 1}, DudCell(count))
			end = lastCloser(b.Text, start, brackets)
			continue
		}
		end = lastCloser(b.Text, end, brackets)
	}
	return count
}

// lastCloser returns the last closing bracket strictly before limit, or -1.
func lastCloser(text []byte, limit int, brackets Brackets) int {
	for i := limit - 1; i >= 0; i-- {
		if _, ok := brackets[text[i]]; ok {
			return i
		}
	}
	return -1
}

// lastIndexByte returns the last index of c strictly before limit, or -1.
func lastIndexByte(text []byte, limit int, c byte) int {
	for i := limit - 1; i >= 0; i-- {
		if text[i] == c {
			return i
		}
	}
	return -1
}

func enclosesNothing(b *Board, start, end int) bool {
	for i := start; i <= end; i++ {
		if isLetter(b.Text[i]) || b.Cells[i].Kind != KindPlain {
			return false
		}
	}
	return true
}
