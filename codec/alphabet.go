package codec

// Alphabet is the fixed 58-character codec alphabet: ASCII digits and
// letters minus visually ambiguous characters (0, O, I, l). It is normative —
// two implementations must agree on it or encoded codes diverge.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// inverse maps each alphabet rune to its digit value; built once from
// Alphabet rather than hand-duplicated, so it can never drift out of
// sync with it.
var inverse = buildInverse()

func buildInverse() map[byte]int {
	m := make(map[byte]int, len(Alphabet))
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = i
	}
	return m
}
