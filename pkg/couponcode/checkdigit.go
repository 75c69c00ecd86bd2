package couponcode

// Checkdigit fold parameters. The multiplier/modulus pair spreads
// single-symbol errors across the whole residue range, and seeding the fold
// with the 1-based part position makes whole-part reordering detectable too.
const (
	checkdigitMul = 19
	checkdigitMod = 31
)

// checkdigit folds the data-symbol indices into a single alphabet index in
// [0,30]. pos is the part's 1-based position within the code.
func checkdigit(data []int, pos int) int {
	check := pos
	for _, i := range data {
		check = (check*checkdigitMul + i) % checkdigitMod
	}
	return check
}

// transposable reports whether swapping any adjacent pair of data symbols
// leaves the part's checkdigit valid. Such a part would silently accept the
// most common transcription mistake, so the generator rejects it. Only
// distance-1 swaps are considered; the data slice is restored before
// returning.
func transposable(data []int, pos, check int) bool {
	for i := 0; i+1 < len(data); i++ {
		data[i], data[i+1] = data[i+1], data[i]
		swapped := checkdigit(data, pos)
		data[i], data[i+1] = data[i+1], data[i]
		if swapped == check {
			return true
		}
	}
	return false
}
