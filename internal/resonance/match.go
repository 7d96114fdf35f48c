package resonance

// Resonates reports whether a prototype with protoOnes set bits and match
// bits in common with an item of itemOnes set bits passes the size-ratio test.
func Resonates(match, protoOnes, itemOnes, features uint, beta float64) bool {
	return float64(match)/(beta+float64(protoOnes)) > float64(itemOnes)/(beta+float64(features))
}

// Vigilant reports whether the match ratio is below rho.
// An item with no set bits never passes.
func Vigilant(match, itemOnes uint, rho float64) bool {
	if itemOnes == 0 {
		return false
	}
	return float64(match)/float64(itemOnes) < rho
}
