package combat

import "math/rand/v2"

// RollDamage rolls a uniformly random amount of damage in [min, max]
// inclusive. Rolls are independent per call.
func RollDamage(min, max int) int {
	if max <= min {
		return min
	}
	return rand.IntN(max-min+1) + min
}
