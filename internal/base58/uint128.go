package base58

import "math/bits"

// uint128 is an unsigned 128-bit integer held as two 64-bit limbs. The
// codec only needs division by 58 and multiply-by-58-plus-digit, both
// implemented with explicit carry propagation so overflow is detectable.
type uint128 struct {
	hi, lo uint64
}

// divmod58 returns u/58 and u%58. The high limb is reduced first and its
// remainder feeds the low-limb division as the upper word, which is the
// schoolbook long division step for a two-limb numerator.
func (u uint128) divmod58() (uint128, uint64) {
	qhi := u.hi / 58
	rem := u.hi % 58
	qlo, rem := bits.Div64(rem, u.lo, 58)
	return uint128{hi: qhi, lo: qlo}, rem
}

// mul58add computes u*58 + d. The second return value is false when the
// result does not fit in 128 bits.
func (u uint128) mul58add(d uint64) (uint128, bool) {
	loCarry, lo := bits.Mul64(u.lo, 58)
	hiCarry, hi := bits.Mul64(u.hi, 58)

	hi, c := bits.Add64(hi, loCarry, 0)
	if hiCarry != 0 || c != 0 {
		return uint128{}, false
	}

	lo, c = bits.Add64(lo, d, 0)
	hi, c = bits.Add64(hi, 0, c)
	if c != 0 {
		return uint128{}, false
	}

	return uint128{hi: hi, lo: lo}, true
}
