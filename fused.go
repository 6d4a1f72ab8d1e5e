// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cell

import (
	"code.hybscloud.com/kont"
)

// ReadBind reads the held value and passes it to f.
// Fuses Perform(Get{}) + Bind.
func ReadBind[B any](f func(Value) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Get{}), f)
}

// ReplaceThen replaces the held value with v and continues with next.
// Fuses Perform(Put{Value: v}) + Then.
func ReplaceThen[B any](v Value, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Put{Value: v}), next)
}

// ResetThen replaces the held value with Empty and continues with next.
func ResetThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return ReplaceThen(Empty(), next)
}

// IncrementBind adds one to the held number and passes the new value to f.
// Fuses Perform(Incr{}) + Bind.
func IncrementBind[B any](f func(int64) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Incr{}), f)
}

// DecrementBind subtracts one from the held number and passes the new
// value to f. Fuses Perform(Decr{}) + Bind.
func DecrementBind[B any](f func(int64) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Decr{}), f)
}
