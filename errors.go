// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cell

import "errors"

var (
	// ErrInvalidType reports a value that is not one of the four scalar
	// shapes: on [Start] and [Cell.Replace] for the supplied value, and
	// defensively on reads if the held state was corrupted by writing
	// through the owner handle directly.
	ErrInvalidType = errors.New("cell: invalid value type")

	// ErrNotANumber reports an increment or decrement against a held
	// value that is not a Number at transform time. The held state is
	// left untouched.
	ErrNotANumber = errors.New("cell: value is not a number")

	// ErrOwnerClosed reports an operation that raced the owner loop's
	// shutdown. The two shape errors above never imply shutdown; after
	// either of them the cell remains fully usable.
	ErrOwnerClosed = errors.New("cell: owner loop closed")
)
