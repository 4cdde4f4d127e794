package orders

import "errors"

var (
	ErrEmptyCart       = errors.New("your cart is empty")
	ErrContactRequired = errors.New("please fill all required fields")
	ErrNotFound        = errors.New("order not found")
	ErrNotCancellable  = errors.New("order can't be cancelled")
	ErrInvalidStatus   = errors.New("invalid status selected")
)
