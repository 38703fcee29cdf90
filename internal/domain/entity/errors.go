package entity

import "errors"

var (
	ErrInvalidFormat          = errors.New("invalid format")
	ErrInvalidDate            = errors.New("invalid date")
	ErrInvalidType            = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidRate            = errors.New("invalid rate")
	ErrInvalidYearMonth       = errors.New("invalid year-month")
	ErrInvalidMonth           = errors.New("invalid month")
	ErrAccountNotFound        = errors.New("account not found")
	ErrInsufficientFunds      = errors.New("insufficient balance")
	ErrWithdrawFromNewAccount = errors.New("cannot withdraw from new account")
)
