package domain

import "errors"

var (
	// Money errors
	ErrCurrencyMismatch = errors.New("currency mismatch: explicit translation required")
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidRate      = errors.New("exchange rate must be positive")

	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrInvalidAccountType = errors.New("account type not allowed for transaction type")

	// Transaction validation errors
	ErrMissingLineItems      = errors.New("transaction must have at least two line items")
	ErrUnbalancedTransaction = errors.New("total debits do not equal total credits")
	ErrRedundantTransaction  = errors.New("line item account is the same as the main account")
	ErrPostedTransaction     = errors.New("posted transaction cannot be modified")
	ErrUnpostedTransaction   = errors.New("transaction is not posted")
	ErrTransactionNotFound   = errors.New("transaction not found")

	// Tax errors
	ErrInvalidTaxRate    = errors.New("invalid tax rate")
	ErrInvalidTaxCharge  = errors.New("transaction type cannot be charged tax")
	ErrMixedTaxModes     = errors.New("line item mixes inclusive and exclusive taxes")
	ErrMissingTaxAccount = errors.New("tax must have a control account")
	ErrTaxNotFound       = errors.New("tax not found")

	// Period errors
	ErrClosedPeriod    = errors.New("reporting period is closed")
	ErrAdjustingPeriod = errors.New("only journal entries may be posted to an adjusting period")
	ErrPeriodNotFound  = errors.New("no reporting period covers the transaction date")

	// Void errors
	ErrAlreadyVoided   = errors.New("transaction is already voided")
	ErrAssignedBalance = errors.New("transaction has outstanding assignments")

	// Assignment errors
	ErrOverAssignment          = errors.New("assigned amount exceeds outstanding balance")
	ErrInsufficientBalance     = errors.New("clearing transaction has no outstanding balance")
	ErrUnpostedAssignment      = errors.New("unposted transaction cannot be cleared or assigned")
	ErrSelfClearance           = errors.New("transaction cannot clear itself")
	ErrUnassignableTransaction = errors.New("transaction type cannot clear other transactions")
	ErrUnclearableTransaction  = errors.New("transaction type does not carry an outstanding balance")
	ErrAssignmentNotFound      = errors.New("assignment not found")
)
