package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrBudgetNotUnique         = errors.New("a budget with this title and date already exists for the user")
	ErrCurrencyCodeNotUnique   = errors.New("the currency code must be unique for the workspace")
	ErrCurrencyCodeInvalid     = errors.New("the currency code is not a valid ISO 4217 code")
	ErrRateNotUnique           = errors.New("a rate for this currency and date already exists")
	ErrExceptionNotUnique      = errors.New("an exception for this series and date already exists")
	ErrSeriesIntervalInvalid   = errors.New("the series interval must be at least 1")
	ErrSeriesFrequencyInvalid  = errors.New("the series frequency must be WEEKLY or MONTHLY")
	ErrSeriesUntilBeforeStart  = errors.New("the series cannot be stopped before its start date")
	ErrBudgetAmountNotPositive = errors.New("budget amounts must be larger than zero")
)
