package entities

import "errors"

var (
	// ErrInsufficientData means a product has no sales history to forecast from
	ErrInsufficientData = errors.New("insufficient data")
	// ErrMissingForecast means an inventory product has no forecast points
	ErrMissingForecast = errors.New("missing forecast")
	// ErrNoDemandSignal means total forecast demand is zero, so shares are undefined
	ErrNoDemandSignal = errors.New("no demand signal")
	// ErrInvalidParameter means a caller-supplied scalar is out of range
	ErrInvalidParameter = errors.New("invalid parameter")
)
