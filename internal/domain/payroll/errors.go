package payroll

import "errors"

var (
	ErrBatchNotFound         = errors.New("payroll batch not found")
	ErrBatchAlreadyFinalized = errors.New("payroll batch already finalized")
	ErrInvalidPeriod         = errors.New("invalid payroll period")
)
