package linearmodel

import "errors"

var (
	ErrNoOptions           = errors.New("no initialized model options")
	ErrTargetLenMismatch   = errors.New("target length does not match target rows")
	ErrNoTrainingMatrix    = errors.New("no training matrix")
	ErrNoTargetMatrix      = errors.New("no target matrix")
	ErrNoDesignMatrix      = errors.New("no design matrix for inference")
	ErrFeatureLenMismatch  = errors.New("number of features does not match number of model coefficients")
	ErrInsufficientPoints  = errors.New("fewer observations than model coefficients")
	ErrSingularMatrix      = errors.New("design matrix is rank deficient")
	ErrInvalidDegree       = errors.New("polynomial degree must be at least 1")
	ErrNonFiniteInput      = errors.New("input contains NaN or Inf values")
	ErrUntrainedPolynomial = errors.New("polynomial has not been fit yet")
)
