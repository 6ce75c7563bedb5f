package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidFloat indicates a negative starting float on shift open.
var ErrInvalidFloat = errors.New("starting float must not be negative")

// ErrNoActiveShift indicates a sale or expense operation was attempted by a
// cashier with no active shift.
var ErrNoActiveShift = errors.New("no active shift")

// ErrShiftNotActive indicates an operation that requires an Active shift was
// attempted while the shift is Closing or Closed.
var ErrShiftNotActive = errors.New("shift is not active")

// ErrShiftNotClosing indicates a close confirmation or cancellation was
// attempted while the shift is not in the Closing state.
var ErrShiftNotClosing = errors.New("shift is not closing")

// ErrRedemptionExceedsBalance indicates a loyalty redemption request above
// the redeemable cap. Redemption is rejected at this boundary, never clamped.
var ErrRedemptionExceedsBalance = errors.New("redemption exceeds redeemable balance")

// ErrInsufficientPayment indicates the tendered payments do not cover the
// amount due after points and deposits.
var ErrInsufficientPayment = errors.New("insufficient payment")

// ErrVersionConflict indicates an optimistic concurrency check failed on a
// shift write; the caller should reload and retry.
var ErrVersionConflict = errors.New("version conflict")

// ErrUnauthorized indicates the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated caller may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the presented refresh token has expired.
var ErrRefreshTokenExpired = errors.New("refresh token expired")
