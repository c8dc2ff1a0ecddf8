package errors

import (
	stderrors "errors"
	"net/http"
)

// Partner session error types
const (
	ErrorTypeSessionMissing  ErrorType = "session_missing"
	ErrorTypeTokenExpired    ErrorType = "token_expired"
	ErrorTypeTokenInvalid    ErrorType = "token_invalid"
	ErrorTypePartnerMismatch ErrorType = "partner_mismatch"
)

// AuthError is a partner session failure.
type AuthError struct {
	*AppError
	// ShouldLog is false for failures that happen routinely, such as expiry.
	ShouldLog bool
	// SecurityEvent marks tampered tokens and cross-partner access attempts.
	SecurityEvent bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewSessionMissingError is returned when no session token was presented.
func NewSessionMissingError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeSessionMissing,
			Message: "partner session required",
			Code:    http.StatusUnauthorized,
		},
	}
}

func NewTokenExpiredError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenExpired,
			Message: "session has expired, please sign in again",
			Code:    http.StatusUnauthorized,
		},
	}
}

func NewTokenInvalidError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "invalid session token",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewPartnerMismatchError is returned when a valid session addresses
// another partner's resources.
func NewPartnerMismatchError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypePartnerMismatch,
			Message: "session does not belong to this partner",
			Code:    http.StatusForbidden,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// IsAuthError checks if the error is an AuthError (supports wrapped errors via errors.As)
func IsAuthError(err error) bool {
	var authErr *AuthError
	return stderrors.As(err, &authErr)
}

// GetAuthError extracts AuthError from error chain (supports wrapped errors via errors.As)
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError returns true if the authentication error should be logged
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}

// IsSecurityEvent returns true if the error should be tracked as a security event
func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
