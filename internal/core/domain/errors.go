package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrUserInactive     = errors.New("user account is inactive")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrInvalidRole      = errors.New("invalid role")
	ErrRoleChangeDenied = errors.New("role change requires super admin")
	ErrCannotDeactivate = errors.New("cannot deactivate this user")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrSessionRevoked  = errors.New("session revoked")
)

// Ledger errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPersonnelNotFound   = errors.New("personnel not found")
	ErrPaymentNotFound     = errors.New("personnel payment not found")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// Timesheet, project and messaging errors
var (
	ErrTimesheetNotFound    = errors.New("timesheet not found")
	ErrTimesheetLocked      = errors.New("timesheet is no longer editable")
	ErrProjectNotFound      = errors.New("project not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
