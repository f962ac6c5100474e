// Package apperr 定義對外回應的業務錯誤，每個錯誤帶有 HTTP 狀態碼與穩定的機器可讀代碼。
package apperr

import (
	"fmt"
	"net/http"
)

// Error 業務錯誤
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is 以 Code 比對，讓 With / Wrap 產生的副本仍可用 errors.Is 判斷
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// With 回傳附帶額外回應欄位的副本
func (e *Error) With(key string, value any) *Error {
	cp := *e
	cp.Details = make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	cp.Details[key] = value
	return &cp
}

// Wrap 回傳帶有原始錯誤的副本
func (e *Error) Wrap(err error) *Error {
	cp := *e
	cp.Err = err
	return &cp
}

// Auth
var (
	ErrMissingCredentials      = New(http.StatusBadRequest, "MISSING_CREDENTIALS", "Email and password are required")
	ErrWeakPassword            = New(http.StatusBadRequest, "WEAK_PASSWORD", "Password must be at least 6 characters long")
	ErrUserExists              = New(http.StatusConflict, "USER_EXISTS", "User with this email already exists")
	ErrInvalidCredentials      = New(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
	ErrUserNotFound            = New(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrMissingToken            = New(http.StatusUnauthorized, "MISSING_TOKEN", "Access token required")
	ErrInvalidToken            = New(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	ErrAuthenticationRequired  = New(http.StatusUnauthorized, "AUTHENTICATION_REQUIRED", "Authentication required")
	ErrInsufficientPermissions = New(http.StatusForbidden, "INSUFFICIENT_PERMISSIONS", "Insufficient permissions")
)

// Gadgets
var (
	ErrGadgetNotFound               = New(http.StatusNotFound, "GADGET_NOT_FOUND", "Gadget not found")
	ErrMissingName                  = New(http.StatusBadRequest, "MISSING_NAME", "Gadget name is required")
	ErrInvalidStatus                = New(http.StatusBadRequest, "INVALID_STATUS", "Invalid status")
	ErrCodenameGeneration           = New(http.StatusInternalServerError, "CODENAME_GENERATION_ERROR", "Failed to generate unique codename")
	ErrInvalidStatusForSelfDestruct = New(http.StatusBadRequest, "INVALID_STATUS_FOR_SELF_DESTRUCT", "Gadget cannot be self-destructed in its current status")
	ErrInvalidConfirmationCode      = New(http.StatusBadRequest, "INVALID_CONFIRMATION_CODE", "Invalid confirmation code")
)

// Transport / fallback
var (
	ErrInvalidRequestBody = New(http.StatusBadRequest, "INVALID_REQUEST_BODY", "Invalid request body")
	ErrNotFound           = New(http.StatusNotFound, "NOT_FOUND", "Endpoint not found")
	ErrMethodNotAllowed   = New(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	ErrInternal           = New(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal Server Error")
	ErrTokenVerification  = New(http.StatusInternalServerError, "TOKEN_VERIFICATION_ERROR", "Token verification failed")
	ErrRegistration       = New(http.StatusInternalServerError, "REGISTRATION_ERROR", "Registration failed")
	ErrLogin              = New(http.StatusInternalServerError, "LOGIN_ERROR", "Login failed")
	ErrProfile            = New(http.StatusInternalServerError, "PROFILE_ERROR", "Failed to retrieve profile")
	ErrGadgetsFetch       = New(http.StatusInternalServerError, "GADGETS_FETCH_ERROR", "Failed to retrieve gadgets")
	ErrGadgetFetch        = New(http.StatusInternalServerError, "GADGET_FETCH_ERROR", "Failed to retrieve gadget")
	ErrGadgetCreate       = New(http.StatusInternalServerError, "GADGET_CREATE_ERROR", "Failed to create gadget")
	ErrGadgetUpdate       = New(http.StatusInternalServerError, "GADGET_UPDATE_ERROR", "Failed to update gadget")
	ErrGadgetDelete       = New(http.StatusInternalServerError, "GADGET_DELETE_ERROR", "Failed to decommission gadget")
	ErrSelfDestruct       = New(http.StatusInternalServerError, "SELF_DESTRUCT_ERROR", "Self-destruct sequence failed")
	ErrDatabaseUnhealthy  = New(http.StatusServiceUnavailable, "DATABASE_UNHEALTHY", "database unhealthy")
	ErrCacheUnhealthy     = New(http.StatusServiceUnavailable, "CACHE_UNHEALTHY", "cache unhealthy")
)
