package auth

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/hedibld92/Grimovies/internal/supabase"
)

var (
	// ErrAccountExists is returned when signing up with an email already registered on the device.
	ErrAccountExists = errors.New("Un compte avec cet email existe déjà")
	// ErrInvalidCredentials is returned when no local account matches the email and password.
	ErrInvalidCredentials = errors.New("Email ou mot de passe incorrect")
	// ErrSessionNotFound indicates no session is persisted.
	ErrSessionNotFound = errors.New("session not found")
	// ErrUnknownSession is returned for a session no provider can resolve.
	ErrUnknownSession = errors.New("unknown session")
)

// Validation messages shown before any I/O.
const (
	MsgMissingFields    = "Veuillez remplir tous les champs"
	MsgPasswordMismatch = "Les mots de passe ne correspondent pas"
	MsgPasswordTooShort = "Le mot de passe doit contenir au moins 6 caractères"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// ValidationError is a form error caught before contacting any provider.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsNetworkError reports whether err is a connectivity failure rather than a rejection.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr *supabase.APIError
	if errors.As(err, &apiErr) {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "network request failed")
}

// message renders err the way the sign-in form shows it.
func message(err error) string {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Message
	}
	var apiErr *supabase.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, ErrAccountExists) {
		return ErrAccountExists.Error()
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return ErrInvalidCredentials.Error()
	}
	return err.Error()
}
