package errors

import (
	"fmt"
	"net/http"
)

// RedemptionErrorKind classifies why a redemption attempt did not succeed.
type RedemptionErrorKind string

const (
	// KindInvalidCode means the scanned payload does not resolve to exactly one active vendor.
	KindInvalidCode RedemptionErrorKind = "INVALID_CODE"
	// KindNoEntitlement means the user has no active, non-expired subscription.
	KindNoEntitlement RedemptionErrorKind = "NO_ENTITLEMENT"
	// KindAlreadyRedeemedToday means the user already redeemed this vendor's discount today.
	KindAlreadyRedeemedToday RedemptionErrorKind = "ALREADY_REDEEMED_TODAY"
	// KindBackendUnavailable means a read stage failed on network, timeout or backend error.
	KindBackendUnavailable RedemptionErrorKind = "BACKEND_UNAVAILABLE"
	// KindCommitFailed means the insert failed for a reason other than the daily uniqueness rule.
	KindCommitFailed RedemptionErrorKind = "COMMIT_FAILED"
)

// RedemptionStage names the protocol step that produced an error.
type RedemptionStage string

const (
	StageResolveVendor    RedemptionStage = "resolve_vendor"
	StageCheckEntitlement RedemptionStage = "check_entitlement"
	StageCheckDuplicate   RedemptionStage = "check_duplicate"
	StageAcquireLock      RedemptionStage = "acquire_lock"
	StageCommit           RedemptionStage = "commit"
)

var redemptionMessages = map[RedemptionErrorKind]string{
	KindInvalidCode:          "This QR code is not valid for any participating vendor",
	KindNoEntitlement:        "An active subscription is required to redeem discounts",
	KindAlreadyRedeemedToday: "You have already redeemed this vendor's discount today",
	KindBackendUnavailable:   "Service temporarily unavailable, please scan again",
	KindCommitFailed:         "Could not record the redemption, please scan again",
}

var redemptionHTTPCodes = map[RedemptionErrorKind]int{
	KindInvalidCode:          http.StatusNotFound,
	KindNoEntitlement:        http.StatusPaymentRequired,
	KindAlreadyRedeemedToday: http.StatusConflict,
	KindBackendUnavailable:   http.StatusServiceUnavailable,
	KindCommitFailed:         http.StatusServiceUnavailable,
}

// RedemptionError is the typed failure of the redemption protocol.
// The wrapped cause is for logs only and never shown to end users.
type RedemptionError struct {
	Kind  RedemptionErrorKind
	Stage RedemptionStage
	Err   error
}

// NewRedemptionError creates a redemption error for the given stage.
func NewRedemptionError(kind RedemptionErrorKind, stage RedemptionStage, cause error) *RedemptionError {
	return &RedemptionError{
		Kind:  kind,
		Stage: stage,
		Err:   cause,
	}
}

// Error implements the error interface
func (e *RedemptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("redemption %s at %s: %v", e.Kind, e.Stage, e.Err)
	}

	return fmt.Sprintf("redemption %s at %s", e.Kind, e.Stage)
}

func (e *RedemptionError) Unwrap() error {
	return e.Err
}

// Is matches another RedemptionError of the same kind, so callers can use
// errors.Is(err, ErrAlreadyRedeemedToday) regardless of stage or cause.
func (e *RedemptionError) Is(target error) bool {
	t, ok := target.(*RedemptionError)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// HTTPCode returns the HTTP status code
func (e *RedemptionError) HTTPCode() int {
	if code, ok := redemptionHTTPCodes[e.Kind]; ok {
		return code
	}

	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *RedemptionError) ErrorCode() string {
	return string(e.Kind)
}

// Message returns the user-friendly error message
func (e *RedemptionError) Message() string {
	if msg, ok := redemptionMessages[e.Kind]; ok {
		return msg
	}

	return "Redemption failed"
}

// Details returns the failing stage; raw backend errors are not exposed.
func (e *RedemptionError) Details() string {
	return string(e.Stage)
}

// Retryable reports whether the user should be allowed to scan again.
func (e *RedemptionError) Retryable() bool {
	switch e.Kind {
	case KindInvalidCode, KindBackendUnavailable, KindCommitFailed:
		return true
	default:
		return false
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidCode          = &RedemptionError{Kind: KindInvalidCode}
	ErrNoEntitlement        = &RedemptionError{Kind: KindNoEntitlement}
	ErrAlreadyRedeemedToday = &RedemptionError{Kind: KindAlreadyRedeemedToday}
	ErrBackendUnavailable   = &RedemptionError{Kind: KindBackendUnavailable}
	ErrCommitFailed         = &RedemptionError{Kind: KindCommitFailed}
)
