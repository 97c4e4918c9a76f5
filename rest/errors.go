package rest

import (
	"errors"
	"fmt"
)

// ErrorType discriminates one of the platform's closed set of REST
// error categories. Each is a distinct variant on the wire (an
// internally tagged Rust enum: a "type" field beside the variant's own
// fields); Go has no sum type for this shape, so
// APIError carries the discriminator plus every payload field any
// variant may need, left zero-valued for variants that do not use it.
type ErrorType string

//goland:noinspection GoUnusedConst
const (
	ErrorLabelMe                         ErrorType = "LabelMe"
	ErrorUnknownUser                     ErrorType = "UnknownUser"
	ErrorUnknownServer                   ErrorType = "UnknownServer"
	ErrorUnknownChannel                  ErrorType = "UnknownChannel"
	ErrorUnknownMessage                  ErrorType = "UnknownMessage"
	ErrorUnknownRole                     ErrorType = "UnknownRole"
	ErrorUnknownEmoji                    ErrorType = "UnknownEmoji"
	ErrorUnknownInvite                   ErrorType = "UnknownInvite"
	ErrorUnknownBan                      ErrorType = "UnknownBan"
	ErrorUnknownAttachment               ErrorType = "UnknownAttachment"
	ErrorUnknownWebhook                  ErrorType = "UnknownWebhook"
	ErrorUnknownSession                  ErrorType = "UnknownSession"
	ErrorAlreadyOnboarded                ErrorType = "AlreadyOnboarded"
	ErrorUsernameTaken                   ErrorType = "UsernameTaken"
	ErrorInvalidUsername                 ErrorType = "InvalidUsername"
	ErrorDiscriminatorChangeRatelimited  ErrorType = "DiscriminatorChangeRatelimited"
	ErrorInvalidCredentials              ErrorType = "InvalidCredentials"
	ErrorInvalidProperty                 ErrorType = "InvalidProperty"
	ErrorInvalidSession                  ErrorType = "InvalidSession"
	ErrorInvalidOperation                ErrorType = "InvalidOperation"
	ErrorInvalidFlagValue                ErrorType = "InvalidFlagValue"
	ErrorMissingPermission               ErrorType = "MissingPermission"
	ErrorMissingUserPermission           ErrorType = "MissingUserPermission"
	ErrorNotElevated                     ErrorType = "NotElevated"
	ErrorNotPrivileged                   ErrorType = "NotPrivileged"
	ErrorCannotRemoveYourself            ErrorType = "CannotRemoveYourself"
	ErrorNotFriends                      ErrorType = "NotFriends"
	ErrorAlreadyFriends                  ErrorType = "AlreadyFriends"
	ErrorAlreadySentRequest              ErrorType = "AlreadySentRequest"
	ErrorBlocked                         ErrorType = "Blocked"
	ErrorBlockedByOtherUser              ErrorType = "BlockedByOtherUser"
	ErrorNotInGroup                      ErrorType = "NotInGroup"
	ErrorAlreadyInGroup                  ErrorType = "AlreadyInGroup"
	ErrorGroupTooLarge                   ErrorType = "GroupTooLarge"
	ErrorTooManyChannels                 ErrorType = "TooManyChannels"
	ErrorTooManyServers                  ErrorType = "TooManyServers"
	ErrorTooManyEmoji                    ErrorType = "TooManyEmoji"
	ErrorTooManyRoles                    ErrorType = "TooManyRoles"
	ErrorTooManyAttachments              ErrorType = "TooManyAttachments"
	ErrorTooManyEmbeds                   ErrorType = "TooManyEmbeds"
	ErrorTooManyReplies                  ErrorType = "TooManyReplies"
	ErrorTooManyPendingFriendRequests    ErrorType = "TooManyPendingFriendRequests"
	ErrorReachedMaximumBots              ErrorType = "ReachedMaximumBots"
	ErrorDuplicateNonce                  ErrorType = "DuplicateNonce"
	ErrorEmptyMessage                    ErrorType = "EmptyMessage"
	ErrorPayloadTooLarge                 ErrorType = "PayloadTooLarge"
	ErrorCannotEditMessage               ErrorType = "CannotEditMessage"
	ErrorCannotJoinCall                  ErrorType = "CannotJoinCall"
	ErrorFailedValidation                ErrorType = "FailedValidation"
	ErrorBanned                          ErrorType = "Banned"
	ErrorUnauthenticated                 ErrorType = "Unauthenticated"
	ErrorIsBot                           ErrorType = "IsBot"
	ErrorIsNotBot                        ErrorType = "IsNotBot"
	ErrorBotIsPrivileged                 ErrorType = "BotIsPrivileged"
	ErrorMFARequired                     ErrorType = "MFARequired"
	ErrorMFAAlreadyEnabled               ErrorType = "MFAAlreadyEnabled"
	ErrorMFANotSupported                 ErrorType = "MFANotSupported"
	ErrorMFAInvalidTOTPCode              ErrorType = "MFAInvalidTOTPCode"
	ErrorTotpTicketNotValidated          ErrorType = "TotpTicketNotValidated"
	ErrorMissingScope                    ErrorType = "MissingScope"
	ErrorFeatureDisabled                 ErrorType = "FeatureDisabled"
	ErrorVosoUnavailable                 ErrorType = "VosoUnavailable"
	ErrorNotFound                        ErrorType = "NotFound"
	ErrorNoEffect                        ErrorType = "NoEffect"
	ErrorInternalError                   ErrorType = "InternalError"
)

// APIError is one member of the platform's error taxonomy, decoded
// from a non-2xx REST response. Only the fields relevant to Type are
// populated; the rest are left zero.
type APIError struct {
	Type ErrorType `json:"type"`

	Permission string `json:"permission,omitempty"`
	Max        int    `json:"max,omitempty"`
	Location   string `json:"location,omitempty"`

	StatusCode int    `json:"-"`
	RawBody    []byte `json:"-"`
}

func (e *APIError) Error() string {
	switch {
	case e.Permission != "":
		return fmt.Sprintf("rest: %s (permission=%s)", e.Type, e.Permission)
	case e.Max != 0:
		return fmt.Sprintf("rest: %s (max=%d)", e.Type, e.Max)
	default:
		return fmt.Sprintf("rest: %s (http %d)", e.Type, e.StatusCode)
	}
}

// Is lets errors.Is(err, &rest.APIError{Type: rest.ErrorUnknownChannel})
// read naturally by comparing Type, independent of payload fields.
func (e *APIError) Is(target error) bool {
	other, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Type == other.Type
}

// IsType reports whether err is an *APIError of the given type.
func IsType(err error, t ErrorType) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Type == t
}
