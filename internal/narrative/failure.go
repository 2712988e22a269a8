package narrative

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrMissingCredential is returned when neither the provider nor the request
// carries an API key.
var ErrMissingCredential = errors.New("narrative: no API key available")

// FailureKind classifies why generation did not produce text
type FailureKind string

const (
	KindUnauthorized      FailureKind = "unauthorized"
	KindPaymentRequired   FailureKind = "payment_required"
	KindForbidden         FailureKind = "forbidden"
	KindRateLimited       FailureKind = "rate_limited"
	KindNetwork           FailureKind = "network"
	KindMalformedResponse FailureKind = "malformed_response"
	KindMissingCredential FailureKind = "missing_credential"
	KindGeneric           FailureKind = "generic"
)

// Provider identifies the backing service for user-facing messages
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// DisplayName is the provider as users know it
func (p Provider) DisplayName() string {
	switch p {
	case ProviderAnthropic:
		return "Anthropic"
	default:
		return "OpenAI"
	}
}

// KeyURL is where a user can issue a new key
func (p Provider) KeyURL() string {
	switch p {
	case ProviderAnthropic:
		return "console.anthropic.com/settings/keys"
	default:
		return "platform.openai.com/api-keys"
	}
}

// Failure is a classified narrative service error
type Failure struct {
	Provider   Provider
	Kind       FailureKind
	StatusCode int
	Err        error
}

func (f *Failure) Error() string {
	if f.StatusCode != 0 {
		return fmt.Sprintf("narrative %s failure (%s, status %d): %v", f.Provider, f.Kind, f.StatusCode, f.Err)
	}
	return fmt.Sprintf("narrative %s failure (%s): %v", f.Provider, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Warning is the message shown to the user. Each kind reads differently.
func (f *Failure) Warning() string {
	name := f.Provider.DisplayName()
	switch f.Kind {
	case KindRateLimited:
		return fmt.Sprintf("%s rate limit reached. Using default text.", name)
	case KindUnauthorized:
		return fmt.Sprintf("Invalid %s API key.", name)
	case KindForbidden:
		return fmt.Sprintf("%s access forbidden. Generate a new key at %s", name, f.Provider.KeyURL())
	case KindPaymentRequired:
		return fmt.Sprintf("%s account requires payment.", name)
	case KindNetwork:
		return "AI narrative generation failed (network error), using default text"
	case KindMalformedResponse:
		return "AI narrative generation returned an unreadable response, using default text"
	case KindMissingCredential:
		return fmt.Sprintf("No %s API key set. Use /narrative-key to add one; using default text.", name)
	default:
		if f.StatusCode != 0 {
			return fmt.Sprintf("AI narrative generation failed (%d), using default text", f.StatusCode)
		}
		return "AI narrative generation failed, using default text"
	}
}

// InvalidatesCredential reports whether the key that was used should be
// forgotten.
func (f *Failure) InvalidatesCredential() bool {
	return f.Kind == KindUnauthorized || f.Kind == KindForbidden
}

// ClassifyStatus maps an HTTP status to a failure kind
func ClassifyStatus(code int) FailureKind {
	switch code {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusPaymentRequired:
		return KindPaymentRequired
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindGeneric
	}
}

// AsFailure returns err as a *Failure, classifying unknown errors as generic
func AsFailure(provider Provider, err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	if errors.Is(err, ErrMissingCredential) {
		return &Failure{Provider: provider, Kind: KindMissingCredential, Err: err}
	}
	return &Failure{Provider: provider, Kind: KindGeneric, Err: err}
}

// ClassifyTransportError sorts an SDK error that carries no HTTP status. A
// body that arrived but could not be decoded is a malformed response; the
// rest are treated as network failures.
func ClassifyTransportError(err error) FailureKind {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		return KindMalformedResponse
	}

	// The SDKs decode with their own json packages, so match on the message too
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "json") || strings.Contains(msg, "unmarshal") || strings.Contains(msg, "decod") {
		return KindMalformedResponse
	}
	return KindNetwork
}
