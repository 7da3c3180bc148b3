package checkin

import "fmt"

// Kind tags the terminal outcome of a check-in run.
type Kind string

const (
	KindSuccess           Kind = "success"
	KindAlreadyCheckedIn  Kind = "already_checked_in"
	KindInvalidCredential Kind = "invalid_credential"
	KindTransportFailure  Kind = "transport_failure"
	KindMalformedResponse Kind = "malformed_response"
	KindBusinessError     Kind = "business_error"
	KindInternalError     Kind = "internal_error"
)

// maxRawExcerpt bounds how much of an unparseable response body gets
// quoted in a notification.
const maxRawExcerpt = 100

// Outcome is the result of one run. Exactly one is produced per
// invocation; it is reported through the log and the notifier, never
// persisted.
type Outcome struct {
	Kind      Kind
	IncrPoint int64
	SumPoint  int64
	Code      int
	Message   string
	Raw       string
}

// OK reports whether the run should count as successful. A day whose
// check-in already happened is success for the process, even though no
// new check-in occurred; callers needing that distinction branch on
// Kind instead.
func (o Outcome) OK() bool {
	return o.Kind == KindSuccess || o.Kind == KindAlreadyCheckedIn
}

// Title is the notification headline for this outcome.
func (o Outcome) Title() string {
	switch o.Kind {
	case KindSuccess:
		return "Check-in succeeded"
	case KindAlreadyCheckedIn:
		return "Already checked in"
	case KindInternalError:
		return "Check-in error"
	default:
		return "Check-in failed"
	}
}

// Body is the notification text for this outcome.
func (o Outcome) Body() string {
	switch o.Kind {
	case KindSuccess:
		return fmt.Sprintf("Earned %d points, %d in total.", o.IncrPoint, o.SumPoint)
	case KindAlreadyCheckedIn:
		return "Today's check-in is already done, nothing to do."
	case KindInvalidCredential:
		return "Cookie is invalid or expired, please export a fresh one."
	case KindTransportFailure:
		return "Check-in request kept failing, please check in manually."
	case KindMalformedResponse:
		return "Unexpected response from the check-in API: " + truncate(o.Raw, maxRawExcerpt)
	case KindBusinessError:
		return fmt.Sprintf("%s (code %d), please check in manually.", o.Message, o.Code)
	case KindInternalError:
		return "The check-in workflow crashed: " + o.Message
	}
	return o.Message
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
