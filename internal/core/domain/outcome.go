package domain

// ErrorCode classifies a rejected observation.
type ErrorCode string

const (
	CodeCampaignNotFound    ErrorCode = "CampaignNotFound"
	CodePlatformNotAllowed  ErrorCode = "PlatformNotAllowed"
	CodeNonIncrementalData  ErrorCode = "NonIncrementalData"
	CodeOrderNotFound       ErrorCode = "OrderNotFound"
	CodeBillboardNotFound   ErrorCode = "BillboardNotFound"
	CodeCreativeNotFound    ErrorCode = "CreativeNotFound"
	CodeTimestampOutOfRange ErrorCode = "TimestampOutOfRange"
	CodeDurationTooShort    ErrorCode = "DurationTooShort"
)

var codeMessages = map[ErrorCode]string{
	CodeCampaignNotFound:    "Campaign ID does not exist",
	CodePlatformNotAllowed:  "Platform does not exist for the Campaign",
	CodeNonIncrementalData:  "Data is lower than previously reported",
	CodeOrderNotFound:       "Order ID does not exist",
	CodeBillboardNotFound:   "Billboard ID does not exist",
	CodeCreativeNotFound:    "Creative ID does not exist",
	CodeTimestampOutOfRange: "Timestamp out of Order period range",
	CodeDurationTooShort:    "Duration is lower than expected",
}

// Message returns the human readable text of the code.
func (c ErrorCode) Message() string {
	return codeMessages[c]
}

// OutcomeKind names the operation an outcome reports on.
type OutcomeKind string

const (
	KindAggregatedData OutcomeKind = "aggregated_data"
	KindSessionData    OutcomeKind = "session_data"
	KindCampaignSet    OutcomeKind = "campaign_set"
	KindOrderSet       OutcomeKind = "order_set"
)

// Outcome is the structured result of one operation, delivered to the
// notification channel. Validation failures are outcomes, never errors.
type Outcome struct {
	ID      string      `json:"id"`
	Kind    OutcomeKind `json:"kind"`
	Subject string      `json:"subject"`
	Failed  bool        `json:"failed"`
	Code    ErrorCode   `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Succeeded returns a success outcome with no message.
func Succeeded(kind OutcomeKind, subject string) Outcome {
	return Outcome{Kind: kind, Subject: subject}
}

// Rejected returns a failed outcome for code.
func Rejected(kind OutcomeKind, subject string, code ErrorCode) Outcome {
	return Outcome{
		Kind:    kind,
		Subject: subject,
		Failed:  true,
		Code:    code,
		Message: code.Message(),
	}
}
