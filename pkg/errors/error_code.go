package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199): resolvable by changing user input,
	// never sent to the backend.
	ErrCodeSymbolRequired       ErrorCode = 100
	ErrCodeSymbolNotAllowed     ErrorCode = 101
	ErrCodeInvalidQuantity      ErrorCode = 102
	ErrCodeInsufficientCash     ErrorCode = 103
	ErrCodeInsufficientShares   ErrorCode = 104
	ErrCodeWaitingForPrice      ErrorCode = 105
	ErrCodeInvalidIntent        ErrorCode = 106
	ErrCodeInvalidConfiguration ErrorCode = 107

	// Data/feed errors (200-299): a poll failed, previous data is
	// retained and the next tick retries.
	ErrCodeQuoteFetchFailed     ErrorCode = 200
	ErrCodeHistoryFetchFailed   ErrorCode = 201
	ErrCodeAccountFetchFailed   ErrorCode = 202
	ErrCodePositionsFetchFailed ErrorCode = 203
	ErrCodeOrdersFetchFailed    ErrorCode = 204
	ErrCodePortfolioFetchFailed ErrorCode = 205
	ErrCodeFeedStopped          ErrorCode = 206

	// Session errors (300-399)
	ErrCodeSessionLoadFailed    ErrorCode = 300
	ErrCodeSessionPersistFailed ErrorCode = 301
	ErrCodeNotAuthenticated     ErrorCode = 302

	// Submission/trading errors (500-599)
	ErrCodeOrderRejected      ErrorCode = 500
	ErrCodeOrderFailed        ErrorCode = 501
	ErrCodeSubmissionInFlight ErrorCode = 502
	ErrCodeVerdictInvalid     ErrorCode = 503
)
