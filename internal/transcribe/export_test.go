package transcribe

// Internal hooks exposed for black-box tests in transcribe_test.

// WithClient exposes withClient so tests can inject a mock API client.
var WithClient = withClient

// ClassifyError exposes classifyError for testing.
var ClassifyError = classifyError

// IsRetryableError exposes isRetryableError for testing.
var IsRetryableError = isRetryableError
