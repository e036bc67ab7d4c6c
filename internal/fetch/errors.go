package fetch

import "fmt"

// StrategyError reports an extraction, network, or encoding failure from one
// strategy. It is recoverable locally by the orchestrator via fallback and is
// never surfaced directly to the end caller.
type StrategyError struct {
	Strategy string
	Err      error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("%s strategy: %v", e.Strategy, e.Err)
}

func (e *StrategyError) Unwrap() error {
	return e.Err
}

// Message returns the human-readable failure text without the strategy
// prefix, for surfacing through DownloadError.
func (e *StrategyError) Message() string {
	return e.Err.Error()
}

// Fail wraps err as a StrategyError for the named strategy.
func Fail(strategy string, err error) *StrategyError {
	return &StrategyError{Strategy: strategy, Err: err}
}

// Failf is Fail with formatting.
func Failf(strategy, format string, args ...any) *StrategyError {
	return &StrategyError{Strategy: strategy, Err: fmt.Errorf(format, args...)}
}

// DownloadError is the terminal failure surfaced to the caller once no viable
// strategy remains. Msg carries the message of the last attempted strategy
// (or the validation failure when no strategy could run).
type DownloadError struct {
	Msg string
	Err error
}

func (e *DownloadError) Error() string {
	return e.Msg
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}
