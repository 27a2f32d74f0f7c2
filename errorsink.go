package lexgen

import "fmt"

// ErrorSink receives diagnostics from parsing and generation. A nil
// ErrorSink is valid everywhere one is accepted and suppresses all
// diagnostics; the generator never treats a missing sink as an error.
type ErrorSink interface {
	ReportError(line int, err error)
	Printf(format string, args ...any)
}

// NopSink discards everything reported to it. Useful when a caller
// wants generation to run without a sink at all but prefers a non-nil
// value to a nil interface.
type NopSink struct{}

func (NopSink) ReportError(int, error)        {}
func (NopSink) Printf(string, ...any) {}

// SliceSink records every diagnostic it receives, in order. It is the
// sink used throughout this package's tests: assertions read Errors
// and Messages directly rather than parsing formatted output.
type SliceSink struct {
	Errors   []error
	Messages []string
}

func (s *SliceSink) ReportError(_ int, err error) {
	s.Errors = append(s.Errors, err)
}

func (s *SliceSink) Printf(format string, args ...any) {
	s.Messages = append(s.Messages, fmt.Sprintf(format, args...))
}

func reportError(sink ErrorSink, line int, err error) {
	if sink == nil {
		return
	}
	sink.ReportError(line, err)
}

func printf(sink ErrorSink, format string, args ...any) {
	if sink == nil {
		return
	}
	sink.Printf(format, args...)
}
