// Package extensibility holds the pluggable pieces a Store or component can be
// configured with: bug reporters, step expressions and scripted triggers.
package extensibility

import (
	"sync"

	"go.uber.org/zap"

	"github.com/comalice/reducerx/internal/core"
)

// LoggingReporter logs every report at error level under the message "BUG".
type LoggingReporter struct {
	logger *zap.Logger
}

var _ core.Reporter = (*LoggingReporter)(nil)

// NewLoggingReporter creates a LoggingReporter. A nil logger discards reports.
func NewLoggingReporter(logger *zap.Logger) *LoggingReporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingReporter{logger: logger}
}

// Report logs err with its scope.
func (r *LoggingReporter) Report(scope string, err error) {
	r.logger.Error("BUG", zap.String("scope", scope), zap.Error(err))
}

// Report is one recorded call to CollectingReporter.
type Report struct {
	Scope string
	Err   error
}

// CollectingReporter keeps every report in memory. Tests and the CLI use it to
// count bugs after a run.
type CollectingReporter struct {
	mu      sync.Mutex
	reports []Report
}

var _ core.Reporter = (*CollectingReporter)(nil)

// Report records the call.
func (r *CollectingReporter) Report(scope string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Report{Scope: scope, Err: err})
}

// Count returns the number of reports so far.
func (r *CollectingReporter) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

// Errors returns the reported errors in order.
func (r *CollectingReporter) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]error, len(r.reports))
	for i, rep := range r.reports {
		out[i] = rep.Err
	}
	return out
}

// Reports returns a copy of everything recorded.
func (r *CollectingReporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Report(nil), r.reports...)
}

// Reset forgets all reports.
func (r *CollectingReporter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = nil
}

// MultiReporter fans a report out to every reporter in order. nil entries are skipped.
type MultiReporter []core.Reporter

// Report forwards to each reporter.
func (m MultiReporter) Report(scope string, err error) {
	for _, r := range m {
		if r != nil {
			r.Report(scope, err)
		}
	}
}
