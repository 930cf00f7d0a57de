package harness

import "log"

// LogReporter writes one line per harness event to a log.Logger.
type LogReporter struct {
	*log.Logger
}

// Describe logs the case description.
func (lr LogReporter) Describe(desc string) { lr.Printf("%s", desc) }

// Report logs an assertion result.
func (lr LogReporter) Report(res Result) { lr.Printf("%v", res) }

// Finished logs the summary.
func (lr LogReporter) Finished(sum Summary) { lr.Printf("TEST COMPLETE %v", sum) }
