package worker

import (
	"context"
	"dommorph/pkg/model"
	"io"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

// Checker returns the registration status of a candidate
type Checker interface {
	Check(ctx context.Context, candidate string) model.CheckResult
}

// Summary counts results per status
type Summary struct {
	Registered    int
	NotRegistered int
	Errors        int
}

// NewProgressBar returns a progress bar for n checks written to w
func NewProgressBar(n int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan]Checking variations[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(w, "\n")
		}),
	)
}

// RunCheckWorker checks candidates one after the other and returns one result per
// candidate, in the same order. Once ctx is done the remaining candidates are
// reported as errors without being queried. bar and logger may be nil.
func RunCheckWorker(ctx context.Context, checker Checker, candidates []string, bar *progressbar.ProgressBar, logger log.FieldLogger) []model.CheckResult {
	if logger == nil {
		logger = log.StandardLogger()
	}
	results := make([]model.CheckResult, 0, len(candidates))
	for _, candidate := range candidates {
		var r model.CheckResult
		if err := ctx.Err(); err != nil {
			r = model.CheckResult{Candidate: candidate, Status: model.StatusError, Message: err.Error()}
		} else {
			r = checker.Check(ctx, candidate)
		}
		logger.WithField("domain", candidate).Debugf("Status: %v", r.StatusString())
		results = append(results, r)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return results
}

// GetSummary counts the results per status
func GetSummary(results []model.CheckResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case model.StatusRegistered:
			s.Registered++
		case model.StatusNotRegistered:
			s.NotRegistered++
		default:
			s.Errors++
		}
	}
	return s
}
