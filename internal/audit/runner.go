package audit

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

const updateBuffer = 100

// Runner invokes the external audit CLI and reports its lifecycle over an
// update channel. One Runner handles one audit run; there is no
// cancellation and no retry, the spawned process simply runs to exit.
type Runner struct {
	Command string // audit executable, e.g. "tinyseoai"
	Depth   string // subcommand selecting audit depth, e.g. "audit-ai"
	Log     *logrus.Logger
}

// Start launches the audit in a background goroutine and returns the
// channel its updates arrive on. The channel is closed after the final
// Done message, or once the goroutine exits for any reason.
func (r Runner) Start(url string) <-chan Update {
	updates := make(chan Update, updateBuffer)
	go func() {
		defer close(updates)
		r.run(url, updates)
	}()
	return updates
}

func (r Runner) run(url string, updates chan<- Update) {
	log := r.logger().WithFields(logrus.Fields{"url": url, "command": r.Command})
	log.Info("audit started")

	r.send(updates, Progress{Current: 0, Total: 100, Message: "Starting audit..."})

	cmd := exec.Command(r.Command, r.Depth, url, "--output-json")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	switch {
	case err == nil:
		result, parseErr := parseResult(stdout.Bytes(), url)
		if parseErr != nil {
			log.WithError(parseErr).Warn("unparsable audit output, using placeholder result")
		}
		r.send(updates, ResultUpdate{Result: result})
		log.WithField("health_score", result.Metrics.HealthScore).Info("audit complete")
	case isExitError(err):
		msg := "Audit failed: " + strings.TrimSpace(stderr.String())
		r.send(updates, ErrorUpdate{Message: msg})
		log.WithError(err).Error("audit exited non-zero")
	default:
		r.send(updates, ErrorUpdate{Message: "Failed to run audit: " + err.Error()})
		log.WithError(err).Error("audit launch failed")
	}

	r.send(updates, Done{})
	log.Info("audit finished")
}

// parseResult decodes the tool's JSON payload. A zero exit status means
// the tool believes it succeeded, so malformed output falls back to the
// deterministic placeholder rather than surfacing an error.
func parseResult(payload []byte, url string) (Result, error) {
	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return PlaceholderResult(url), err
	}
	return result, nil
}

// send never blocks: the buffer is far larger than the message count a
// run can produce, so a full channel means the consumer is gone. The
// update is dropped and logged, not retried.
func (r Runner) send(updates chan<- Update, u Update) {
	select {
	case updates <- u:
	default:
		r.logger().WithField("update", u).Warn("update channel full, dropping message")
	}
}

func (r Runner) logger() *logrus.Logger {
	if r.Log != nil {
		return r.Log
	}
	return logrus.StandardLogger()
}

func isExitError(err error) bool {
	_, ok := err.(*exec.ExitError)
	return ok
}
