package logtesting

import (
	"bytes"
	"strings"

	"github.com/caffeine-storm/buildinged/logging"
)

// Runs 'fn' with all logging redirected to a buffer and returns the lines
// that were logged.
func CollectOutput(fn func()) []string {
	buf := &bytes.Buffer{}
	reset := logging.Redirect(buf)
	defer reset()

	fn()

	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
