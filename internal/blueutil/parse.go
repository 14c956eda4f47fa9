package blueutil

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/darkermage/alfred-bluetooth/internal/bluetooth"
)

// recordPattern matches one line of `blueutil --paired` output, capturing the
// 17-character hardware address and the quoted device name.
var recordPattern = regexp.MustCompile(`^address: ([a-zA-Z0-9_-]{17}),.*name: "([^"]*)"`)

// disconnectedMarker is tested against the entire line rather than a
// dedicated field. blueutil keeps the phrase in the connection-state
// position, and that assumption is kept as-is.
const disconnectedMarker = "not connected"

// parseRecord converts one line of `--paired` output into a device record.
// A line that does not match the fixed record format signals an environment
// fault, not a skippable record: the caller aborts the whole listing.
func parseRecord(line string) (bluetooth.Device, error) {
	m := recordPattern.FindStringSubmatch(line)
	if m == nil {
		return bluetooth.Device{}, fmt.Errorf("unexpected blueutil record: %q", line)
	}

	return bluetooth.Device{
		Name:      m[2],
		Address:   m[1],
		Connected: !strings.Contains(line, disconnectedMarker),
	}, nil
}
