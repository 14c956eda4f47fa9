// Package alfred renders device listings as Alfred script-filter JSON.
package alfred

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/darkermage/alfred-bluetooth/internal/bluetooth"
)

// Item is one row in an Alfred script-filter result.
type Item struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Arg      string `json:"arg"`
}

// ScriptFilter is the top-level script-filter document.
type ScriptFilter struct {
	Items []Item `json:"items"`
}

// NewScriptFilter converts a device listing into script-filter items,
// preserving order. The address travels in the item arg so the workflow's
// follow-up action receives it verbatim.
func NewScriptFilter(devices []bluetooth.Device) ScriptFilter {
	items := make([]Item, 0, len(devices))
	for _, device := range devices {
		title := device.Name
		if device.Connected {
			title = fmt.Sprintf("%s (Connected)", device.Name)
		}

		items = append(items, Item{
			Type:     "default",
			Title:    title,
			Subtitle: "MAC:" + device.Address,
			Arg:      device.Address,
		})
	}

	return ScriptFilter{Items: items}
}

// Write encodes the listing as script-filter JSON.
func Write(w io.Writer, devices []bluetooth.Device) error {
	if err := json.NewEncoder(w).Encode(NewScriptFilter(devices)); err != nil {
		return fmt.Errorf("failed to encode script filter: %w", err)
	}
	return nil
}
