package bluetooth

import "strings"

// Device represents one paired Bluetooth device as reported by the control
// utility. A record is a snapshot taken at list time and is never mutated;
// re-listing produces fresh records.
type Device struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Connected bool   `json:"connected"`
}

// filterKind selects which Filter variant is active.
type filterKind int

const (
	filterAll filterKind = iota
	filterAddresses
	filterName
)

// Filter narrows a device listing. Exactly one variant is active at a time;
// use the constructors below.
type Filter struct {
	kind      filterKind
	addresses []string
	name      string
}

// AllDevices returns a filter that keeps every device.
func AllDevices() Filter {
	return Filter{kind: filterAll}
}

// ByAddresses returns a filter that keeps devices whose address matches one
// of the given addresses, ignoring case.
func ByAddresses(addresses []string) Filter {
	return Filter{kind: filterAddresses, addresses: addresses}
}

// ByName returns a filter that keeps devices whose name contains the given
// substring, ignoring case.
func ByName(substring string) Filter {
	return Filter{kind: filterName, name: substring}
}

// Matches reports whether the device passes the filter.
func (f Filter) Matches(d Device) bool {
	switch f.kind {
	case filterAddresses:
		for _, address := range f.addresses {
			if strings.EqualFold(address, d.Address) {
				return true
			}
		}
		return false
	case filterName:
		return strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.name))
	default:
		return true
	}
}

// ListOptions controls filtering and ordering of a device listing.
// PreviousAddress biases ordering only; it never filters.
type ListOptions struct {
	Filter          Filter
	PreviousAddress string
}
