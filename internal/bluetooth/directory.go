package bluetooth

import (
	"context"
	"sort"
	"strings"
)

// Directory lists paired devices and looks up single devices by address.
type Directory struct {
	gateway Gateway
}

// NewDirectory creates a directory backed by the given gateway.
func NewDirectory(gateway Gateway) *Directory {
	return &Directory{gateway: gateway}
}

// ListDevices fetches the paired devices, applies the filter and orders the
// result: connected devices first, then, if a previous address is set, the
// matching device is moved to the front. Both reorderings are stable, so the
// relative order reported by the utility is otherwise preserved.
func (d *Directory) ListDevices(ctx context.Context, opts ListOptions) ([]Device, error) {
	devices, err := d.gateway.ListPaired(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]Device, 0, len(devices))
	for _, device := range devices {
		if opts.Filter.Matches(device) {
			filtered = append(filtered, device)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Connected && !filtered[j].Connected
	})

	if opts.PreviousAddress != "" {
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.EqualFold(filtered[i].Address, opts.PreviousAddress) &&
				!strings.EqualFold(filtered[j].Address, opts.PreviousAddress)
		})
	}

	return filtered, nil
}

// GetDeviceInfo returns the paired device with the given address, matched
// case-insensitively. Should the utility ever report duplicate addresses,
// the first match wins; which record that is stays unspecified.
func (d *Directory) GetDeviceInfo(ctx context.Context, address string) (Device, error) {
	devices, err := d.ListDevices(ctx, ListOptions{Filter: ByAddresses([]string{address})})
	if err != nil {
		return Device{}, err
	}

	if len(devices) == 0 {
		return Device{}, &NotFoundError{Address: address}
	}

	return devices[0], nil
}

// IsConnected reports whether the device with the given address is currently
// connected.
func (d *Directory) IsConnected(ctx context.Context, address string) (bool, error) {
	device, err := d.GetDeviceInfo(ctx, address)
	if err != nil {
		return false, err
	}

	return device.Connected, nil
}
