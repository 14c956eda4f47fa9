package bluetooth

import "context"

// Toggler flips a device's connection state by reading the current state and
// issuing the opposite action. The read and the action are separate utility
// invocations, so an external state change can race the toggle; the result
// is best-effort and is not verified afterwards.
type Toggler struct {
	directory *Directory
	gateway   Gateway
}

// NewToggler creates a toggler over the given directory and gateway.
func NewToggler(directory *Directory, gateway Gateway) *Toggler {
	return &Toggler{directory: directory, gateway: gateway}
}

// Toggle flips the connection state of the device with the given address and
// returns the intended new state: true when a connect was issued, false when
// a disconnect was issued.
func (t *Toggler) Toggle(ctx context.Context, address string) (bool, error) {
	device, err := t.directory.GetDeviceInfo(ctx, address)
	if err != nil {
		return false, err
	}

	if device.Connected {
		if err := t.gateway.Disconnect(ctx, address); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := t.gateway.Connect(ctx, address); err != nil {
		return false, err
	}
	return true, nil
}
