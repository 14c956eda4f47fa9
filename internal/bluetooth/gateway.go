package bluetooth

import "context"

//go:generate mockgen -destination=mock_bluetooth.go -package=bluetooth github.com/darkermage/alfred-bluetooth/internal/bluetooth Gateway

// Gateway abstracts the external device-control utility.
type Gateway interface {
	// ListPaired returns every paired device in the order the utility
	// reports them.
	ListPaired(ctx context.Context) ([]Device, error)

	// Connect asks the utility to connect to the device with the given
	// address. Success means the utility was launched, not that the device
	// actually connected.
	Connect(ctx context.Context, address string) error

	// Disconnect asks the utility to disconnect from the device with the
	// given address. Same success contract as Connect.
	Disconnect(ctx context.Context, address string) error
}
