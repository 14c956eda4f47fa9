package bluetooth

import "fmt"

// NotFoundError reports that no paired device matched the requested address.
type NotFoundError struct {
	Address string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find device %q", e.Address)
}
