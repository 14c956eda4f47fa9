package bluetooth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errGatewayUnavailable = errors.New("gateway unavailable")

func pairedFixture() []Device {
	return []Device{
		{Name: "device1", Address: "disconnected-address", Connected: false},
		{Name: "device2", Address: "connected-address", Connected: true},
		{Name: "device3", Address: "connected-address-2", Connected: true},
	}
}

func newDirectoryWithList(t *testing.T, devices []Device) *Directory {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := NewMockGateway(ctrl)
	gateway.EXPECT().ListPaired(gomock.Any()).Return(devices, nil).AnyTimes()

	return NewDirectory(gateway)
}

func TestListDevicesConnectedFirst(t *testing.T) {
	directory := newDirectoryWithList(t, pairedFixture())

	devices, err := directory.ListDevices(context.Background(), ListOptions{Filter: AllDevices()})
	require.NoError(t, err)

	require.Len(t, devices, 3)
	assert.Equal(t, "device2", devices[0].Name)
	assert.Equal(t, "device3", devices[1].Name)
	assert.Equal(t, "device1", devices[2].Name)
}

func TestListDevicesSortIsStable(t *testing.T) {
	directory := newDirectoryWithList(t, []Device{
		{Name: "a", Address: "addr-a", Connected: false},
		{Name: "b", Address: "addr-b", Connected: true},
		{Name: "c", Address: "addr-c", Connected: false},
		{Name: "d", Address: "addr-d", Connected: true},
	})

	devices, err := directory.ListDevices(context.Background(), ListOptions{Filter: AllDevices()})
	require.NoError(t, err)

	var names []string
	for _, device := range devices {
		names = append(names, device.Name)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, names)
}

func TestListDevicesFilterByName(t *testing.T) {
	directory := newDirectoryWithList(t, pairedFixture())

	devices, err := directory.ListDevices(context.Background(), ListOptions{Filter: ByName("DEVICE1")})
	require.NoError(t, err)

	require.Len(t, devices, 1)
	assert.Equal(t, Device{Name: "device1", Address: "disconnected-address", Connected: false}, devices[0])
}

func TestListDevicesFilterByAddresses(t *testing.T) {
	directory := newDirectoryWithList(t, pairedFixture())

	devices, err := directory.ListDevices(context.Background(), ListOptions{
		Filter: ByAddresses([]string{"Connected-Address", "CONNECTED-ADDRESS-2"}),
	})
	require.NoError(t, err)

	require.Len(t, devices, 2)
	assert.Equal(t, "device2", devices[0].Name)
	assert.Equal(t, "device3", devices[1].Name)
}

func TestListDevicesPreviousAddressMovesToFront(t *testing.T) {
	for _, previous := range []string{"connected-address", "connected-address-2", "disconnected-address"} {
		directory := newDirectoryWithList(t, pairedFixture())

		devices, err := directory.ListDevices(context.Background(), ListOptions{
			Filter:          AllDevices(),
			PreviousAddress: previous,
		})
		require.NoError(t, err)

		require.Len(t, devices, 3)
		assert.Equal(t, previous, devices[0].Address)
	}
}

func TestListDevicesPreviousAddressKeepsRemainingOrder(t *testing.T) {
	directory := newDirectoryWithList(t, pairedFixture())

	// The disconnected device jumps the connected-first ordering; the rest
	// keep their relative order.
	devices, err := directory.ListDevices(context.Background(), ListOptions{
		Filter:          AllDevices(),
		PreviousAddress: "DISCONNECTED-ADDRESS",
	})
	require.NoError(t, err)

	require.Len(t, devices, 3)
	assert.Equal(t, "device1", devices[0].Name)
	assert.Equal(t, "device2", devices[1].Name)
	assert.Equal(t, "device3", devices[2].Name)
}

func TestListDevicesEmptyUpstream(t *testing.T) {
	directory := newDirectoryWithList(t, nil)

	devices, err := directory.ListDevices(context.Background(), ListOptions{Filter: AllDevices()})
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestListDevicesPropagatesGatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := NewMockGateway(ctrl)
	gateway.EXPECT().ListPaired(gomock.Any()).Return(nil, errGatewayUnavailable)

	directory := NewDirectory(gateway)

	_, err := directory.ListDevices(context.Background(), ListOptions{Filter: AllDevices()})
	assert.ErrorIs(t, err, errGatewayUnavailable)
}

func TestGetDeviceInfo(t *testing.T) {
	directory := newDirectoryWithList(t, pairedFixture())

	device, err := directory.GetDeviceInfo(context.Background(), "CONNECTED-ADDRESS")
	require.NoError(t, err)
	assert.Equal(t, Device{Name: "device2", Address: "connected-address", Connected: true}, device)
}

func TestGetDeviceInfoNotFound(t *testing.T) {
	directory := newDirectoryWithList(t, pairedFixture())

	_, err := directory.GetDeviceInfo(context.Background(), "unknown-address")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "unknown-address", notFound.Address)
}

func TestIsConnected(t *testing.T) {
	directory := newDirectoryWithList(t, pairedFixture())

	connected, err := directory.IsConnected(context.Background(), "connected-address")
	require.NoError(t, err)
	assert.True(t, connected)

	connected, err = directory.IsConnected(context.Background(), "disconnected-address")
	require.NoError(t, err)
	assert.False(t, connected)
}

func TestIsConnectedNotFound(t *testing.T) {
	directory := newDirectoryWithList(t, pairedFixture())

	_, err := directory.IsConnected(context.Background(), "unknown-address")

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
