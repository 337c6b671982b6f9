// SPDX-License-Identifier: MIT

package memory

// Space selects where data lives and where an operation executes.
type Space int

const (
	// Host selects CPU-resident data and the host implementation.
	Host Space = iota
	// Device selects accelerator-resident data and the device implementation.
	Device
)

// String returns the lowercase name of the space, or "unknown(n)" for
// values outside the enum.
func (s Space) String() string {
	switch s {
	case Host:
		return "host"
	case Device:
		return "device"
	default:
		return "unknown"
	}
}
