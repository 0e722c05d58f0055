// Package entity contains the core business objects of the project.
package entity

// PresenceStatus is the ephemeral connectivity state of a user.
// It is distinct from location sharing: a user can be online in ghost mode.
type PresenceStatus string

const (
	// PresenceOnline indicates at least one active session.
	PresenceOnline PresenceStatus = "online"
	// PresenceOffline indicates no active sessions. Users absent from the
	// active-connections set are offline.
	PresenceOffline PresenceStatus = "offline"
)

// String returns the string representation of the PresenceStatus.
func (s PresenceStatus) String() string {
	return string(s)
}
