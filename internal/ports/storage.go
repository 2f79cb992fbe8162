// Package ports defines the interfaces (driven and driving ports)
// for the vessel application following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import "context"

// SettingsStore persists simple key-value scalars.
// This is a driven port (implemented by adapters).
type SettingsStore interface {
	// Get returns the value for key, or domain.ErrSettingNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set upserts the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// All returns every stored setting.
	All(ctx context.Context) (map[string]string, error)

	// Close closes the storage connection.
	Close() error

	// Migrate creates the schema if needed.
	Migrate() error
}
