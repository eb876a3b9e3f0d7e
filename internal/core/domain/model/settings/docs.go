// Package settings models a store's delivery configuration as an immutable
// snapshot with documented per-field defaults. The persistence adapter
// substitutes defaults for missing fields on read; the core never fails on a
// partially populated record.
package settings
