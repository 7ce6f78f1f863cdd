package model

import "errors"

var (
	// ErrSubnetNotFound is fatal: the event's subnet does not resolve to a VPC.
	ErrSubnetNotFound = errors.New("subnet not found")

	// ErrZoneConflict means zone creation lost a race with another invocation
	// that created the same zone.
	ErrZoneConflict = errors.New("zone already created concurrently")

	// ErrRecordSetNotFound means the record set was absent, or vanished
	// between listing and deleting it.
	ErrRecordSetNotFound = errors.New("record set not found")

	// ErrEventInvalid marks a trigger event missing required fields.
	ErrEventInvalid = errors.New("event invalid")
)
