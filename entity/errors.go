package entity

import "errors"

var (
	// ErrDuplicateKey is returned when a device declares the same entity
	// key twice within one kind (spec.md §4.6: "the device should not do
	// this" — treated as a fatal protocol error, not a silent overwrite).
	ErrDuplicateKey = errors.New("entity: duplicate key")

	// ErrDuplicateObjectID is the object-id counterpart of ErrDuplicateKey.
	ErrDuplicateObjectID = errors.New("entity: duplicate object_id")

	// ErrUnknownListEntitiesType is returned by InsertListEntities when
	// handed a message type that is not one of the 23 ListEntities<Kind>
	// responses or ListEntitiesServicesResponse.
	ErrUnknownListEntitiesType = errors.New("entity: unknown list-entities message type")
)
