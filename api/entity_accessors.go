package api

// CatalogueKey, CatalogueObjectID and CatalogueCategory are promoted onto
// every ListEntities<Kind>Response through EntityBase embedding. They exist
// so the entity package can key a generic ordered table on any descriptor
// type without field-name collisions (EntityBase already has a Key field).
func (e EntityBase) CatalogueKey() uint32 { return e.Key }

func (e EntityBase) CatalogueObjectID() string { return e.ObjectID }

func (e EntityBase) CatalogueCategory() EntityCategory { return e.EntityCategory }
