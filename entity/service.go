package entity

import (
	"fmt"

	"github.com/esphome-go/api/api"
)

// ServiceTable stores ListEntitiesServicesResponse descriptors by key, in
// declaration order (spec.md §3's UserService, keyed the same way the
// per-kind tables are).
type ServiceTable struct {
	order []api.ListEntitiesServicesResponse
	byKey map[uint32]int
}

// Insert appends a service descriptor, failing on a duplicate key.
func (s *ServiceTable) Insert(svc api.ListEntitiesServicesResponse) error {
	if s.byKey == nil {
		s.byKey = make(map[uint32]int)
	}
	if _, exists := s.byKey[svc.Key]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateKey, svc.Key)
	}
	s.byKey[svc.Key] = len(s.order)
	s.order = append(s.order, svc)
	return nil
}

// FromKey looks up a service by its device-assigned key.
func (s *ServiceTable) FromKey(key uint32) (api.ListEntitiesServicesResponse, bool) {
	idx, ok := s.byKey[key]
	if !ok {
		return api.ListEntitiesServicesResponse{}, false
	}
	return s.order[idx], true
}

// All returns every service in declaration order.
func (s *ServiceTable) All() []api.ListEntitiesServicesResponse { return s.order }
