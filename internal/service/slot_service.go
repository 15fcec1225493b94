package service

import (
	"sync"

	"parkease/internal/entities"
	"parkease/internal/metrics"
	"parkease/internal/slots"
)

// SlotService hands out slot layouts for parking areas. A layout is generated
// once per area and memoized against the area's identity, so repeated views
// of the same area render the same grid for the lifetime of the process.
type SlotService struct {
	generator *slots.Generator

	mu      sync.Mutex
	layouts map[string][]entities.Slot
}

func NewSlotService(generator *slots.Generator) *SlotService {
	return &SlotService{
		generator: generator,
		layouts:   make(map[string][]entities.Slot),
	}
}

// LayoutFor returns the memoized layout for the area, generating it on the
// first request.
func (s *SlotService) LayoutFor(area entities.ParkingArea) []entities.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if layout, ok := s.layouts[area.ID]; ok {
		return layout
	}
	layout := s.generator.Generate(area.TotalSlots, area.AvailableSlots)
	s.layouts[area.ID] = layout
	metrics.LayoutsGenerated.Inc()
	return layout
}

// FindSlot looks a slot up by id within the area's memoized layout.
func (s *SlotService) FindSlot(area entities.ParkingArea, slotID string) (entities.Slot, bool) {
	for _, slot := range s.LayoutFor(area) {
		if slot.ID == slotID {
			return slot, true
		}
	}
	return entities.Slot{}, false
}
