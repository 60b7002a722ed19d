package api

import (
	"sync"
	"time"

	"weather-app/controller"
)

// ViewStore holds the latest view published by the controller.
// It is the controller's Renderer: the page and JSON endpoints read from here.
type ViewStore struct {
	view    controller.View
	updated time.Time
	renders int
	mutex   sync.RWMutex
}

// NewViewStore creates a store holding an idle view
func NewViewStore() *ViewStore {
	return &ViewStore{
		view: controller.View{State: controller.Idle},
	}
}

// Render replaces the stored view
func (s *ViewStore) Render(v controller.View) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.view = v
	s.updated = time.Now()
	s.renders++
}

// Latest returns the most recent view and when it was published
func (s *ViewStore) Latest() (controller.View, time.Time) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.view, s.updated
}

// Renders returns how many views have been published
func (s *ViewStore) Renders() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.renders
}

// Ensure ViewStore can be handed to the controller
var _ controller.Renderer = (*ViewStore)(nil)
