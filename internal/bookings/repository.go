package bookings

import (
	"context"
	"sync"
)

// Repository defines the interface for booking storage. Only an in-memory
// implementation exists; bookings are not persisted to a database.
type Repository interface {
	Store(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
}

// InMemoryRepository keeps bookings in a process-local map.
type InMemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*Booking
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		bookings: make(map[string]*Booking),
	}
}

// Store records a booking.
func (r *InMemoryRepository) Store(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	r.bookings[b.ID] = b
	r.mu.Unlock()
	return nil
}

// GetByID retrieves a booking by id.
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return b, nil
}
