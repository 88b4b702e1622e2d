package roster

import (
	"sync"

	"staffgrip/internal/domain"
)

// Store provides access to the loaded roster. The list order is the order
// employees were loaded in; the windowing engine indexes into it directly.
type Store interface {
	Employees() []domain.Employee
	Len() int
	Append(employees ...domain.Employee)
	SetRange(offset int, employees []domain.Employee)
	Replace(employees []domain.Employee)
	Clear()
}

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu        sync.RWMutex
	employees []domain.Employee
}

// NewMemoryStore creates a new memory-based roster store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Employees returns a snapshot of the roster
func (s *MemoryStore) Employees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]domain.Employee, len(s.employees))
	copy(result, s.employees)
	return result
}

// Len returns the current roster size
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees)
}

// Append adds employees to the end of the roster
func (s *MemoryStore) Append(employees ...domain.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append(s.employees, employees...)
}

// SetRange places employees at a fixed offset, growing the roster as
// needed. Loader batches land through here so their order is stable no
// matter how the event handlers get scheduled.
func (s *MemoryStore) SetRange(offset int, employees []domain.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()

	need := offset + len(employees)
	if need > len(s.employees) {
		grown := make([]domain.Employee, need)
		copy(grown, s.employees)
		s.employees = grown
	}
	copy(s.employees[offset:], employees)
}

// Replace swaps the entire roster contents
func (s *MemoryStore) Replace(employees []domain.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = employees
}

// Clear empties the roster
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = nil
}
