// internal/entity/entity.go
package entity

// ID identifies a simulated object for its whole lifetime and beyond: trails
// keep using a projectile's ID after the projectile itself is gone.
type ID uint64

// None is never handed out.
const None ID = 0

// Registry hands out IDs. The zero value is ready to use.
type Registry struct {
	NextID ID
}

func NewRegistry() *Registry {
	return &Registry{NextID: 1}
}

func (r *Registry) NewEntity() ID {
	if r.NextID == None {
		r.NextID = 1
	}
	id := r.NextID
	r.NextID++
	return id
}

// Reset starts numbering over; only safe once nothing holds an old ID.
func (r *Registry) Reset() {
	r.NextID = 1
}
