package space

import (
	"github.com/google/uuid"
	"github.com/zeusync/gravity/pkg/math3d"
)

// Velocity is the vector-valued rate of change of a body's position.
type Velocity = math3d.Vector

var _ Locatable = (*Mass)(nil)

// Mass is a body with a scalar mass, a location and a velocity.
type Mass struct {
	id       string
	name     string
	mass     float64
	location Location
	velocity Velocity
}

// Option customizes a Mass at construction.
type Option func(*Mass)

// WithID sets the body identifier. An empty id keeps the generated one.
func WithID(id string) Option {
	return func(m *Mass) {
		if id != "" {
			m.id = id
		}
	}
}

// WithName sets a human-readable name.
func WithName(name string) Option {
	return func(m *Mass) { m.name = name }
}

// NewMass creates a body. Unless WithID is given the body gets a random
// UUID.
func NewMass(mass float64, location Location, velocity Velocity, opts ...Option) *Mass {
	m := &Mass{
		id:       uuid.NewString(),
		mass:     mass,
		location: location,
		velocity: velocity,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the body identifier.
func (m *Mass) ID() string { return m.id }

// Name returns the optional human-readable name.
func (m *Mass) Name() string { return m.name }

// Mass returns the scalar mass.
func (m *Mass) Mass() float64 { return m.mass }

// Location returns where the body is.
func (m *Mass) Location() Location { return m.location }

// Velocity returns the body velocity.
func (m *Mass) Velocity() Velocity { return m.velocity }

// Speed is the magnitude of the body's velocity.
func (m *Mass) Speed() float64 { return m.velocity.Magnitude() }
