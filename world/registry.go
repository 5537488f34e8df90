// Package world implements the entity registry that scheduled actions run
// against. Entities are opaque generational handles. A handle stays resolvable
// only while its entity is alive, so holders of stale handles can always be
// detected with Valid.
package world

import "reflect"

// An Entity is a handle into a Registry. The low 32 bits hold the slot index
// and the high 32 bits hold the slot generation.
type Entity uint64

// NullEntity is the zero handle. It is never valid in any registry.
const NullEntity Entity = 0

func makeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

func (e Entity) index() uint32 {
	return uint32(e)
}

func (e Entity) generation() uint32 {
	return uint32(e >> 32)
}

// A Registry creates and destroys entities and stores their components.
type Registry struct {
	generations []uint32
	alive       []bool
	freeList    []uint32
	numAlive    int

	components map[reflect.Type]map[Entity]interface{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		components: make(map[reflect.Type]map[Entity]interface{}),
	}
}

// Create allocates a new entity. Slots of destroyed entities are reused with
// a bumped generation, so handles to the destroyed entity stay invalid.
func (r *Registry) Create() Entity {
	var index uint32

	if len(r.freeList) > 0 {
		index = r.freeList[len(r.freeList)-1]
		r.freeList = r.freeList[:len(r.freeList)-1]
		r.generations[index]++
	} else {
		index = uint32(len(r.generations))
		// Generation starts at 1 so that NullEntity never aliases slot 0.
		r.generations = append(r.generations, 1)
		r.alive = append(r.alive, false)
	}

	r.alive[index] = true
	r.numAlive++

	return makeEntity(index, r.generations[index])
}

// Destroy removes an entity and all its components. It returns false if the
// handle is already stale.
func (r *Registry) Destroy(e Entity) bool {
	if !r.Valid(e) {
		return false
	}

	for _, store := range r.components {
		delete(store, e)
	}

	index := e.index()
	r.alive[index] = false
	r.freeList = append(r.freeList, index)
	r.numAlive--

	return true
}

// Valid reports whether the handle still refers to a live entity.
func (r *Registry) Valid(e Entity) bool {
	index := e.index()
	if int(index) >= len(r.generations) {
		return false
	}

	return r.alive[index] && r.generations[index] == e.generation()
}

// Alive returns the number of live entities.
func (r *Registry) Alive() int {
	return r.numAlive
}

// Add attaches a component to an entity, replacing any component of the same
// type. Adding to a stale handle is a no-op.
func Add[T any](r *Registry, e Entity, component T) {
	if !r.Valid(e) {
		return
	}

	key := reflect.TypeOf((*T)(nil)).Elem()
	store, ok := r.components[key]
	if !ok {
		store = make(map[Entity]interface{})
		r.components[key] = store
	}

	store[e] = component
}

// Get returns the component of type T attached to the entity.
func Get[T any](r *Registry, e Entity) (T, bool) {
	var zero T

	if !r.Valid(e) {
		return zero, false
	}

	key := reflect.TypeOf((*T)(nil)).Elem()
	component, ok := r.components[key][e]
	if !ok {
		return zero, false
	}

	return component.(T), true
}

// Has reports whether the entity carries a component of type T.
func Has[T any](r *Registry, e Entity) bool {
	_, ok := Get[T](r, e)
	return ok
}

// Remove detaches the component of type T from the entity. It returns false
// if the entity does not carry one.
func Remove[T any](r *Registry, e Entity) bool {
	if !r.Valid(e) {
		return false
	}

	key := reflect.TypeOf((*T)(nil)).Elem()
	store, ok := r.components[key]
	if !ok {
		return false
	}

	if _, ok := store[e]; !ok {
		return false
	}

	delete(store, e)

	return true
}
