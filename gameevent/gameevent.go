// Package gameevent defines the domain events that flow through the event
// bus. Each event is a plain value; listeners subscribe by concrete type.
package gameevent

import (
	"github.com/sarchlab/ticksim/idgen"
	"github.com/sarchlab/ticksim/world"
)

// ActionCompleted reports that a scheduled action has run to completion. The
// action scheduler enqueues one for every action it executes.
type ActionCompleted struct {
	ActionID idgen.ID
	Entity   world.Entity
}

// EntityAttack reports an attack from one entity to another.
type EntityAttack struct {
	Attacker world.Entity
	Target   world.Entity
	Damage   int
	Critical bool
}

// EntityDamaged reports damage applied to an entity. Source may be
// NullEntity. DamageType is a free-form label such as "physical" or "poison".
type EntityDamaged struct {
	Entity     world.Entity
	Damage     int
	Source     world.Entity
	DamageType string
}

// EntityDied reports that an entity was destroyed by combat. Killer may be
// NullEntity.
type EntityDied struct {
	Entity world.Entity
	Killer world.Entity
}

// EntitySpawn reports a new entity entering the world.
type EntitySpawn struct {
	Entity     world.Entity
	X, Y       int
	EntityType string
}

// MapChange reports a transition to another map.
type MapChange struct {
	MapName  string
	IsReload bool
}

// PlayerMove reports player movement between two cells.
type PlayerMove struct {
	Player       world.Entity
	FromX, FromY int
	ToX, ToY     int
}

// ItemPickup reports a player picking up an item entity.
type ItemPickup struct {
	Player   world.Entity
	Item     world.Entity
	ItemType string
}

// CombatStart reports the beginning of a fight.
type CombatStart struct {
	Initiator world.Entity
	Target    world.Entity
}

// CombatEnd reports the end of a fight. Winner may be NullEntity when the
// fight ended by fleeing.
type CombatEnd struct {
	Winner world.Entity
	Fled   bool
}
