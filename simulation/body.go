package simulation

import (
	"github.com/google/uuid"

	"github.com/orbitalgo/nbody/core/vector"
	"github.com/orbitalgo/nbody/physics/tree"
)

// Body è un corpo puntiforme della simulazione: identità stabile, posizione,
// velocità e accelerazione (portata da un passo all'altro per Verlet), e
// massa scalare. I corpi sono value type, conservati in sequenza dalla
// simulazione; la loro identità è l'ID, non l'indirizzo.
type Body[V vector.Vector[V]] struct {
	id   uuid.UUID
	Pos  V
	Vel  V
	Acc  V
	Mass float64
}

// NewBody crea un corpo con una nuova identità e massa assegnata. pos, vel e
// acc sono tipicamente vector.Zero2()/Zero3() o esplicitamente inizializzati
// dal chiamante.
func NewBody[V vector.Vector[V]](pos, vel, acc V, mass float64) Body[V] {
	return Body[V]{
		id:   uuid.New(),
		Pos:  pos,
		Vel:  vel,
		Acc:  acc,
		Mass: mass,
	}
}

// ID restituisce l'identità stabile del corpo.
func (b Body[V]) ID() uuid.UUID {
	return b.id
}

// treeBody proietta il corpo nella rappresentazione letta dall'albero
// (identità, posizione, massa: l'unico stato che l'albero deve conoscere).
func (b Body[V]) treeBody() tree.Body[V] {
	return tree.Body[V]{ID: b.id, Pos: b.Pos, Mass: b.Mass}
}
