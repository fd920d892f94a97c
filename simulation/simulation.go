// Package simulation possiede l'insieme dei corpi di una simulazione N-corpi
// gravitazionale, ricostruisce l'albero di Barnes-Hut ad ogni passo e integra
// il moto con velocity-Verlet. Lo stesso tipo generico serve sia il caso 2D
// (quadtree) sia il caso 3D (octree): il parametro di tipo V seleziona quale.
package simulation

import (
	"github.com/orbitalgo/nbody/core/constants"
	"github.com/orbitalgo/nbody/core/region"
	"github.com/orbitalgo/nbody/core/vector"
	"github.com/orbitalgo/nbody/physics/tree"
	"github.com/orbitalgo/nbody/simulation/events"
)

// RegionBuilder costruisce la regione radice dell'albero per un dato
// semi-lato: il bounding box quadrato/cubico centrato nell'origine
// ricostruito ad ogni passo dalla simulazione.
type RegionBuilder[V vector.Vector[V]] func(extent float64) region.Region[V]

// Square2D è il RegionBuilder del quadtree: quadrato centrato nell'origine,
// angolo (-extent,-extent), lato 2*extent.
func Square2D(extent float64) region.Region[vector.Vector2] {
	return region.NewSquare(vector.NewVector2(-extent, -extent), extent*2)
}

// Cube3D è il RegionBuilder dell'octree: cubo centrato nell'origine, angolo
// (-extent,-extent,-extent), lato 2*extent.
func Cube3D(extent float64) region.Region[vector.Vector3] {
	return region.NewCube(vector.NewVector3(-extent, -extent, -extent), extent*2)
}

// Simulation possiede la sequenza di corpi e l'ultimo albero costruito.
type Simulation[V vector.Vector[V]] struct {
	bodies    []Body[V]
	tree      *tree.Tree[V]
	newRegion RegionBuilder[V]
	timestep  float64
	theta     float64
	g         float64
	elapsed   float64
	events    events.EventSystem
}

// New crea una simulazione con l'insieme di corpi, il timestep, l'angolo di
// apertura e la costante gravitazionale dati. newRegion determina come viene
// ricostruita la regione radice dell'albero ad ogni passo (Square2D o Cube3D
// per i casi standard). L'accelerazione iniziale di ogni corpo è seminata da
// una valutazione di forza preliminare sull'albero costruito dalla
// configurazione iniziale, per evitare il transiente al primo passo.
//
// New non invia eventi BodyAdded per i corpi iniziali: un chiamante non può
// ancora aver agganciato un ascoltatore tramite Events() prima che New
// ritorni, quindi l'evento non sarebbe osservabile da nessuno. BodyAdded
// viene inviato solo da AddBody, dopo che la simulazione è stata costruita.
func New[V vector.Vector[V]](bodies []Body[V], newRegion RegionBuilder[V], timestep, theta, g float64) *Simulation[V] {
	s := &Simulation[V]{
		bodies:    bodies,
		newRegion: newRegion,
		timestep:  timestep,
		theta:     theta,
		g:         g,
		events:    events.NewSimpleEventSystem(),
	}

	s.tree = s.buildTree()
	for i := range s.bodies {
		force := s.tree.ForceOn(s.bodies[i].treeBody(), s.theta)
		s.bodies[i].Acc = force.Scale(s.g / s.bodies[i].Mass)
	}

	return s
}

// AddBody accoda un corpo alla simulazione e invia un evento BodyAdded a
// ogni ascoltatore registrato. Il nuovo corpo non partecipa al traversal
// dell'albero corrente (ricostruito al prossimo Step); la sua accelerazione
// resta quella fornita dal chiamante finché non avviene quel passo.
func (s *Simulation[V]) AddBody(b Body[V]) {
	s.bodies = append(s.bodies, b)
	s.events.DispatchEvent(events.Event{
		Type: events.BodyAdded,
		Data: events.BodyEvent{ID: b.ID(), Mass: b.Mass},
	})
}

// New2D crea una simulazione quadtree (2D) con la costante gravitazionale di
// constants.G.
func New2D(bodies []Body[vector.Vector2], timestep, theta float64) *Simulation[vector.Vector2] {
	return New(bodies, Square2D, timestep, theta, constants.G)
}

// New3D crea una simulazione octree (3D) con la costante gravitazionale di
// constants.G.
func New3D(bodies []Body[vector.Vector3], timestep, theta float64) *Simulation[vector.Vector3] {
	return New(bodies, Cube3D, timestep, theta, constants.G)
}

// Events restituisce il sistema di eventi della simulazione, a cui un
// chiamante può agganciare ascoltatori (ad es. events.EventLogger).
func (s *Simulation[V]) Events() events.EventSystem {
	return s.events
}

// Bodies restituisce una vista in sola lettura dei corpi correnti.
func (s *Simulation[V]) Bodies() []Body[V] {
	return s.bodies
}

// Tree restituisce l'ultimo albero costruito, per la sola visualizzazione.
func (s *Simulation[V]) Tree() *tree.Tree[V] {
	return s.tree
}

// Elapsed restituisce il tempo totale di simulazione trascorso.
func (s *Simulation[V]) Elapsed() float64 {
	return s.elapsed
}

// boundingExtent calcola R = max_i |pos_i| su tutti i corpi e tutti gli assi,
// il semi-lato della regione radice ricostruita ad ogni passo. Con un solo
// corpo nell'origine (o nessun corpo) R sarebbe 0, degenerando in una regione
// di lato nullo: in tal caso si usa 1 come estensione minima.
func (s *Simulation[V]) boundingExtent() float64 {
	extent := 0.0
	for _, b := range s.bodies {
		if c := b.Pos.MaxAbsComponent(); c > extent {
			extent = c
		}
	}
	if extent == 0 {
		extent = 1
	}
	return extent
}

// buildTree ricostruisce l'albero da zero a partire dalle posizioni correnti
// dei corpi. Gli errori di inserimento (fuori dai limiti o coincidenza oltre
// la profondità massima) non sono fatali: la simulazione prosegue comunque,
// perché la regione è dimensionata sugli estremi delle posizioni correnti e
// tali errori segnalano al più un'anomalia numerica interna.
func (s *Simulation[V]) buildTree() *tree.Tree[V] {
	t := tree.New[V](s.newRegion(s.boundingExtent()))
	for _, b := range s.bodies {
		_ = t.Insert(b.treeBody())
	}
	return t
}

// Step avanza la simulazione di un passo temporale con velocity-Verlet.
// L'ordine è normativo: l'aggiornamento di posizione consuma l'accelerazione
// del passo precedente; la forza per la nuova accelerazione è valutata
// contro l'albero costruito dalle posizioni precedenti al passo (ma nel
// punto di query aggiornato, dato che la posizione del corpo è già stata
// avanzata); l'aggiornamento di velocità media la vecchia e la nuova
// accelerazione.
func (s *Simulation[V]) Step() {
	t := s.buildTree()
	dt := s.timestep

	for i := range s.bodies {
		b := &s.bodies[i]
		oldAcc := b.Acc

		b.Pos = b.Pos.Add(b.Vel.Scale(dt)).Add(oldAcc.Scale(0.5 * dt * dt))

		force := t.ForceOn(b.treeBody(), s.theta)
		b.Acc = force.Scale(s.g / b.Mass)

		b.Vel = b.Vel.Add(oldAcc.Add(b.Acc).Scale(0.5 * dt))
	}

	s.tree = t
	s.elapsed += dt

	s.events.DispatchEvent(events.Event{
		Type: events.SimulationStep,
		Data: events.SimulationStepEvent{DeltaTime: dt, Time: s.elapsed},
	})
}
