// Package tree implementa l'albero gerarchico di Barnes-Hut (quadtree in 2D,
// octree in 3D) con bucket size 1: ogni foglia contiene al più un corpo, ogni
// nodo interno mantiene massa e centro di massa aggregati dei discendenti.
//
// L'albero è parametrizzato sul tipo di vettore V (vector.Vector2 o
// vector.Vector3); la stessa implementazione serve quindi sia il quadtree che
// l'octree, come raccomandato per evitare la duplicazione 2D/3D.
package tree

import (
	"errors"

	"github.com/google/uuid"

	"github.com/orbitalgo/nbody/core/region"
	"github.com/orbitalgo/nbody/core/vector"
	"github.com/orbitalgo/nbody/physics/kernels"
)

// MaxDepth limita la profondità di ricorsione dell'inserimento. Due corpi
// alla stessa posizione (o a una distanza inferiore alla risoluzione in
// virgola mobile) subdividerebbero all'infinito; oltre questa profondità
// l'inserimento viene rifiutato con ErrCoincident invece di ricorrere oltre.
const MaxDepth = 64

// ErrOutOfBounds è restituito quando la posizione del corpo da inserire non è
// contenuta nella regione radice dell'albero.
var ErrOutOfBounds = errors.New("tree: body position outside root region")

// ErrCoincident è restituito quando un inserimento richiederebbe di superare
// MaxDepth di subdivisione, il che accade solo quando due o più corpi
// occupano (quasi) la stessa posizione. La politica adottata qui è di
// rifiutare l'inserimento in eccesso piuttosto che bufferizzare più corpi
// nella foglia più profonda: un chiamante che si aspetta corpi coincidenti
// deve gestire l'errore, ad esempio perturbando leggermente la posizione.
var ErrCoincident = errors.New("tree: bodies are coincident beyond max subdivision depth")

// Body è un corpo puntiforme indicizzabile dall'albero: identità stabile,
// posizione e massa. Vel e Acc non fanno parte di questo tipo: restano nel
// corpo della simulazione, e il traversal restituisce solo ID, Pos e Mass.
type Body[V any] struct {
	ID   uuid.UUID
	Pos  V
	Mass float64
}

// node è un'unione etichettata: una foglia ha body != nil e children == nil;
// un nodo interno ha children di lunghezza region.NumChildren() (con slot
// eventualmente vuoti) e aggrega mass/com dei discendenti.
type node[V vector.Vector[V]] struct {
	region   region.Region[V]
	body     *Body[V]
	children []*node[V]
	mass     float64
	com      V
}

// Tree è l'albero Barnes-Hut radicato in una regione. Va ricostruito da zero
// ad ogni passo della simulazione: non supporta rimozione o spostamento di
// corpi già inseriti.
type Tree[V vector.Vector[V]] struct {
	root *node[V]
}

// New crea un albero vuoto radicato in boundary.
func New[V vector.Vector[V]](boundary region.Region[V]) *Tree[V] {
	return &Tree[V]{root: &node[V]{region: boundary, children: make([]*node[V], boundary.NumChildren())}}
}

// Insert inserisce un corpo nell'albero, subdividendo le foglie occupate
// secondo necessità. Restituisce ErrOutOfBounds se la posizione del corpo non
// è contenuta nella regione radice, o ErrCoincident se l'inserimento richiede
// più di MaxDepth livelli di subdivisione.
func (t *Tree[V]) Insert(b Body[V]) error {
	return t.root.insert(b, 0)
}

func (n *node[V]) insert(b Body[V], depth int) error {
	if !n.region.Contains(b.Pos) {
		return ErrOutOfBounds
	}

	// Foglia vuota: primo corpo di questo nodo.
	if n.body == nil && n.children == nil {
		n.body = &b
		n.mass = b.Mass
		n.com = b.Pos
		return nil
	}

	// Foglia occupata: subdividi in un nodo interno vuoto che copre la
	// stessa regione, poi reinserisci il corpo residente prima del nuovo,
	// ciascuno attraverso il ramo "nodo interno" sotto, cosicché entrambi
	// contribuiscano alla ricorrenza del centro di massa di n.
	if n.children == nil {
		if depth >= MaxDepth {
			return ErrCoincident
		}
		resident := *n.body
		n.body = nil
		n.mass = 0
		var zero V
		n.com = zero
		n.children = make([]*node[V], n.region.NumChildren())
		if err := n.insert(resident, depth); err != nil {
			return err
		}
		return n.insert(b, depth)
	}

	// Nodo interno: instrada verso il figlio appropriato e aggiorna gli
	// aggregati con la ricorrenza incrementale del centro di massa.
	if err := n.insertIntoChild(b, depth); err != nil {
		return err
	}
	n.com = kernels.CombineCOM(n.com, n.mass, b.Pos, b.Mass)
	n.mass += b.Mass
	return nil
}

// insertIntoChild instrada b verso il figlio corretto di n, creandolo se
// necessario; non aggiorna gli aggregati di n (responsabilità del chiamante).
func (n *node[V]) insertIntoChild(b Body[V], depth int) error {
	q := n.region.Quadrant(b.Pos)
	if n.children[q] == nil {
		n.children[q] = &node[V]{region: n.region.Child(q)}
	}
	return n.children[q].insert(b, depth+1)
}

// ForceOn calcola la forza gravitazionale (priva del fattore G) esercitata
// sul corpo b dall'intero albero, approssimando i sottoalberi sufficientemente
// distanti con il criterio di apertura di Barnes-Hut: un nodo di lato s a
// distanza d dal corpo viene sostituito dal suo pseudo-corpo quando s/d < theta.
func (t *Tree[V]) ForceOn(b Body[V], theta float64) V {
	var zero V
	return t.root.forceOn(b, theta, zero)
}

func (n *node[V]) forceOn(b Body[V], theta float64, zero V) V {
	// Foglia: contributo esatto, nullo se il corpo è se stesso.
	if n.children == nil {
		if n.body == nil || n.body.ID == b.ID {
			return zero
		}
		return kernels.Pull(b.Pos, b.Mass, n.body.Pos, n.body.Mass)
	}

	if n.mass == 0 {
		return zero
	}

	d := b.Pos.Distance(n.com)
	s := n.region.Size()
	if s/d < theta {
		return kernels.PullCOM(b.Pos, b.Mass, n.com, n.mass)
	}

	total := zero
	for _, child := range n.children {
		if child != nil {
			total = total.Add(child.forceOn(b, theta, zero))
		}
	}
	return total
}

// VisitLeaf è chiamata da Traverse per ogni foglia occupata, con il corpo e
// il confine della foglia.
type VisitLeaf[V any] func(body Body[V], boundary region.Region[V])

// VisitNode è chiamata da Traverse per ogni nodo interno, con il suo confine,
// la massa aggregata e il centro di massa.
type VisitNode[V any] func(boundary region.Region[V], mass float64, com V)

// Traverse percorre l'albero in pre-ordine invocando onLeaf per ogni foglia
// occupata e onNode per ogni nodo interno. Pensato per la sola visualizzazione
// a sola lettura; non muta l'albero.
func (t *Tree[V]) Traverse(onLeaf VisitLeaf[V], onNode VisitNode[V]) {
	t.root.traverse(onLeaf, onNode)
}

func (n *node[V]) traverse(onLeaf VisitLeaf[V], onNode VisitNode[V]) {
	if n.children == nil {
		if n.body != nil && onLeaf != nil {
			onLeaf(*n.body, n.region)
		}
		return
	}

	if onNode != nil {
		onNode(n.region, n.mass, n.com)
	}
	for _, child := range n.children {
		if child != nil {
			child.traverse(onLeaf, onNode)
		}
	}
}

// Mass restituisce la massa totale aggregata nella radice dell'albero.
func (t *Tree[V]) Mass() float64 {
	return t.root.mass
}

// CenterOfMass restituisce il centro di massa aggregato nella radice
// dell'albero.
func (t *Tree[V]) CenterOfMass() V {
	return t.root.com
}
