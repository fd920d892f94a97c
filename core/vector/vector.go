// Package vector fornisce vettori a dimensione fissa (2D e 3D) usati dal
// motore Barnes-Hut per posizione, velocità e accelerazione.
package vector

import (
	"math"

	"github.com/orbitalgo/nbody/core/constants"
)

// Vector è il contratto comune implementato da Vector2 e Vector3: aritmetica
// di base e distanza ammorbidita. I tipi concreti sono value type, quindi ogni
// operazione restituisce un nuovo vettore senza mutare il ricevente.
type Vector[V any] interface {
	Add(other V) V
	Sub(other V) V
	Scale(s float64) V
	Div(s float64) V
	Distance(other V) float64
	DistanceSquared(other V) float64

	// Dot restituisce il prodotto scalare, usato per calcolare grandezze come
	// l'energia cinetica senza l'ammorbidimento di Distance.
	Dot(other V) float64

	// MaxAbsComponent restituisce la componente di modulo massimo, usata per
	// calcolare il bounding box simmetrico ricostruito ad ogni passo.
	MaxAbsComponent() float64
}

// Vector2 è un vettore bidimensionale a doppia precisione.
type Vector2 struct {
	X, Y float64
}

// Zero2 restituisce il vettore nullo 2D.
func Zero2() Vector2 {
	return Vector2{}
}

// NewVector2 crea un vettore 2D dalle componenti date.
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add somma due vettori componente per componente.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub sottrae other da v componente per componente.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale moltiplica ogni componente per uno scalare.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div divide ogni componente per uno scalare.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// DistanceSquared restituisce la distanza al quadrato ammorbidita da epsilon.
func (v Vector2) DistanceSquared(other Vector2) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy + constants.Epsilon
}

// Distance restituisce la distanza ammorbidita da epsilon.
func (v Vector2) Distance(other Vector2) float64 {
	return math.Sqrt(v.DistanceSquared(other))
}

// Dot restituisce il prodotto scalare tra v e other.
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// MaxAbsComponent restituisce max(|x|, |y|).
func (v Vector2) MaxAbsComponent() float64 {
	return math.Max(math.Abs(v.X), math.Abs(v.Y))
}

// Vector3 è un vettore tridimensionale a doppia precisione.
type Vector3 struct {
	X, Y, Z float64
}

// Zero3 restituisce il vettore nullo 3D.
func Zero3() Vector3 {
	return Vector3{}
}

// NewVector3 crea un vettore 3D dalle componenti date.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add somma due vettori componente per componente.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub sottrae other da v componente per componente.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale moltiplica ogni componente per uno scalare.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div divide ogni componente per uno scalare.
func (v Vector3) Div(s float64) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// DistanceSquared restituisce la distanza al quadrato ammorbidita da epsilon.
func (v Vector3) DistanceSquared(other Vector3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz + constants.Epsilon
}

// Distance restituisce la distanza ammorbidita da epsilon.
func (v Vector3) Distance(other Vector3) float64 {
	return math.Sqrt(v.DistanceSquared(other))
}

// Dot restituisce il prodotto scalare tra v e other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// MaxAbsComponent restituisce max(|x|, |y|, |z|).
func (v Vector3) MaxAbsComponent() float64 {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}
