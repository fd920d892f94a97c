// Package diagnostics calcola grandezze fisiche aggregate (energia,
// quantità di moto) su un insieme di corpi, usate da test e strumentazione
// per verificare le proprietà di conservazione dell'integratore.
package diagnostics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/orbitalgo/nbody/core/vector"
	"github.com/orbitalgo/nbody/simulation"
)

// KineticEnergy restituisce la somma di 0.5*m*|v|^2 su tutti i corpi.
func KineticEnergy[V vector.Vector[V]](bodies []simulation.Body[V]) float64 {
	terms := make([]float64, len(bodies))
	for i, b := range bodies {
		terms[i] = 0.5 * b.Mass * b.Vel.Dot(b.Vel)
	}
	return floats.Sum(terms)
}

// PotentialEnergy restituisce l'energia potenziale gravitazionale totale del
// sistema, sommata su ogni coppia distinta di corpi: -G*m1*m2/d.
func PotentialEnergy[V vector.Vector[V]](bodies []simulation.Body[V], g float64) float64 {
	var terms []float64
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			d := bodies[i].Pos.Distance(bodies[j].Pos)
			terms = append(terms, -g*bodies[i].Mass*bodies[j].Mass/d)
		}
	}
	return floats.Sum(terms)
}

// TotalEnergy restituisce l'energia meccanica totale (cinetica + potenziale).
func TotalEnergy[V vector.Vector[V]](bodies []simulation.Body[V], g float64) float64 {
	return KineticEnergy(bodies) + PotentialEnergy(bodies, g)
}

// Momentum restituisce la quantità di moto totale del sistema, m*v sommato
// su ogni corpo.
func Momentum[V vector.Vector[V]](bodies []simulation.Body[V]) V {
	var zero V
	p := zero
	for _, b := range bodies {
		p = p.Add(b.Vel.Scale(b.Mass))
	}
	return p
}

// CenterOfMass restituisce il centro di massa dell'insieme di corpi.
// Se bodies è vuoto la massa totale è zero e il risultato ha componenti NaN,
// come per qualunque media su un insieme vuoto: il chiamante non deve
// invocarla su una simulazione senza corpi.
func CenterOfMass[V vector.Vector[V]](bodies []simulation.Body[V]) V {
	masses := make([]float64, len(bodies))
	for i, b := range bodies {
		masses[i] = b.Mass
	}
	totalMass := floats.Sum(masses)

	var zero V
	weighted := zero
	for _, b := range bodies {
		weighted = weighted.Add(b.Pos.Scale(b.Mass))
	}
	return weighted.Div(totalMass)
}
