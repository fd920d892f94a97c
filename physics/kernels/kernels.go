// Package kernels fornisce i nuclei numerici usati dall'albero Barnes-Hut:
// la ricorrenza del centro di massa e l'attrazione gravitazionale a coppie,
// sans la costante G che viene applicata una sola volta a fine somma.
package kernels

import "github.com/orbitalgo/nbody/core/vector"

// CombineCOM combina il centro di massa (pos1, mass1) con un nuovo corpo
// (pos2, mass2) e restituisce il nuovo centro di massa. Richiede
// mass1+mass2 > 0.
func CombineCOM[V vector.Vector[V]](pos1 V, mass1 float64, pos2 V, mass2 float64) V {
	totalMass := mass1 + mass2
	return pos1.Scale(mass1).Add(pos2.Scale(mass2)).Div(totalMass)
}

// Pull restituisce l'attrazione gravitazionale esercitata su a da b, priva
// del fattore G (applicato una sola volta dal chiamante come ottimizzazione
// che non altera la semantica). La distanza usata è quella ammorbidita.
func Pull[V vector.Vector[V]](posA V, massA float64, posB V, massB float64) V {
	d := posA.Distance(posB)
	return posB.Sub(posA).Scale(massA * massB / (d * d * d))
}

// PullCOM è la forma di Pull usata contro uno pseudo-corpo aggregato
// (centro di massa di un sottoalbero accettato dal criterio di Barnes-Hut).
func PullCOM[V vector.Vector[V]](posA V, massA float64, comPos V, comMass float64) V {
	return Pull(posA, massA, comPos, comMass)
}
