// Package config fornisce la configurazione caricabile/salvabile per una
// simulazione gravitazionale Barnes-Hut.
package config

import (
	"encoding/json"
	"os"

	"github.com/orbitalgo/nbody/core/constants"
	"github.com/orbitalgo/nbody/core/vector"
	"github.com/orbitalgo/nbody/simulation"
)

// Config rappresenta la configurazione di una simulazione.
type Config struct {
	// TimeStep è il passo temporale della simulazione (s)
	TimeStep float64 `json:"timeStep"`

	// Theta è l'angolo di apertura del criterio di accettazione multipolare
	// di Barnes-Hut (tipicamente 0.5-1.0)
	Theta float64 `json:"theta"`

	// GravityConstant è la costante gravitazionale usata dall'integratore
	// (m³/kg⋅s²)
	GravityConstant float64 `json:"gravityConstant"`

	// MaxBodies è una capacità suggerita per pre-allocare la sequenza di
	// corpi; non è un limite imposto dalla simulazione.
	MaxBodies int `json:"maxBodies"`
}

// NewDefaultConfig crea una configurazione con valori predefiniti.
func NewDefaultConfig() *Config {
	return &Config{
		TimeStep:        constants.DefaultTimeStep,
		Theta:           constants.DefaultTheta,
		GravityConstant: constants.G,
		MaxBodies:       1000,
	}
}

// SaveToFile salva la configurazione su file in formato JSON.
func (c *Config) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile carica la configurazione da un file JSON.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// NewSimulation2D costruisce una simulazione quadtree (2D) a partire da
// questa configurazione e dall'insieme di corpi dato.
func (c *Config) NewSimulation2D(bodies []simulation.Body[vector.Vector2]) *simulation.Simulation[vector.Vector2] {
	return simulation.New(bodies, simulation.Square2D, c.TimeStep, c.Theta, c.GravityConstant)
}

// NewSimulation3D costruisce una simulazione octree (3D) a partire da
// questa configurazione e dall'insieme di corpi dato.
func (c *Config) NewSimulation3D(bodies []simulation.Body[vector.Vector3]) *simulation.Simulation[vector.Vector3] {
	return simulation.New(bodies, simulation.Cube3D, c.TimeStep, c.Theta, c.GravityConstant)
}

// SimulationBuilder è un builder fluente per Config.
type SimulationBuilder struct {
	config *Config
}

// NewSimulationBuilder crea un builder inizializzato con i valori predefiniti.
func NewSimulationBuilder() *SimulationBuilder {
	return &SimulationBuilder{
		config: NewDefaultConfig(),
	}
}

// WithTimeStep imposta il passo temporale.
func (b *SimulationBuilder) WithTimeStep(timeStep float64) *SimulationBuilder {
	b.config.TimeStep = timeStep
	return b
}

// WithTheta imposta l'angolo di apertura.
func (b *SimulationBuilder) WithTheta(theta float64) *SimulationBuilder {
	b.config.Theta = theta
	return b
}

// WithGravityConstant imposta la costante gravitazionale.
func (b *SimulationBuilder) WithGravityConstant(g float64) *SimulationBuilder {
	b.config.GravityConstant = g
	return b
}

// WithMaxBodies imposta la capacità suggerita per la sequenza di corpi.
func (b *SimulationBuilder) WithMaxBodies(maxBodies int) *SimulationBuilder {
	b.config.MaxBodies = maxBodies
	return b
}

// Build restituisce la configurazione.
func (b *SimulationBuilder) Build() *Config {
	return b.config
}
