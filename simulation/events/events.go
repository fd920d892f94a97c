// Package events fornisce un sistema di eventi a cui la simulazione notifica
// il proprio avanzamento, per instrumentazione o visualizzazione esterna.
package events

import (
	"sync"

	"github.com/google/uuid"
)

// EventType rappresenta il tipo di evento
type EventType int

const (
	// BodyAdded evento generato quando un corpo viene aggiunto alla simulazione
	BodyAdded EventType = iota
	// SimulationStarted segnala l'avvio della simulazione; Simulation non lo
	// invia, può farlo un host
	SimulationStarted
	// SimulationStopped segnala l'arresto della simulazione; Simulation non
	// lo invia, può farlo un host
	SimulationStopped
	// SimulationStep evento generato ad ogni passo della simulazione
	SimulationStep
)

// Event rappresenta un evento nella simulazione
type Event struct {
	// Type è il tipo di evento
	Type EventType
	// Data contiene i dati dell'evento
	Data interface{}
}

// BodyEvent rappresenta un evento relativo a un corpo. Porta solo identità e
// massa (non la posizione, che dipende dalla dimensione 2D/3D) per restare
// indipendente dal parametro di tipo della simulazione.
type BodyEvent struct {
	ID   uuid.UUID
	Mass float64
}

// SimulationStepEvent rappresenta un evento di passo della simulazione
type SimulationStepEvent struct {
	// DeltaTime è il passo temporale
	DeltaTime float64
	// Time è il tempo totale trascorso nella simulazione
	Time float64
}

// EventListener rappresenta un ascoltatore di eventi
type EventListener interface {
	// OnEvent viene chiamato quando si verifica un evento
	OnEvent(event Event)
}

// EventSystem rappresenta un sistema di eventi
type EventSystem interface {
	// AddListener aggiunge un ascoltatore per un tipo di evento
	AddListener(listener EventListener, eventType EventType)
	// RemoveListener rimuove un ascoltatore per un tipo di evento
	RemoveListener(listener EventListener, eventType EventType)
	// DispatchEvent invia un evento a tutti gli ascoltatori registrati
	DispatchEvent(event Event)
}

// SimpleEventSystem implementa un sistema di eventi semplice
type SimpleEventSystem struct {
	listeners map[EventType][]EventListener
	mutex     sync.RWMutex
}

// NewSimpleEventSystem crea un nuovo sistema di eventi semplice
func NewSimpleEventSystem() *SimpleEventSystem {
	return &SimpleEventSystem{
		listeners: make(map[EventType][]EventListener),
	}
}

// AddListener aggiunge un ascoltatore per un tipo di evento
func (es *SimpleEventSystem) AddListener(listener EventListener, eventType EventType) {
	es.mutex.Lock()
	defer es.mutex.Unlock()

	if _, exists := es.listeners[eventType]; !exists {
		es.listeners[eventType] = make([]EventListener, 0)
	}

	es.listeners[eventType] = append(es.listeners[eventType], listener)
}

// RemoveListener rimuove un ascoltatore per un tipo di evento
func (es *SimpleEventSystem) RemoveListener(listener EventListener, eventType EventType) {
	es.mutex.Lock()
	defer es.mutex.Unlock()

	if listeners, exists := es.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				// Rimuovi l'ascoltatore scambiandolo con l'ultimo e troncando la slice
				lastIndex := len(listeners) - 1
				listeners[i] = listeners[lastIndex]
				es.listeners[eventType] = listeners[:lastIndex]
				break
			}
		}
	}
}

// DispatchEvent invia un evento a tutti gli ascoltatori registrati
func (es *SimpleEventSystem) DispatchEvent(event Event) {
	es.mutex.RLock()
	defer es.mutex.RUnlock()

	if listeners, exists := es.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// EventLogger è un ascoltatore di eventi che registra gli eventi
type EventLogger struct {
	// LogFunc è la funzione di logging
	LogFunc func(format string, args ...interface{})
}

// NewEventLogger crea un nuovo logger di eventi
func NewEventLogger(logFunc func(format string, args ...interface{})) *EventLogger {
	return &EventLogger{
		LogFunc: logFunc,
	}
}

// OnEvent viene chiamato quando si verifica un evento
func (el *EventLogger) OnEvent(event Event) {
	switch event.Type {
	case BodyAdded:
		if bodyEvent, ok := event.Data.(BodyEvent); ok {
			el.LogFunc("body added: %v (mass=%g)", bodyEvent.ID, bodyEvent.Mass)
		}
	case SimulationStarted:
		el.LogFunc("simulation started")
	case SimulationStopped:
		el.LogFunc("simulation stopped")
	case SimulationStep:
		if stepEvent, ok := event.Data.(SimulationStepEvent); ok {
			el.LogFunc("simulation step: dt=%f, t=%f", stepEvent.DeltaTime, stepEvent.Time)
		}
	default:
		el.LogFunc("unknown event: %v", event.Type)
	}
}
