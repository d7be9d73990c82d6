package events

import "time"

// Event representa la edición del evento para la que se abren inscripciones.
// LuckyCounter es el contador persistente de números de la sorte; sólo el
// storage lo incrementa, nunca el cliente.
type Event struct {
	ID          string
	Name        string
	Description string

	Date     *time.Time
	Location string

	WhatsAppLink string
	LuckyCounter int64

	CreatedAt time.Time
}
