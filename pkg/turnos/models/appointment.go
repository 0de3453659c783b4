// Package models defines data structures for appointment extraction.
package models

// Kind classifies an appointment by the fill colour of its cell.
type Kind string

const (
	// KindNone means the cell carried no recognised fill.
	KindNone Kind = ""
	// KindSurgery marks red-filled cells.
	KindSurgery Kind = "cirugia"
	// KindLabWork marks green or yellow filled cells.
	KindLabWork Kind = "trabajo_laboratorio"
)

// Appointment is a single patient entry found in the weekly grid.
type Appointment struct {
	// Name is the cleaned display name.
	Name string `json:"nombre"`
	// Timestamp is the date and time of the slot ("YYYY-MM-DD HH:MM:SS").
	Timestamp string `json:"fecha_hora"`
	// OriginalName is the cell text, only whitespace-trimmed.
	OriginalName string `json:"nombre_original"`
	// Kind is set only when fill detection is enabled.
	Kind Kind `json:"tipo,omitempty"`
}
