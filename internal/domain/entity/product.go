package entity

import "time"

// Product representa un producto del catálogo. Para el kardex solo aporta
// identidad y presentación; la valoración sale de los documentos, no de aquí.
type Product struct {
	ID          string
	CompanyID   string
	Code        string // código único por empresa
	Name        string
	Description string
	UnitMeasure string // UND, LB, GL, etc.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
