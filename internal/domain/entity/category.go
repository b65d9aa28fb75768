package entity

// Category representa una categoría del catálogo (dato de referencia, nunca se modifica aquí).
type Category struct {
	ID   int64
	Name string
	Slug string // identificador único apto para URL
}
