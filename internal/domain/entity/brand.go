package entity

// Brand marca de una presentación.
type Brand struct {
	ID   int64
	Name string
}
