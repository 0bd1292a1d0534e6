package entity

// Post representa un puesto de trabajo (destino de dotación colectiva).
// El módulo de supervisión es el dueño del registro completo; aquí solo se lee.
type Post struct {
	ID       string
	Name     string
	Location string
	Active   bool
}
