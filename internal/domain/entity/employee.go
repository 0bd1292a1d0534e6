package entity

// Employee es la vista mínima de un empleado que necesita el ledger de dotación.
// El módulo de RRHH es el dueño del registro completo; aquí solo se lee.
type Employee struct {
	ID       string
	FullName string
	Document string // cédula
	Active   bool
}
