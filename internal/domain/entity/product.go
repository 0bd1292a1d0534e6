package entity

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Categoría del producto de dotación. Determina el tipo de destinatario permitido
// para entregas y devoluciones: Individual -> empleado, Colectivo -> puesto.
type ProductCategory string

const (
	CategoryIndividual ProductCategory = "INDIVIDUAL"
	CategoryCollective ProductCategory = "COLLECTIVE"
)

// Valid indica si la categoría es una de las dos conocidas.
func (c ProductCategory) Valid() bool {
	return c == CategoryIndividual || c == CategoryCollective
}

// Product representa un elemento de dotación rastreable (uniforme, radio, botiquín...).
// La categoría es inmutable una vez que existen movimientos que la referencian.
type Product struct {
	ID        string
	Code      string // derivado de Name+Detail; solo para visualización
	Name      string
	Detail    string // texto libre: talla, color, referencia del proveedor
	Category  ProductCategory
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeriveCode construye el código visible del producto concatenando los campos de
// texto libre: mayúsculas, sin tildes y con espacios colapsados. No participa en
// ningún invariante del ledger.
func DeriveCode(parts ...string) string {
	joined := strings.Join(parts, " ")

	// NFD + eliminar marcas diacríticas ("Azúl" -> "Azul")
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, joined)
	if err != nil {
		plain = joined
	}

	return strings.ToUpper(strings.Join(strings.Fields(plain), " "))
}
