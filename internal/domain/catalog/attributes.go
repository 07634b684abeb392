// Package catalog contiene las reglas de negocio puras del catálogo de productos:
// atributos por categoría, validaciones y resolución de referencias catálogo→producto.
// No hace I/O; el reloj llega como parámetro.
package catalog

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Nombres de los atributos propios de cada categoría dentro de UniqueProperties.
const (
	PropertyVoltage    = "Voltage"
	PropertySocketType = "SocketType"
	PropertyExpiryDate = "ExpiryDate"
)

// ElectricAttributes variante de atributos de un producto eléctrico.
// Has* indica si el atributo vino en la bolsa con un valor no vacío.
type ElectricAttributes struct {
	Voltage       string
	SocketType    string
	HasVoltage    bool
	HasSocketType bool
}

// ElectricAttributesFrom proyecta la bolsa genérica a la variante eléctrica.
func ElectricAttributesFrom(props entity.UniqueProperties) ElectricAttributes {
	var a ElectricAttributes
	if v, ok := props.Get(PropertyVoltage); ok && strings.TrimSpace(v) != "" {
		a.Voltage = strings.TrimSpace(v)
		a.HasVoltage = true
	}
	if v, ok := props.Get(PropertySocketType); ok && strings.TrimSpace(v) != "" {
		a.SocketType = strings.TrimSpace(v)
		a.HasSocketType = true
	}
	return a
}

// Properties convierte la variante de vuelta a la bolsa que persiste el almacenamiento.
func (a ElectricAttributes) Properties() entity.UniqueProperties {
	var out entity.UniqueProperties
	if a.HasVoltage {
		out = append(out, entity.UniqueProperty{Name: PropertyVoltage, Value: a.Voltage})
	}
	if a.HasSocketType {
		out = append(out, entity.UniqueProperty{Name: PropertySocketType, Value: a.SocketType})
	}
	return out
}

// FreshAttributes variante de atributos de un producto perecedero.
// Raw guarda el texto original; Parsed indica si se pudo interpretar como fecha.
type FreshAttributes struct {
	Raw        string
	ExpiryDate time.Time
	Present    bool
	Parsed     bool
}

// FreshAttributesFrom proyecta la bolsa genérica a la variante perecedera.
// La fecha se interpreta en UTC cuando el texto no trae zona horaria.
func FreshAttributesFrom(props entity.UniqueProperties) FreshAttributes {
	var a FreshAttributes
	v, ok := props.Get(PropertyExpiryDate)
	if !ok || strings.TrimSpace(v) == "" {
		return a
	}
	a.Raw = strings.TrimSpace(v)
	a.Present = true
	if t, ok := parseExpiryDate(a.Raw); ok {
		a.ExpiryDate = t
		a.Parsed = true
	}
	return a
}

// parseExpiryDate interpreta la fecha con día primero ("31/12/2026"); si el mes queda
// fuera de rango reintenta mes primero ("12/31/2026"). Un texto solo de dígitos
// (año suelto, epoch) no es una fecha de vencimiento.
func parseExpiryDate(raw string) (time.Time, bool) {
	if strings.Trim(raw, "0123456789") == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(raw, time.UTC,
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(true),
	)
	if err != nil {
		return time.Time{}, false
	}
	if t.Location() == time.Local {
		// el reintento de dateparse interpreta en hora local
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	}
	return t, true
}

// Properties convierte la variante de vuelta a la bolsa.
func (a FreshAttributes) Properties() entity.UniqueProperties {
	if !a.Present {
		return nil
	}
	return entity.UniqueProperties{{Name: PropertyExpiryDate, Value: a.Raw}}
}

// NormalizeProperties prepara la bolsa para persistir: los atributos propios de la
// categoría van primero, con su nombre canónico y sin espacios sobrantes; el resto
// se conserva en su orden original.
func NormalizeProperties(category entity.Category, props entity.UniqueProperties) entity.UniqueProperties {
	var (
		typed entity.UniqueProperties
		names []string
	)
	switch category {
	case entity.CategoryElectric:
		typed = ElectricAttributesFrom(props).Properties()
		names = []string{PropertyVoltage, PropertySocketType}
	case entity.CategoryFresh:
		typed = FreshAttributesFrom(props).Properties()
		names = []string{PropertyExpiryDate}
	default:
		return props
	}

	out := make(entity.UniqueProperties, 0, len(props))
	out = append(out, typed...)
	for _, p := range props {
		if !isAttributeName(p.Name, names) {
			out = append(out, p)
		}
	}
	return out
}

func isAttributeName(name string, names []string) bool {
	name = strings.TrimSpace(name)
	for _, n := range names {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}
