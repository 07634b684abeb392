package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Mensajes de violación expuestos tal cual al cliente.
const (
	MsgElectricMissingVoltage    = "Electric product must have voltage"
	MsgElectricMissingSocketType = "Electric product must have socket type"
	MsgInvalidSocketType         = "Invalid socket type option"
	MsgFreshMissingExpiryDate    = "Fresh product must have expiry date"
	MsgFreshExpiryTooSoon        = "Fresh products must have an expiry date at least 7 days from now"
	MsgInvalidCategory           = "Invalid product category"
	MsgNegativePrice             = "Product price can't be negative"
	MsgDuplicateProducts         = "Catalog can't contain duplicate products"
	MsgEmptyProductReference     = "Catalog product reference can't be empty"
)

// FreshMinShelfLife margen mínimo de vencimiento para productos frescos referenciados por un catálogo.
const FreshMinShelfLife = 7 * 24 * time.Hour

// socketVoltages tabla de compatibilidad tipo de enchufe → voltaje requerido.
var socketVoltages = map[string]string{
	"UK": "220v",
	"EU": "220v",
	"US": "110v",
}

// SocketVoltage devuelve el voltaje requerido por un tipo de enchufe conocido.
func SocketVoltage(socketType string) (string, bool) {
	v, ok := socketVoltages[strings.ToUpper(strings.TrimSpace(socketType))]
	return v, ok
}

// Validate aplica las reglas de producto eléctrico. La tabla de compatibilidad
// solo se consulta cuando ambos atributos están presentes.
func (a ElectricAttributes) Validate() []string {
	var errs []string
	if !a.HasVoltage {
		errs = append(errs, MsgElectricMissingVoltage)
	}
	if !a.HasSocketType {
		errs = append(errs, MsgElectricMissingSocketType)
	}
	if len(errs) > 0 {
		return errs
	}
	want, ok := SocketVoltage(a.SocketType)
	if !ok {
		return []string{MsgInvalidSocketType}
	}
	if !strings.EqualFold(a.Voltage, want) {
		return []string{fmt.Sprintf("Socket of type %s must have voltage of %s", strings.ToUpper(a.SocketType), want)}
	}
	return nil
}

// Validate aplica la regla de producto fresco: fecha de vencimiento presente e interpretable.
func (a FreshAttributes) Validate() []string {
	if !a.Parsed {
		return []string{MsgFreshMissingExpiryDate}
	}
	return nil
}

// ExpiresBefore informa si la fecha interpretada es anterior a t.
func (a FreshAttributes) ExpiresBefore(t time.Time) bool {
	return a.Parsed && a.ExpiryDate.Before(t)
}

// ValidateProduct evalúa las reglas de la categoría sobre la bolsa de atributos.
// Lista vacía = válido. Una categoría fuera del enum siempre falla.
func ValidateProduct(category entity.Category, props entity.UniqueProperties) []string {
	if !category.Valid() {
		return []string{MsgInvalidCategory}
	}
	switch category {
	case entity.CategoryElectric:
		return ElectricAttributesFrom(props).Validate()
	case entity.CategoryFresh:
		return FreshAttributesFrom(props).Validate()
	}
	return nil
}

// ValidatePrice exige precio no negativo.
func ValidatePrice(price decimal.Decimal) []string {
	if price.IsNegative() {
		return []string{MsgNegativePrice}
	}
	return nil
}

// ValidateFreshProducts regla de catálogo: todo producto fresco referenciado debe vencer
// al menos FreshMinShelfLife después de now. La violación se reporta una vez por lote.
// Fechas no interpretables se ignoran aquí (ya las rechaza ValidateProduct).
func ValidateFreshProducts(products []*entity.Product, now time.Time) []string {
	threshold := now.Add(FreshMinShelfLife)
	for _, p := range products {
		if p == nil || p.Category != entity.CategoryFresh {
			continue
		}
		if FreshAttributesFrom(p.UniqueProperties).ExpiresBefore(threshold) {
			return []string{MsgFreshExpiryTooSoon}
		}
	}
	return nil
}

// ValidateReferences revisa la lista de IDs de un catálogo: sin vacíos ni repetidos.
func ValidateReferences(ids []string) []string {
	var errs []string
	seen := make(map[string]struct{}, len(ids))
	blank, dup := false, false
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			blank = true
			continue
		}
		if _, ok := seen[id]; ok {
			dup = true
			continue
		}
		seen[id] = struct{}{}
	}
	if blank {
		errs = append(errs, MsgEmptyProductReference)
	}
	if dup {
		errs = append(errs, MsgDuplicateProducts)
	}
	return errs
}
