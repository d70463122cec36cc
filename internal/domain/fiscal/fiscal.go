// Package fiscal contiene validaciones de dominio para comprobantes fiscales
// dominicanos (DGII): formato de NCF y dígito verificador del RNC.
package fiscal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNCF agrupa errores de validación de NCF.
var ErrInvalidNCF = errors.New("NCF inválido")

// ErrInvalidRNC agrupa errores de validación de RNC.
var ErrInvalidRNC = errors.New("RNC inválido")

// Tipos de comprobante fiscal según el catálogo DGII.
const (
	NCFCreditoFiscal   = "01"
	NCFConsumo         = "02"
	NCFNotaDebito      = "03"
	NCFNotaCredito     = "04"
	NCFRegimenEspecial = "14"
	NCFGubernamental   = "15"
)

// Tipos de e-CF (serie E).
const (
	ECFCreditoFiscal   = "31"
	ECFConsumo         = "32"
	ECFNotaDebito      = "33"
	ECFNotaCredito     = "34"
	ECFCompras         = "41"
	ECFGastosMenores   = "43"
	ECFRegimenEspecial = "44"
	ECFGubernamental   = "45"
)

var ncfTypeNames = map[string]string{
	NCFCreditoFiscal:   "Crédito Fiscal",
	NCFConsumo:         "Consumo",
	NCFNotaDebito:      "Nota de Débito",
	NCFNotaCredito:     "Nota de Crédito",
	NCFRegimenEspecial: "Régimen Especial",
	NCFGubernamental:   "Gubernamental",
	ECFCreditoFiscal:   "Crédito Fiscal Electrónico",
	ECFConsumo:         "Consumo Electrónico",
	ECFNotaDebito:      "Nota de Débito Electrónica",
	ECFNotaCredito:     "Nota de Crédito Electrónica",
	ECFCompras:         "Compras Electrónico",
	ECFGastosMenores:   "Gastos Menores Electrónico",
	ECFRegimenEspecial: "Régimen Especial Electrónico",
	ECFGubernamental:   "Gubernamental Electrónico",
}

// ValidateNCF valida el formato del NCF: serie B + tipo de 2 dígitos + secuencia
// de 8 dígitos (11 caracteres), o serie E (e-CF) + tipo + secuencia de 10
// dígitos (13 caracteres). El tipo debe existir en el catálogo DGII.
func ValidateNCF(ncf string) error {
	ncf = strings.ToUpper(strings.TrimSpace(ncf))
	if ncf == "" {
		return fmt.Errorf("%w: vacío", ErrInvalidNCF)
	}
	var seqLen int
	switch ncf[0] {
	case 'B':
		seqLen = 8
	case 'E':
		seqLen = 10
	default:
		return fmt.Errorf("%w: serie desconocida %q", ErrInvalidNCF, ncf[0:1])
	}
	if len(ncf) != 3+seqLen {
		return fmt.Errorf("%w: longitud %d, se esperan %d caracteres", ErrInvalidNCF, len(ncf), 3+seqLen)
	}
	typeCode := ncf[1:3]
	name, ok := ncfTypeNames[typeCode]
	if !ok {
		return fmt.Errorf("%w: tipo de comprobante desconocido %q", ErrInvalidNCF, typeCode)
	}
	// Los tipos 3x/4x son exclusivos de la serie electrónica y viceversa.
	electronic := typeCode[0] == '3' || typeCode[0] == '4'
	if electronic != (ncf[0] == 'E') {
		return fmt.Errorf("%w: tipo %q (%s) no corresponde a la serie %q", ErrInvalidNCF, typeCode, name, ncf[0:1])
	}
	if !allDigits(ncf[1:]) {
		return fmt.Errorf("%w: la secuencia debe ser numérica", ErrInvalidNCF)
	}
	return nil
}

// NCFTypeName devuelve el nombre del tipo de comprobante de un NCF válido,
// o cadena vacía si el NCF no valida.
func NCFTypeName(ncf string) string {
	if ValidateNCF(ncf) != nil {
		return ""
	}
	return ncfTypeNames[strings.ToUpper(strings.TrimSpace(ncf))[1:3]]
}

// rncWeights pesos del dígito verificador del RNC (módulo 11, DGII).
var rncWeights = [8]int{7, 9, 8, 6, 5, 4, 3, 2}

// ValidateRNC valida un RNC de 9 dígitos incluyendo su dígito verificador
// (módulo 11). Acepta el valor con o sin guiones.
func ValidateRNC(rnc string) error {
	digits := onlyDigits(rnc)
	if len(digits) != 9 {
		return fmt.Errorf("%w: se esperan 9 dígitos, hay %d", ErrInvalidRNC, len(digits))
	}
	sum := 0
	for i, w := range rncWeights {
		sum += int(digits[i]-'0') * w
	}
	var check int
	switch rest := sum % 11; rest {
	case 0:
		check = 2
	case 1:
		check = 1
	default:
		check = 11 - rest
	}
	if int(digits[8]-'0') != check {
		return fmt.Errorf("%w: dígito verificador %c, se esperaba %d", ErrInvalidRNC, digits[8], check)
	}
	return nil
}

// FormatRNC formatea un RNC de 9 dígitos como X-XX-XXXXX-X para presentación.
// Si el valor no tiene 9 dígitos se devuelve tal cual (puede ser una cédula u
// otro identificador extranjero).
func FormatRNC(rnc string) string {
	digits := onlyDigits(rnc)
	if len(digits) != 9 {
		return strings.TrimSpace(rnc)
	}
	return digits[0:1] + "-" + digits[1:3] + "-" + digits[3:8] + "-" + digits[8:9]
}

// ── helpers ───────────────────────────────────────────────────────────────────

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// onlyDigits deja solo dígitos 0-9 (descarta guiones y espacios).
func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
