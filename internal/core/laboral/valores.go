package laboral

import (
	"github.com/shopspring/decimal"
)

// DefaultValorHoraOrdinaria applies when the configuration table has no rate
const DefaultValorHoraOrdinaria = 5833.33

// Tarifas holds the hourly rates used for monetary valuation
type Tarifas struct {
	Ordinaria     decimal.Decimal
	ExtraDiurna   decimal.Decimal
	ExtraNocturna decimal.Decimal
}

// TarifasDesdeConfig builds rates from the configuration key/value table.
// Missing extra rates derive from the ordinary rate by statutory factor
func TarifasDesdeConfig(cfg map[string]string) Tarifas {
	ordinaria := parseRate(cfg["valor_hora_ordinaria"], decimal.NewFromFloat(DefaultValorHoraOrdinaria))
	return Tarifas{
		Ordinaria:     ordinaria,
		ExtraDiurna:   parseRate(cfg["valor_hora_extra_diurna"], ordinaria.Mul(decimal.NewFromFloat(FactorExtraDiurna))),
		ExtraNocturna: parseRate(cfg["valor_hora_extra_nocturna"], ordinaria.Mul(decimal.NewFromFloat(FactorExtraNocturna))),
	}
}

func parseRate(s string, def decimal.Decimal) decimal.Decimal {
	if s == "" {
		return def
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return def
	}
	return d
}

// Valores is the monetary breakdown of a set of classified hours
type Valores struct {
	Ordinarias      float64 `json:"ordinarias"`
	ExtraDiurna     float64 `json:"extra_diurna"`
	ExtraNocturna   float64 `json:"extra_nocturna"`
	RecargoNocturno float64 `json:"recargo_nocturno"`
	Dominical       float64 `json:"dominical"`
	Total           float64 `json:"total"`
}

// CalcularValores prices classified hours. The Sunday premium only pays out
// for employees flagged liquida_dominical
func CalcularValores(a Acumulado, t Tarifas, liquidaDominical bool) Valores {
	ordinarias := t.Ordinaria.Mul(decimal.NewFromFloat(a.HorasOrdinarias))
	extraDiurna := t.ExtraDiurna.Mul(decimal.NewFromFloat(a.HorasExtraDiurna))
	extraNocturna := t.ExtraNocturna.Mul(decimal.NewFromFloat(a.HorasExtraNocturna))
	recargo := t.Ordinaria.
		Mul(decimal.NewFromFloat(FactorRecargoNocturno)).
		Mul(decimal.NewFromFloat(a.HorasRecargoNocturno))

	dominical := decimal.Zero
	if liquidaDominical {
		dominical = t.Ordinaria.
			Mul(decimal.NewFromFloat(FactorDominical)).
			Mul(decimal.NewFromFloat(a.HorasDominical))
	}

	// line items round first, the total sums the rounded values so the
	// breakdown always adds up to the total a client sees
	ordinarias = ordinarias.Round(2)
	extraDiurna = extraDiurna.Round(2)
	extraNocturna = extraNocturna.Round(2)
	recargo = recargo.Round(2)
	dominical = dominical.Round(2)
	total := ordinarias.Add(extraDiurna).Add(extraNocturna).Add(recargo).Add(dominical)

	return Valores{
		Ordinarias:      round2(ordinarias),
		ExtraDiurna:     round2(extraDiurna),
		ExtraNocturna:   round2(extraNocturna),
		RecargoNocturno: round2(recargo),
		Dominical:       round2(dominical),
		Total:           round2(total),
	}
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Acumulado sums classified hours across days for one employee
type Acumulado struct {
	HorasTrabajadas      float64 `json:"horas_trabajadas"`
	HorasOrdinarias      float64 `json:"horas_ordinarias"`
	HorasExtraDiurna     float64 `json:"horas_extra_diurna"`
	HorasExtraNocturna   float64 `json:"horas_extra_nocturna"`
	HorasRecargoNocturno float64 `json:"horas_recargo_nocturno"`
	HorasDominical       float64 `json:"horas_dominical"`
	DiasTrabajados       int     `json:"dias_trabajados"`
}

// Sumar folds one classified day into the running totals.
// Days with no worked time do not count as worked days
func (a *Acumulado) Sumar(d DiaTotales) {
	if d.HorasTrabajadas <= 0 {
		return
	}
	a.HorasTrabajadas = Redondear2(a.HorasTrabajadas + d.HorasTrabajadas)
	a.HorasOrdinarias = Redondear2(a.HorasOrdinarias + d.HorasOrdinarias)
	a.HorasExtraDiurna = Redondear2(a.HorasExtraDiurna + d.HorasExtraDiurna)
	a.HorasExtraNocturna = Redondear2(a.HorasExtraNocturna + d.HorasExtraNocturna)
	a.HorasRecargoNocturno = Redondear2(a.HorasRecargoNocturno + d.HorasRecargoNocturno)
	a.HorasDominical = Redondear2(a.HorasDominical + d.HorasDominical)
	a.DiasTrabajados++
}

// ExcesoSemanal reports hours beyond the 48h weekly statutory limit
func ExcesoSemanal(horas float64) (bool, float64) {
	if horas > LimiteSemanal {
		return true, Redondear2(horas - LimiteSemanal)
	}
	return false, 0
}
