// Package laboral implements the Colombian labor-rule hour classification:
// interval reconstruction from punch events, the nocturnal window, the
// ordinary/overtime split and the monetary valuation factors
package laboral

import (
	"fmt"
	"math"
	"time"

	"asistencia/internal/core/fechas"
	perr "asistencia/internal/platform/errors"
)

// Statutory constants
const (
	InicioNocturnoMin = 21 * 60 // 21:00
	FinNocturnoMin    = 6 * 60  // 06:00
	JornadaOrdinaria  = 8       // hours per day
	LimiteSemanal     = 48      // hours per week

	minutosDia = 24 * 60
)

// Surcharge factors over the ordinary hourly rate
const (
	FactorExtraDiurna     = 1.25
	FactorExtraNocturna   = 1.75
	FactorRecargoNocturno = 0.35
	FactorDominical       = 1.75
)

// Tipo values of a punch event
const (
	TipoEntrada = "ENTRADA"
	TipoSalida  = "SALIDA"
)

// Marca is one punch event reduced to what classification needs
type Marca struct {
	Tipo string // ENTRADA or SALIDA
	Hora int    // minutes since local midnight
}

// ParseHora reads an HH:MM or HH:MM:SS clock into minutes since midnight
func ParseHora(s string) (int, error) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, perr.InvalidArgf("hora invalida %q", s)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, perr.InvalidArgf("hora invalida %q", s)
	}
	return h*60 + m, nil
}

// FormatoHora renders minutes since midnight as HH:MM:SS
func FormatoHora(min int) string {
	min %= minutosDia
	return fmt.Sprintf("%02d:%02d:00", min/60, min%60)
}

// EsNocturna reports whether a minute-of-day falls in the night window [21:00, 06:00)
func EsNocturna(min int) bool {
	m := min % minutosDia
	return m >= InicioNocturnoMin || m < FinNocturnoMin
}

// MinutosIntervalo returns the length of a punch interval in minutes.
// An exit earlier than its entry means the shift crossed midnight.
// Identical times are degenerate and rejected
func MinutosIntervalo(entrada, salida int) (int, error) {
	if entrada == salida {
		return 0, perr.InvalidIntervalf("entrada y salida identicas (%s)", FormatoHora(entrada))
	}
	if salida < entrada {
		salida += minutosDia
	}
	return salida - entrada, nil
}

// MinutosNocturnos counts the minutes of [entrada, salida) inside the night
// window, normalizing midnight-crossing intervals first. Exact to one minute
func MinutosNocturnos(entrada, salida int) int {
	if salida < entrada {
		salida += minutosDia
	}
	total := 0
	// the normalized interval spans at most two civil days, so two windows
	// of each night band cover it
	for base := 0; base <= minutosDia; base += minutosDia {
		// evening band [21:00, 24:00)
		total += solape(entrada, salida, base+InicioNocturnoMin, base+minutosDia)
		// early-morning band [00:00, 06:00)
		total += solape(entrada, salida, base, base+FinNocturnoMin)
	}
	return total
}

// solape returns the overlap length of [a1,a2) and [b1,b2)
func solape(a1, a2, b1, b2 int) int {
	lo := max(a1, b1)
	hi := min(a2, b2)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// Intervalo is one reconstructed work span within a day
type Intervalo struct {
	Entrada        string  `json:"entrada"`
	Salida         string  `json:"salida"`
	Horas          float64 `json:"horas"`
	HorasNocturnas float64 `json:"horas_nocturnas"`
	HorasDiurnas   float64 `json:"horas_diurnas"`
}

// DiaTotales is the full per-day classification result
type DiaTotales struct {
	Fecha                string      `json:"fecha"`
	EsDomingo            bool        `json:"es_domingo"`
	HorasTrabajadas      float64     `json:"horas_trabajadas"`
	HorasOrdinarias      float64     `json:"horas_ordinarias"`
	HorasExtraDiurna     float64     `json:"horas_extra_diurna"`
	HorasExtraNocturna   float64     `json:"horas_extra_nocturna"`
	HorasRecargoNocturno float64     `json:"horas_recargo_nocturno"`
	HorasDominical       float64     `json:"horas_dominical"`
	Intervalos           []Intervalo `json:"intervalos"`
	TotalIntervalos      int         `json:"total_intervalos"`
	IntervalosInvalidos  int         `json:"intervalos_invalidos,omitempty"`
}

// CalcularDia classifies one day of punches for one employee.
// Events must already be sorted by time; ENTRADA pairs with the next SALIDA,
// orphans are dropped, degenerate pairs count as anomalies without aborting.
// Internal sums stay in whole minutes, hours appear only at the boundary
func CalcularDia(marcas []Marca, fecha time.Time) DiaTotales {
	out := DiaTotales{
		Fecha:      fechas.Formato(fecha),
		EsDomingo:  fechas.EsDomingo(fecha),
		Intervalos: []Intervalo{},
	}

	totalMin, nocturnoMin := 0, 0

	i := 0
	for i < len(marcas) {
		if marcas[i].Tipo == TipoEntrada {
			for j := i + 1; j < len(marcas); j++ {
				if marcas[j].Tipo != TipoSalida {
					continue
				}
				dur, err := MinutosIntervalo(marcas[i].Hora, marcas[j].Hora)
				if err != nil {
					out.IntervalosInvalidos++
					i = j
					break
				}
				noct := MinutosNocturnos(marcas[i].Hora, marcas[j].Hora)
				out.Intervalos = append(out.Intervalos, Intervalo{
					Entrada:        FormatoHora(marcas[i].Hora),
					Salida:         FormatoHora(marcas[j].Hora),
					Horas:          Horas(dur),
					HorasNocturnas: Horas(noct),
					HorasDiurnas:   Horas(dur - noct),
				})
				totalMin += dur
				nocturnoMin += noct
				i = j
				break
			}
		}
		i++
	}

	out.TotalIntervalos = len(out.Intervalos)
	out.HorasTrabajadas = Horas(totalMin)
	out.HorasRecargoNocturno = Horas(nocturnoMin)

	ordinarioMin := min(totalMin, JornadaOrdinaria*60)
	extraMin := max(0, totalMin-JornadaOrdinaria*60)
	out.HorasOrdinarias = Horas(ordinarioMin)

	if extraMin > 0 && totalMin > 0 {
		// overtime splits proportionally between day and night minutes
		extraNocturna := Redondear2(Horas(extraMin) * float64(nocturnoMin) / float64(totalMin))
		out.HorasExtraNocturna = extraNocturna
		out.HorasExtraDiurna = Redondear2(Horas(extraMin) - extraNocturna)
	}

	if out.EsDomingo {
		out.HorasDominical = out.HorasTrabajadas
	}

	return out
}

// Horas converts whole minutes to two-decimal hours
func Horas(min int) float64 {
	return Redondear2(float64(min) / 60)
}

// Redondear2 rounds half away from zero to two decimals
func Redondear2(x float64) float64 {
	return math.Round(x*100) / 100
}
