// Package fechas provides civil-date helpers in the configured business timezone.
// All reporting windows (day, week, month, quincena) are computed here so the
// rest of the system never touches raw time arithmetic
package fechas

import (
	"fmt"
	"time"

	"asistencia/internal/platform/config/raw"
	perr "asistencia/internal/platform/errors"
)

// ISO is the wire format for every date argument and result field
const ISO = "2006-01-02"

var meses = [13]string{
	"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Location resolves TIMEZONE (default America/Bogota).
// Read per call like the rest of the env surface; a bad or missing tz
// database entry degrades to the fixed Bogota offset
func Location() *time.Location {
	name := raw.New().Get("TIMEZONE", "America/Bogota")
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("-05", -5*60*60)
	}
	return loc
}

// Hoy returns today's civil date at midnight in the business timezone
func Hoy() time.Time {
	return Truncar(time.Now().In(Location()))
}

// Ahora returns the current wall clock in the business timezone
func Ahora() time.Time {
	return time.Now().In(Location())
}

// Truncar drops the time-of-day component, keeping the location
func Truncar(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Parse reads a YYYY-MM-DD date in the business timezone
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISO, s, Location())
	if err != nil {
		return time.Time{}, perr.InvalidArgf("fecha invalida %q, se espera YYYY-MM-DD", s)
	}
	return t, nil
}

// DiaSemana maps a date onto 0=Lunes .. 6=Domingo
func DiaSemana(t time.Time) int {
	// Go counts Sunday as 0
	return (int(t.Weekday()) + 6) % 7
}

// EsDomingo reports whether t falls on a Sunday
func EsDomingo(t time.Time) bool {
	return t.Weekday() == time.Sunday
}

// RangoSemana returns the Monday..Sunday window containing ref.
// A zero ref means today
func RangoSemana(ref time.Time) (inicio, fin time.Time) {
	if ref.IsZero() {
		ref = Hoy()
	}
	ref = Truncar(ref)
	inicio = ref.AddDate(0, 0, -DiaSemana(ref))
	fin = inicio.AddDate(0, 0, 6)
	return inicio, fin
}

// RangoMes returns the first and last day of a calendar month
func RangoMes(anio, mes int) (inicio, fin time.Time) {
	loc := Location()
	inicio = time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, loc)
	fin = inicio.AddDate(0, 1, -1)
	return inicio, fin
}

// RangoQuincena returns the payroll half-month: days 1-15 or 16-end
func RangoQuincena(anio, mes, quincena int) (inicio, fin time.Time) {
	loc := Location()
	if quincena == 1 {
		inicio = time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, loc)
		fin = time.Date(anio, time.Month(mes), 15, 0, 0, 0, 0, loc)
		return inicio, fin
	}
	inicio = time.Date(anio, time.Month(mes), 16, 0, 0, 0, 0, loc)
	_, fin = RangoMes(anio, mes)
	return inicio, fin
}

// NombreMes returns the Spanish month name, empty for out-of-range input
func NombreMes(mes int) string {
	if mes < 1 || mes > 12 {
		return ""
	}
	return meses[mes]
}

// Formato renders t as YYYY-MM-DD
func Formato(t time.Time) string {
	return t.Format(ISO)
}

// FormatoLegible renders a date the way period headers expect, e.g. "2 de Marzo de 2025"
func FormatoLegible(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), NombreMes(int(t.Month())), t.Year())
}

// PeriodoMes renders the monthly report header, e.g. "Marzo 2025"
func PeriodoMes(anio, mes int) string {
	return fmt.Sprintf("%s %d", NombreMes(mes), anio)
}

// PeriodoQuincena renders the payroll period header, e.g. "Quincena 1 - Marzo 2025"
func PeriodoQuincena(anio, mes, quincena int) string {
	return fmt.Sprintf("Quincena %d - %s %d", quincena, NombreMes(mes), anio)
}
