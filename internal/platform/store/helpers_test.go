package store

import (
	"context"
	"errors"
	"math/big"
	"reflect"
	"testing"
	"time"

	perr "asistencia/internal/platform/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type fakeRowQuerier struct {
	queryRows Rows
	queryErr  error

	qrRow   Row
	qrErr   error
	qrCalls int
}

func (f *fakeRowQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return nil, nil
}

func (f *fakeRowQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return f.queryRows, f.queryErr
}

func (f *fakeRowQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	f.qrCalls++
	return &fakeRow{err: f.qrErr, val: f.qrRow}
}

type fakeRow struct {
	// if val != nil delegate; else Scan first arg
	val Row
	err error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.val != nil {
		return r.val.Scan(dest...)
	}
	if len(dest) > 0 {
		switch p := dest[0].(type) {
		case *int:
			*p = 42
		case *string:
			*p = "ok"
		default:
			rv := reflect.ValueOf(dest[0])
			if rv.Kind() == reflect.Pointer && rv.Elem().CanSet() {
				zero := reflect.Zero(rv.Elem().Type())
				rv.Elem().Set(zero)
			}
		}
	}
	return nil
}

type fakeRows struct {
	cols   []string
	data   [][]any // each row is len(cols)
	idx    int     // -1 before first
	err    error
	closed bool
}

func newRows(cols []string, data [][]any) *fakeRows {
	return &fakeRows{cols: cols, data: data, idx: -1}
}
func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Next() bool {
	if r.err != nil {
		return false
	}
	r.idx++
	return r.idx >= 0 && r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.idx < 0 || r.idx >= len(r.data) {
		return errors.New("scan out of bounds")
	}
	row := r.data[r.idx]
	if len(dest) != len(row) {
		return errors.New("dest len mismatch")
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || !dv.Elem().CanSet() {
			return errors.New("dest not settable")
		}
		val := reflect.ValueOf(row[i])
		if val.IsValid() && val.Type().AssignableTo(dv.Elem().Type()) {
			dv.Elem().Set(val)
			continue
		}
		if b, ok := row[i].([]byte); ok && dv.Elem().Kind() == reflect.String {
			dv.Elem().SetString(string(b))
			continue
		}
		if s, ok := row[i].(string); ok && dv.Elem().Kind() == reflect.Slice &&
			dv.Elem().Type().Elem().Kind() == reflect.Uint8 {
			dv.Elem().SetBytes([]byte(s))
			continue
		}
		if val.IsValid() && val.Type().ConvertibleTo(dv.Elem().Type()) {
			dv.Elem().Set(val.Convert(dv.Elem().Type()))
			continue
		}
		dv.Elem().Set(reflect.Zero(dv.Elem().Type()))
	}
	return nil
}
func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Close()     { r.closed = true }

/*
	tests
*/

func TestScalar_OK(t *testing.T) {
	t.Parallel()

	// QueryRow returns 7
	f := &fakeRowQuerier{
		qrRow: Row(&fakeRow{val: Row(&scanVal{v: 7})}),
	}
	got, err := Scalar[int](context.Background(), f, "select 7")
	if err != nil {
		t.Fatalf("Scalar err: %v", err)
	}
	if got != 7 {
		t.Fatalf("Scalar got %d want 7", got)
	}
}

// scanVal lets us force the returned Scan value
type scanVal struct{ v any }

func (s *scanVal) Scan(dest ...any) error {
	if len(dest) == 0 {
		return nil
	}
	dv := reflect.ValueOf(dest[0])
	if dv.Kind() == reflect.Pointer && dv.Elem().CanSet() {
		val := reflect.ValueOf(s.v)
		if val.Type().AssignableTo(dv.Elem().Type()) {
			dv.Elem().Set(val)
		} else if val.Type().ConvertibleTo(dv.Elem().Type()) {
			dv.Elem().Set(val.Convert(dv.Elem().Type()))
		}
	}
	return nil
}

func TestScalar_ScanError(t *testing.T) {
	t.Parallel()

	f := &fakeRowQuerier{qrErr: errors.New("scan bad")}
	_, err := Scalar[int](context.Background(), f, "select 1")
	if err == nil || err.Error() != "scan bad" {
		t.Fatalf("expected scan error, got %v", err)
	}
}

func TestMaps_MultiRow(t *testing.T) {
	t.Parallel()

	cols := []string{"codigo", "nombre"}
	data := [][]any{{"EMP001", "Maria"}, {"EMP002", "Carlos"}}

	f := &fakeRowQuerier{queryRows: newRows(cols, data)}
	mv, err := Maps(context.Background(), f, "q")
	if err != nil {
		t.Fatalf("Maps err: %v", err)
	}
	if len(mv) != 2 || mv[0]["codigo"] != "EMP001" || mv[1]["nombre"] != "Carlos" {
		t.Fatalf("Maps mismatch: %#v", mv)
	}
}

func TestDeref_DriverNatives(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("7b69114e-9a84-4c3e-8a5a-2b2f6e5d9c01")

	num := pgtype.Numeric{Int: big.NewInt(583333), Exp: -2, Valid: true}
	badNum := pgtype.Numeric{}

	hhmm := pgtype.Time{Microseconds: (8*3600 + 30*60) * 1_000_000, Valid: true}
	nullTime := pgtype.Time{}

	cols := []string{"id", "valor", "valor_nulo", "hora", "hora_nula"}
	data := [][]any{{[16]byte(id), num, badNum, hhmm, nullTime}}
	f := &fakeRowQuerier{queryRows: newRows(cols, data)}

	mv, err := Maps(context.Background(), f, "q")
	if err != nil {
		t.Fatalf("Maps err: %v", err)
	}
	if len(mv) != 1 {
		t.Fatalf("rows = %d", len(mv))
	}
	m := mv[0]
	if m["id"] != id.String() {
		t.Fatalf("uuid deref mismatch: %#v", m["id"])
	}
	if m["valor"] != 5833.33 {
		t.Fatalf("numeric deref mismatch: %#v", m["valor"])
	}
	if m["valor_nulo"] != nil {
		t.Fatalf("null numeric should deref to nil, got %#v", m["valor_nulo"])
	}
	if m["hora"] != "08:30:00" {
		t.Fatalf("time deref mismatch: %#v", m["hora"])
	}
	if m["hora_nula"] != nil {
		t.Fatalf("null time should deref to nil, got %#v", m["hora_nula"])
	}
}

func TestDeref_NilTimePointer(t *testing.T) {
	t.Parallel()

	var tm *time.Time // nil pointer
	cols := []string{"visto"}
	f := &fakeRowQuerier{queryRows: newRows(cols, [][]any{{tm}})}
	mv, err := Maps(context.Background(), f, "q")
	if err != nil {
		t.Fatalf("Maps err: %v", err)
	}
	m := mv[0]
	if _, present := m["visto"]; !present {
		t.Fatalf("expected visto key present")
	}
	if m["visto"] != nil {
		t.Fatalf("expected nil deref for *time.Time(nil), got %#v", m["visto"])
	}
}

func TestStructByName_And_StructsByName(t *testing.T) {
	t.Parallel()

	type empleado struct {
		ID     int    `db:"empleado_id"` // tag mapping
		Nombre string // field mapping
		Raw    []byte // string -> []byte conversion path
		Nota   string // []byte -> string conversion path
		VistoA time.Time
	}

	tm := time.Date(2025, 8, 26, 12, 0, 0, 0, time.UTC)

	cols := []string{"empleado_id", "nombre", "raw", "nota", "vistoa"}
	data := [][]any{
		{10, "Zoe", "hello", []byte("bytes"), &tm},
		{11, "Ada", "x", []byte("y"), &tm},
	}

	// single
	f1 := &fakeRowQuerier{queryRows: newRows(cols, data[:1])}
	u, err := StructByName[empleado](context.Background(), f1, "q")
	if err != nil {
		t.Fatalf("StructByName err: %v", err)
	}
	if u.ID != 10 || u.Nombre != "Zoe" || string(u.Raw) != "hello" || u.Nota != "bytes" || u.VistoA.IsZero() {
		t.Fatalf("StructByName mismatch: %#v", u)
	}

	// not found
	f2 := &fakeRowQuerier{queryRows: newRows(cols, nil)}
	_, err = StructByName[empleado](context.Background(), f2, "q")
	if !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("StructByName expected ErrNotFound, got %v", err)
	}

	// too many
	f3 := &fakeRowQuerier{queryRows: newRows(cols, data)}
	_, err = StructByName[empleado](context.Background(), f3, "q")
	if err == nil {
		t.Fatalf("StructByName expected error on >1 row")
	}

	// structs slice
	f4 := &fakeRowQuerier{queryRows: newRows(cols, data)}
	us, err := StructsByName[empleado](context.Background(), f4, "q")
	if err != nil {
		t.Fatalf("StructsByName err: %v", err)
	}
	if len(us) != 2 || us[0].ID != 10 || us[1].Nombre != "Ada" {
		t.Fatalf("StructsByName mismatch: %#v", us)
	}
}

func TestMaps_ScanErrorOnSecondRow(t *testing.T) {
	t.Parallel()

	// First row OK (2 values), second row short (1 value) -> scanMap error on second iteration
	cols := []string{"codigo", "nombre"}
	rows := newRows(cols, [][]any{
		{"EMP001", "ok"},
		{"EMP002"}, // dest mismatch triggers scanMap error
	})
	f := &fakeRowQuerier{queryRows: rows}
	_, err := Maps(context.Background(), f, "q")
	if err == nil {
		t.Fatalf("expected scanMap error on second row")
	}
}

func TestIndexStructFields_AndAssignConversionsAndNilSrc(t *testing.T) {
	t.Parallel()

	type demo struct {
		I64   int64  `db:"num"` // convertible from int32
		S     string // from []byte
		B     []byte // from string
		Plain int    // assignable
	}

	cols := []string{"num", "s", "b", "plain"}
	row := [][]any{{int32(5), []byte("bytes"), "str", 9}}
	rows := newRows(cols, row)

	got, err := StructByName[demo](context.Background(), &fakeRowQuerier{queryRows: rows}, "q")
	if err != nil {
		t.Fatalf("StructByName err: %v", err)
	}
	if got.I64 != 5 || got.S != "bytes" || string(got.B) != "str" || got.Plain != 9 {
		t.Fatalf("assign/convert mismatch: %#v", got)
	}

	// Also exercise assign nil to zero-value
	var dst reflect.Value
	{
		var s struct{ X *int }
		dst = reflect.ValueOf(&s).Elem().FieldByName("X")
		assign(dst, nil)
		if !dst.IsNil() {
			t.Fatalf("nil assign should set zero; got %#v", dst.Interface())
		}
	}
}

func TestAssign_PointerTargetWrapsValue(t *testing.T) {
	t.Parallel()

	var s struct {
		Conf *float64
		Nom  *string
	}
	assign(reflect.ValueOf(&s).Elem().FieldByName("Conf"), 0.87)
	assign(reflect.ValueOf(&s).Elem().FieldByName("Nom"), "Ana")

	if s.Conf == nil || *s.Conf != 0.87 {
		t.Fatalf("pointer float assign: %#v", s.Conf)
	}
	if s.Nom == nil || *s.Nom != "Ana" {
		t.Fatalf("pointer string assign: %#v", s.Nom)
	}
}

func TestMaps_EmptyRows_IsHappyPath(t *testing.T) {
	t.Parallel()

	f := &fakeRowQuerier{queryRows: newRows([]string{"codigo", "nombre"}, nil)}
	out, err := Maps(context.Background(), f, "q")
	if err != nil {
		t.Fatalf("expected nil error on empty result set, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty slice, got %v", out)
	}
}

func TestMaps_ReturnsRowsErr_WhenIteratorErrors(t *testing.T) {
	t.Parallel()

	r := newRows([]string{"codigo"}, nil)
	r.err = errors.New("rows kaput")
	f := &fakeRowQuerier{queryRows: r}

	out, err := Maps(context.Background(), f, "q")
	if err == nil || err.Error() != "rows kaput" {
		t.Fatalf("expected rows.Err to bubble, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil slice on error, got %v", out)
	}
}

func TestMaps_QueryError(t *testing.T) {
	t.Parallel()

	f := &fakeRowQuerier{queryErr: errors.New("query bad")}
	_, err := Maps(context.Background(), f, "q")
	if err == nil || err.Error() != "query bad" {
		t.Fatalf("expected query error, got %v", err)
	}
}

func TestIndexStructFields_SkipsUnexported_AndCaseInsensitive(t *testing.T) {
	t.Parallel()

	type demo struct {
		ID int // exported
	}
	m := indexStructFields(reflect.TypeOf(demo{}))
	if _, ok := m["id"]; !ok {
		t.Fatalf("expected id key present")
	}
	if _, ok := m["name"]; ok {
		t.Fatalf("did not expect unexported field to be indexed")
	}
}

func TestAssign_Incompatible_NoOpLeavesZero(t *testing.T) {
	t.Parallel()

	type dstStruct struct {
		V int
	}
	var target dstStruct
	rv := reflect.ValueOf(&target).Elem().FieldByName("V")

	// assign a type that can't convert or assign to int
	type weird struct{ X string }
	assign(rv, weird{X: "nope"})

	if target.V != 0 {
		t.Fatalf("expected zero value on incompatible assign, got %v", target.V)
	}
}
