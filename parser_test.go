package envspec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	v1 := IsGreaterThan(0)
	v2 := IsLesserThan(10)

	tests := []struct {
		name           string
		desc           any
		raw            string
		wantValue      any
		wantValidators int
	}{
		{"nil", nil, "x", "x", 0},
		{"bare cast", IntCast, "5", 5, 0},
		{"named cast", Cast(BoolCast), "1", true, 0},
		{"string func", func(s string) (any, error) { return s + "!", nil }, "x", "x!", 0},
		{"empty tuple", Tuple{}, "x", "x", 0},
		{"one tuple", Tuple{IntCast}, "5", 5, 0},
		{"tuple nil validators", Tuple{IntCast, nil}, "5", 5, 0},
		{"tuple single validator", Tuple{IntCast, v1}, "5", 5, 1},
		{"tuple validator slice", Tuple{IntCast, []Validator{v1, v2}}, "5", 5, 2},
		{"tuple any slice", Tuple{IntCast, []any{v1, func(any) error { return nil }}}, "5", 5, 2},
		{"plain slice", []any{IntCast, v1}, "5", 5, 1},
		{"field", Int(v1, v2), "5", 5, 2},
		{"tuple with field", Tuple{Int(v1), v2}, "5", 5, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Normalize(tc.desc)
			require.NoError(t, err)
			require.NotNil(t, f.Cast())

			got, err := f.Cast()(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.wantValue, got)
			assert.Len(t, f.Validators(), tc.wantValidators)
		})
	}
}

func TestNormalize_PreservesValidatorOrder(t *testing.T) {
	var order []string
	mark := func(name string) Validator {
		return ValidatorFunc(func(any) error {
			order = append(order, name)
			return nil
		})
	}

	f, err := Normalize(Tuple{StringCast, []Validator{mark("a"), mark("b"), mark("c")}})
	require.NoError(t, err)
	for _, v := range f.Validators() {
		require.NoError(t, v.Validate("x"))
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestNormalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		desc any
	}{
		{"tuple too long", Tuple{StringCast, nil, nil}},
		{"string", "int"},
		{"number", 42},
		{"nil cast in tuple", Tuple{nil}},
		{"bad validator", Tuple{StringCast, "not a validator"}},
		{"bad validator in slice", Tuple{StringCast, []any{Email, 3}}},
		{"field without cast", Field{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.desc)
			assert.ErrorIs(t, err, ErrSpec)
		})
	}
}

func TestBoolCast(t *testing.T) {
	got, err := BoolCast("1")
	require.NoError(t, err)
	assert.Equal(t, true, got)

	got, err = BoolCast("0")
	require.NoError(t, err)
	assert.Equal(t, false, got)

	got, err = BoolCast("2")
	require.NoError(t, err)
	assert.Equal(t, true, got)

	_, err = BoolCast("true")
	assert.ErrorIs(t, err, ErrCast)

	_, err = BoolCast("abc")
	assert.ErrorIs(t, err, ErrCast)

	_, err = BoolCast("")
	assert.ErrorIs(t, err, ErrCast)

	got, err = BoolCast(" 1 ")
	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestIntCast(t *testing.T) {
	got, err := IntCast("42")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = IntCast("-3")
	require.NoError(t, err)
	assert.Equal(t, -3, got)

	_, err = IntCast("forty-two")
	assert.ErrorIs(t, err, ErrCast)

	got, err = IntCast("010")
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	got, err = IntCast("08080")
	require.NoError(t, err)
	assert.Equal(t, 8080, got)

	got, err = IntCast(" 7\n")
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = IntCast(12)
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	for _, raw := range []string{"", "1.0", "0x10", "1e3"} {
		_, err = IntCast(raw)
		assert.ErrorIs(t, err, ErrCast, "IntCast(%q)", raw)

		_, err = Int64Cast(raw)
		assert.ErrorIs(t, err, ErrCast, "Int64Cast(%q)", raw)
	}
}

func TestStringCast_PassesThroughNonStrings(t *testing.T) {
	type marker struct{}
	m := &marker{}

	got, err := StringCast(m)
	require.NoError(t, err)
	assert.Same(t, m, got)
}

func TestSupplementalCasts(t *testing.T) {
	got, err := Int64Cast("9000000000")
	require.NoError(t, err)
	assert.Equal(t, int64(9000000000), got)

	got, err = Float64Cast("1.5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)

	got, err = DurationCast("5m30s")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute+30*time.Second, got)

	got, err = StringsCast("host1, host2,host3")
	require.NoError(t, err)
	assert.Equal(t, []string{"host1", "host2", "host3"}, got)

	got, err = StringsCast(`"a,b",c`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a,b", "c"}, got)

	got, err = StringsCast("")
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)

	got, err = StringsCast([]string{"x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got)

	_, err = StringsCast(`a"b,c`)
	assert.ErrorIs(t, err, ErrCast)

	_, err = Float64Cast("fast")
	assert.ErrorIs(t, err, ErrCast)
}

func TestField_Modifiers(t *testing.T) {
	base := String(Length(1))
	extended := base.WithValidators(Email).WithDefault("a@b.co")

	assert.Len(t, base.Validators(), 1)
	assert.Len(t, extended.Validators(), 2)

	_, ok := base.Default()
	assert.False(t, ok)

	def, ok := extended.Default()
	assert.True(t, ok)
	assert.Equal(t, "a@b.co", def)
}
