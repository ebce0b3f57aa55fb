// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envcfg

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"testing"

	"github.com/z5labs/envcfg/env"
	"github.com/z5labs/envcfg/scalar"

	"github.com/stretchr/testify/require"
)

func TestStore_Initialize(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if a hinted value overflows", func(t *testing.T) {
			s := New(Source(env.Map{"TEST_INT": "2147483648"}))

			err := s.Initialize(context.Background(), Declarations{
				"TEST_INT": Hint(scalar.Int32),
			})
			require.ErrorIs(t, err, ErrInitializationFailed)
			require.ErrorIs(t, err, scalar.ErrOverflow)

			var ierr *InitializationError
			require.True(t, errors.As(err, &ierr))
			require.Equal(t, "TEST_INT", ierr.Name)
		})

		t.Run("if a hinted int64 overflows", func(t *testing.T) {
			s := New(Source(env.Map{"TEST_LLONG": "9223372036854775808"}))

			err := s.Initialize(context.Background(), Declarations{
				"TEST_LLONG": Hint(scalar.Int64),
			})
			require.ErrorIs(t, err, scalar.ErrOverflow)
		})

		t.Run("if a hinted value is not numeric", func(t *testing.T) {
			s := New(Source(env.Map{"TEST_INT": "not_a_number"}))

			err := s.Initialize(context.Background(), Declarations{
				"TEST_INT": Hint(scalar.Int32),
			})
			require.ErrorIs(t, err, ErrInitializationFailed)
			require.ErrorIs(t, err, scalar.ErrInvalidFormat)
		})

		t.Run("if a hinted bool is not a bool literal", func(t *testing.T) {
			s := New(Source(env.Map{"TEST_BOOL": "1"}))

			err := s.Initialize(context.Background(), Declarations{
				"TEST_BOOL": Hint(scalar.Bool),
			})
			require.ErrorIs(t, err, scalar.ErrInvalidFormat)
		})

		t.Run("if a declaration is the zero value", func(t *testing.T) {
			s := New(Source(env.Map{}))

			err := s.Initialize(context.Background(), Declarations{
				"TEST": {},
			})
			require.ErrorIs(t, err, ErrInitializationFailed)
			require.ErrorIs(t, err, ErrInvalidDeclaration)
		})
	})

	t.Run("will not commit any entry of the batch", func(t *testing.T) {
		t.Run("if one hinted value fails to parse", func(t *testing.T) {
			s := New(Source(env.Map{
				"A_VALID":   "1",
				"B_INVALID": "3.14",
				"C_VALID":   "2",
			}))

			err := s.Initialize(context.Background(), Declarations{
				"A_VALID":   Hint(scalar.Int32),
				"B_INVALID": Hint(scalar.Int32),
				"C_VALID":   Hint(scalar.Int32),
			})
			require.ErrorIs(t, err, ErrInitializationFailed)
			require.True(t, s.Empty())
			require.False(t, s.HasValue("A_VALID"))
			require.False(t, IsType[int32](s, "B_INVALID"))

			_, err = Get[int32](s, "B_INVALID")
			require.ErrorIs(t, err, ErrNotFound)
		})

		t.Run("if a previous batch was already committed", func(t *testing.T) {
			src := env.Map{"TEST_INT": "1"}
			s := New(Source(src))

			err := s.Initialize(context.Background(), Declarations{
				"TEST_INT": Hint(scalar.Int32),
			})
			require.NoError(t, err)

			src["TEST_INT"] = "invalid"
			err = s.Initialize(context.Background(), Declarations{
				"TEST_INT": Hint(scalar.Int32),
			})
			require.Error(t, err)

			n, err := Get[int32](s, "TEST_INT")
			require.NoError(t, err)
			require.Equal(t, int32(1), n)
		})
	})

	t.Run("will resolve the live value", func(t *testing.T) {
		t.Run("if it is valid for the hinted kind", func(t *testing.T) {
			s := New(Source(env.Map{"TEST_INT": "12345"}))

			err := s.Initialize(context.Background(), Declarations{
				"TEST_INT": Hint(scalar.Int32),
			})
			require.NoError(t, err)

			n, err := Get[int32](s, "TEST_INT")
			require.NoError(t, err)
			require.Equal(t, int32(12345), n)
			require.True(t, IsType[int32](s, "TEST_INT"))
			require.False(t, IsType[int64](s, "TEST_INT"))
		})

		t.Run("if it sits on the boundaries of the hinted kind", func(t *testing.T) {
			src := env.Map{"TEST_INT": strconv.Itoa(math.MaxInt32)}
			s := New(Source(src))

			err := s.Initialize(context.Background(), Declarations{"TEST_INT": Hint(scalar.Int32)})
			require.NoError(t, err)
			require.Equal(t, int32(math.MaxInt32), mustGet[int32](t, s, "TEST_INT"))

			src["TEST_INT"] = strconv.Itoa(math.MinInt32)
			err = s.Initialize(context.Background(), Declarations{"TEST_INT": Hint(scalar.Int32)})
			require.NoError(t, err)
			require.Equal(t, int32(math.MinInt32), mustGet[int32](t, s, "TEST_INT"))
		})

		t.Run("if it overrides a default of the same kind", func(t *testing.T) {
			s := New(Source(env.Map{"PORT": "9090"}))

			err := s.Initialize(context.Background(), Declarations{
				"PORT": Default[int32](8080),
			})
			require.NoError(t, err)
			require.Equal(t, int32(9090), mustGet[int32](t, s, "PORT"))
		})

		t.Run("for every supported kind", func(t *testing.T) {
			s := New(Source(env.Map{
				"TEST_INT":    "42",
				"TEST_LLONG":  "9223372036854775807",
				"TEST_DOUBLE": "3.1415",
				"TEST_BOOL":   "TRUE",
				"TEST_STRING": "hello world",
			}))

			err := s.Initialize(context.Background(), Declarations{
				"TEST_INT":    Hint(scalar.Int32),
				"TEST_LLONG":  Hint(scalar.Int64),
				"TEST_DOUBLE": Hint(scalar.Float64),
				"TEST_BOOL":   Hint(scalar.Bool),
				"TEST_STRING": Hint(scalar.Text),
			})
			require.NoError(t, err)
			require.Equal(t, int32(42), mustGet[int32](t, s, "TEST_INT"))
			require.Equal(t, int64(math.MaxInt64), mustGet[int64](t, s, "TEST_LLONG"))
			require.InDelta(t, 3.1415, mustGet[float64](t, s, "TEST_DOUBLE"), 1e-12)
			require.True(t, mustGet[bool](t, s, "TEST_BOOL"))
			require.Equal(t, "hello world", mustGet[string](t, s, "TEST_STRING"))
		})
	})

	t.Run("will resolve no value", func(t *testing.T) {
		t.Run("if a hinted variable is absent", func(t *testing.T) {
			s := New(Source(env.Map{}))

			err := s.Initialize(context.Background(), Declarations{
				"MISSING_INT": Hint(scalar.Int32),
			})
			require.NoError(t, err)
			require.False(t, s.Empty())
			require.False(t, s.HasValue("MISSING_INT"))

			_, err = Get[int32](s, "MISSING_INT")
			require.ErrorIs(t, err, ErrNoValue)
		})

		t.Run("if a hinted variable is empty", func(t *testing.T) {
			s := New(Source(env.Map{"TEST_TYPE": ""}))

			err := s.Initialize(context.Background(), Declarations{
				"TEST_TYPE": Hint(scalar.Int32),
			})
			require.NoError(t, err)
			require.False(t, s.HasValue("TEST_TYPE"))
		})

		t.Run("if the live value does not parse to the kind of the default", func(t *testing.T) {
			s := New(Source(env.Map{"PORT": "not_a_port"}))

			err := s.Initialize(context.Background(), Declarations{
				"PORT": Default[int32](8080),
			})
			require.NoError(t, err)
			require.False(t, s.HasValue("PORT"))

			_, ok := GetOptional[int32](s, "PORT")
			require.False(t, ok)
		})
	})

	t.Run("will resolve the default value", func(t *testing.T) {
		t.Run("if the variable is absent", func(t *testing.T) {
			s := New(Source(env.Map{}))

			err := s.Initialize(context.Background(), Declarations{
				"INT_DEF":    Default[int32](42),
				"LLONG_DEF":  Default[int64](10000000000),
				"DOUBLE_DEF": Default(3.14),
				"BOOL_DEF":   Default(true),
				"STRING_DEF": Default("default"),
			})
			require.NoError(t, err)

			require.True(t, IsType[int32](s, "INT_DEF"))
			require.True(t, IsType[int64](s, "LLONG_DEF"))
			require.True(t, IsType[float64](s, "DOUBLE_DEF"))
			require.True(t, IsType[bool](s, "BOOL_DEF"))
			require.True(t, IsType[string](s, "STRING_DEF"))

			require.Equal(t, int32(42), mustGet[int32](t, s, "INT_DEF"))
			require.Equal(t, int64(10000000000), mustGet[int64](t, s, "LLONG_DEF"))
			require.Equal(t, 3.14, mustGet[float64](t, s, "DOUBLE_DEF"))
			require.True(t, mustGet[bool](t, s, "BOOL_DEF"))
			require.Equal(t, "default", mustGet[string](t, s, "STRING_DEF"))
		})

		t.Run("if the variable is empty", func(t *testing.T) {
			s := New(Source(env.Map{"LOG_LEVEL": ""}))

			err := s.Initialize(context.Background(), Declarations{
				"LOG_LEVEL": Default("info"),
			})
			require.NoError(t, err)
			require.Equal(t, "info", mustGet[string](t, s, "LOG_LEVEL"))
		})
	})

	t.Run("will only replace the names of the new batch", func(t *testing.T) {
		s := New(Source(env.Map{"A": "1", "B": "2"}))

		err := s.Initialize(context.Background(), Declarations{
			"A": Hint(scalar.Int32),
			"B": Hint(scalar.Int32),
		})
		require.NoError(t, err)

		err = s.Initialize(context.Background(), Declarations{
			"B": Hint(scalar.Text),
			"C": Default(true),
		})
		require.NoError(t, err)

		require.Equal(t, 3, s.Len())
		require.Equal(t, int32(1), mustGet[int32](t, s, "A"))
		require.Equal(t, "2", mustGet[string](t, s, "B"))
		require.True(t, mustGet[bool](t, s, "C"))
	})

	t.Run("will log every resolved name", func(t *testing.T) {
		var buf bytes.Buffer
		h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		s := New(
			Source(env.Map{"PORT": "9090"}),
			LogHandler(h),
		)

		err := s.Initialize(context.Background(), Declarations{
			"PORT": Default[int32](8080),
		})
		require.NoError(t, err)
		require.Contains(t, buf.String(), `"name":"PORT"`)
		require.Contains(t, buf.String(), `"source":"env"`)
		require.Contains(t, buf.String(), `"value":"9090"`)
	})
}

func TestStore_Empty(t *testing.T) {
	s := New(Source(env.Map{}))
	require.True(t, s.Empty())

	err := s.Initialize(context.Background(), Declarations{
		"ANYTHING": Hint(scalar.Text),
	})
	require.NoError(t, err)
	require.False(t, s.Empty())
}

func mustGet[T scalar.Type](t *testing.T, s *Store, name string) T {
	t.Helper()

	v, err := Get[T](s, name)
	require.NoError(t, err)
	return v
}
