package envutil_test

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"testing"

	"github.com/amp-labs/amp-witness/envutil"
	"github.com/amp-labs/amp-witness/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCustomMissing = errors.New("custom missing")

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestString(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		t.Setenv("WITNESS_TEST_STRING", "hello")

		value, err := envutil.String("WITNESS_TEST_STRING").Value()
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := envutil.String("WITNESS_TEST_STRING_MISSING").Value()
		require.ErrorIs(t, err, envutil.ErrEnvVarMissing)
	})

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		value, err := envutil.String("WITNESS_TEST_STRING_MISSING", envutil.Default("dflt")).Value()
		require.NoError(t, err)
		assert.Equal(t, "dflt", value)
	})

	t.Run("custom missing error", func(t *testing.T) {
		t.Parallel()

		_, err := envutil.String("WITNESS_TEST_STRING_MISSING",
			envutil.IfMissing[string](errCustomMissing)).Value()
		require.ErrorIs(t, err, errCustomMissing)
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
	})

	t.Run("fallback", func(t *testing.T) {
		t.Setenv("WITNESS_TEST_STRING_FALLBACK", "from fallback")

		value := envutil.String("WITNESS_TEST_STRING_MISSING",
			envutil.Fallback(envutil.String("WITNESS_TEST_STRING_FALLBACK"))).ValueOrPanic()
		assert.Equal(t, "from fallback", value)
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestBoolAndInt(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		t.Setenv("WITNESS_TEST_BOOL", "true")

		assert.True(t, envutil.Bool("WITNESS_TEST_BOOL").ValueOrElse(false))
	})

	t.Run("bad bool falls back", func(t *testing.T) {
		t.Setenv("WITNESS_TEST_BOOL_BAD", "maybe")

		reader := envutil.Bool("WITNESS_TEST_BOOL_BAD")
		assert.True(t, reader.HasError())
		assert.False(t, reader.HasValue())
		assert.True(t, reader.ValueOrElse(true))
	})

	t.Run("int", func(t *testing.T) {
		t.Setenv("WITNESS_TEST_INT", "42")

		value, err := envutil.Int[int]("WITNESS_TEST_INT").Value()
		require.NoError(t, err)
		assert.Equal(t, 42, value)
	})

	t.Run("int validate", func(t *testing.T) {
		t.Setenv("WITNESS_TEST_INT_NEG", "-3")

		_, err := envutil.Int[int]("WITNESS_TEST_INT_NEG", envutil.Validate(func(v int) error {
			_, err := xform.Positive(v)

			return err
		})).Value()
		require.ErrorIs(t, err, xform.ErrNonPositive)
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestPortAndLevel(t *testing.T) {
	t.Run("port", func(t *testing.T) {
		t.Setenv("WITNESS_TEST_PORT", " 8080 ")

		value, err := envutil.Port("WITNESS_TEST_PORT").Value()
		require.NoError(t, err)
		assert.Equal(t, uint16(8080), value)
	})

	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("WITNESS_TEST_PORT_BAD", "70000")

		_, err := envutil.Port("WITNESS_TEST_PORT_BAD").Value()
		require.ErrorIs(t, err, xform.ErrBadPort)
	})

	t.Run("level ignores case", func(t *testing.T) {
		t.Setenv("WITNESS_TEST_LEVEL", " WARN ")

		value, err := envutil.SlogLevel("WITNESS_TEST_LEVEL").Value()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelWarn, value)
	})
}

func TestReaderString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "K=v", envutil.NewReader("K", true, nil, "v").String())
	assert.Equal(t, "K=<not set>", envutil.NewReader("K", false, nil, "").String())
	assert.Equal(t, "K=<error: custom missing>", envutil.NewReader("K", true, errCustomMissing, "").String())
}

func TestMapSkipsAbsentValues(t *testing.T) {
	t.Parallel()

	called := false
	mapped := envutil.Map(envutil.NewReader("K", false, nil, ""), func(s string) (int, error) {
		called = true

		return len(s), nil
	})

	assert.False(t, called)
	assert.False(t, mapped.HasValue())
	assert.Equal(t, "K", mapped.Key())
}

func TestValueOrFatal(t *testing.T) { //nolint:paralleltest
	t.Setenv("WITNESS_TEST_FATAL", "7")

	assert.Equal(t, 7, envutil.Int[int]("WITNESS_TEST_FATAL").ValueOrFatal())
}

func TestValueOrFatal_ExitsOnError(t *testing.T) {
	if os.Getenv("WITNESS_TEST_FATAL_CHILD") == "1" {
		envutil.String("WITNESS_TEST_FATAL_MISSING").ValueOrFatal()

		return
	}

	t.Parallel()

	cmd := exec.Command(os.Args[0], "-test.run=^TestValueOrFatal_ExitsOnError$") //nolint:gosec
	cmd.Env = append(os.Environ(), "WITNESS_TEST_FATAL_CHILD=1")

	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
}
