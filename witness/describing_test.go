package witness

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type port int

func (p port) String() string {
	return ":" + strconv.Itoa(int(p))
}

type endpoint struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
}

func TestContramap_IdentityLaw(t *testing.T) {
	t.Parallel()

	base := NewDescribing(func(e endpoint) string {
		return e.Host + ":" + strconv.Itoa(e.Port)
	})
	mapped := Contramap(base, Identity[endpoint]())

	for _, e := range []endpoint{{}, {"localhost", 8080}, {"db.internal", 5432}} {
		assert.Equal(t, base.Describe(e), mapped.Describe(e))
	}
}

func TestContramap_CompositionLaw(t *testing.T) {
	t.Parallel()

	base := Int()
	f := func(s string) int { return len(s) }
	g := func(e endpoint) string { return e.Host }

	stepwise := Contramap(Contramap(base, f), g)
	composed := Contramap(base, Compose(f, g))

	for _, e := range []endpoint{{}, {"localhost", 8080}, {"db.internal", 5432}} {
		assert.Equal(t, composed.Describe(e), stepwise.Describe(e))
	}

	assert.Equal(t, "9", stepwise.Describe(endpoint{Host: "localhost"}))
}

func TestContramap_LeavesBaseUntouched(t *testing.T) {
	t.Parallel()

	base := Quoted()
	upper := Contramap(base, strings.ToUpper)

	assert.Equal(t, `"HELLO"`, upper.Describe("hello"))
	assert.Equal(t, `"hello"`, base.Describe("hello"))
}

func TestMultipleDescribingWitnesses(t *testing.T) {
	t.Parallel()

	e := endpoint{Host: "localhost", Port: 8080}

	tests := []struct {
		name     string
		witness  Describing[endpoint]
		expected string
	}{
		{name: "sprint", witness: Sprint[endpoint](), expected: "{localhost 8080}"},
		{name: "json", witness: JSON[endpoint](), expected: `{"host":"localhost","port":8080}`},
		{name: "yaml", witness: YAML[endpoint](), expected: "host: localhost\nport: 8080"},
		{name: "tagged", witness: Tagged("debug", JSON[endpoint]()), expected: `[debug] {"host":"localhost","port":8080}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.witness.Describe(e))
		})
	}
}

func TestStandardDescribing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2", Int().Describe(2))
	assert.Equal(t, `"a\"b"`, Quoted().Describe(`a"b`))
	assert.Equal(t, ":8080", Stringer[port]().Describe(8080))
}

func TestJSON_MarshalFailure(t *testing.T) {
	t.Parallel()

	out := JSON[chan int]().Describe(make(chan int))
	assert.True(t, strings.HasPrefix(out, "%!json("), out)
}

func TestDescribing_PanicsPropagate(t *testing.T) {
	t.Parallel()

	partial := NewDescribing(func(xs []string) string {
		return xs[0]
	})
	derived := Contramap(partial, strings.Fields)

	assert.Equal(t, "a", derived.Describe("a b"))
	assert.Panics(t, func() {
		derived.Describe("")
	})
}
