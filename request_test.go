package argparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accumulateArgs struct {
	Numbers []int    `arg:"numbers N,min=1,positional" help:"numbers"`
	Sum     bool     `arg:"sum s" help:"add args"`
	Mult    bool     `arg:"mult" help:"multiply args" default:"true"`
	Label   string   `arg:"label l" default:"total" validate:"alpha"`
	Tags    []string `arg:"tag t" help:"tags"`
	Ignored int
}

func TestRequest(t *testing.T) {
	var a accumulateArgs
	p := NewParser("accumulate")
	require.NoError(t, p.Request(&a))

	names := make([]string, 0, len(p.Options()))
	for _, o := range p.Options() {
		names = append(names, o.LongName())
	}
	assert.Equal(t, []string{"numbers", "sum", "mult", "label", "tag"}, names, "declaration order")

	numbers, err := p.Lookup("numbers")
	require.NoError(t, err)
	assert.Equal(t, 'N', numbers.ShortName())
	assert.Equal(t, Integer, numbers.Type())
	assert.True(t, numbers.IsMultiValue())
	assert.True(t, numbers.IsPositional())
	assert.Equal(t, "numbers", numbers.Description())

	mult, err := p.Lookup("mult")
	require.NoError(t, err)
	assert.Equal(t, NoShortName, mult.ShortName())

	result, err := p.Parse([]string{"accumulate", "-s", "-t=x", "--tag=y", "3", "4"})
	require.NoError(t, err)
	assert.Equal(t, Success, result)
	assert.Equal(t, accumulateArgs{
		Numbers: []int{3, 4},
		Sum:     true,
		Mult:    true,
		Label:   "total",
		Tags:    []string{"x", "y"},
	}, a)
}

func TestRequestInvalid(t *testing.T) {
	var a accumulateArgs
	p := NewParser("accumulate")
	require.NoError(t, p.Request(&a))

	result, err := p.Parse([]string{"accumulate", "--tag=x", "--label=l2", "3", "4"})
	require.NoError(t, err)
	assert.Equal(t, Invalid, result, "label is not alpha")
	assert.Empty(t, a.Numbers, "nothing stored")

	result, err = p.Parse([]string{"accumulate", "--tag=x", "3"})
	require.NoError(t, err)
	assert.Equal(t, Invalid, result, "one number is not more than min=1")
}

func TestRequestErrors(t *testing.T) {
	var notStruct int
	cases := []struct {
		name  string
		model interface{}
		error error
	}{
		{"nil", nil, ErrTypeMismatch},
		{"not a pointer", accumulateArgs{}, ErrTypeMismatch},
		{"not a struct", &notStruct, ErrTypeMismatch},
		{"bad type", &struct {
			F float64 `arg:"float"`
		}{}, ErrTypeMismatch},
		{"no long name", &struct {
			F int `arg:"f"`
		}{}, ErrUnsupportedOperation},
		{"two long names", &struct {
			F int `arg:"foo bar"`
		}{}, ErrNameCollision},
		{"min on scalar", &struct {
			F int `arg:"foo,min=2"`
		}{}, ErrTypeMismatch},
		{"bad default", &struct {
			F int `arg:"foo" default:"many"`
		}{}, ErrTypeMismatch},
		{"collision", &struct {
			F int    `arg:"foo"`
			G string `arg:"foo"`
		}{}, ErrNameCollision},
	}
	for _, tc := range cases {
		p := NewParser("prog")
		err := p.Request(tc.model)
		assert.ErrorIs(t, err, tc.error, tc.name)
	}
}
