package rawpaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperation_Apply(t *testing.T) {
	dst := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	src := RGBA{R: 0.75, G: 0.25, B: 0, A: 1}

	assert.Equal(t, src, Replace.Apply(dst, src))
	assert.Equal(t, RGBA{R: 1.25, G: 0.75, B: 0.5, A: 2}, Add.Apply(dst, src))
	assert.Equal(t, RGBA{R: -0.25, G: 0.25, B: 0.5, A: 0}, Subtract.Apply(dst, src))
}

func TestOperation_AddSubtractReversible(t *testing.T) {
	dst := RGBA{R: 0.1, G: 0.2, B: 0.3, A: 0.4}
	src := RGBA{R: 3, G: 3, B: 3, A: 3}
	back := Subtract.Apply(Add.Apply(dst, src), src)
	assert.True(t, back.ApproxEqual(dst, 1e-6), "got %v", back)
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in      string
		want    Operation
		wantErr bool
	}{
		{"replace", Replace, false},
		{"", Replace, false},
		{"Add", Add, false},
		{" subtract ", Subtract, false},
		{"sub", Subtract, false},
		{"multiply", Replace, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOperation(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperation_Text(t *testing.T) {
	for _, op := range []Operation{Replace, Add, Subtract} {
		text, err := op.MarshalText()
		require.NoError(t, err)

		var back Operation
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, op, back)
	}

	_, err := Operation(9).MarshalText()
	assert.Error(t, err)
	assert.False(t, Operation(9).Valid())
	assert.Equal(t, "Operation(9)", Operation(9).String())
}
