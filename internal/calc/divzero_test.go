package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeDivisionByZero(t *testing.T) {
	tests := []struct {
		expr string
		want bool
	}{
		{expr: "1/0", want: true},
		{expr: "1 / 0", want: true},
		{expr: "(1/0)", want: true},
		{expr: "1/0+2", want: true},
		{expr: "1/0.0", want: true},
		{expr: "1/0.000 + 2", want: true},
		{expr: "1/(0)", want: true},
		{expr: "1/(000)", want: true},
		{expr: "1/( 0.00 )", want: true},
		{expr: "1/0.5", want: false},
		{expr: "1/0.001", want: false},
		{expr: "1/05", want: false},
		{expr: "1/(5-5)", want: false},
		{expr: "1/(0+1)", want: false},
		{expr: "1/.0", want: false},
		{expr: "10/2", want: false},
		{expr: "100", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeDivisionByZero(tt.expr))
		})
	}
}
