package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "whole amount", input: "1500", want: 1500},
		{name: "two decimal places", input: "1234.56", want: 1234.56},
		{name: "one decimal place", input: "10.5", want: 10.5},
		{name: "zero", input: "0", want: 0},
		{name: "zero with decimals", input: "0.00", want: 0},
		{name: "surrounding whitespace", input: "  42.10  ", want: 42.10},
		{name: "empty string", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "negative", input: "-10", wantErr: true},
		{name: "negative with decimals", input: "-0.01", wantErr: true},
		{name: "three decimal places", input: "10.001", wantErr: true},
		{name: "exponent hides sub-cent value", input: "1e-3", wantErr: true},
		{name: "uppercase exponent", input: "1E2", wantErr: true},
		{name: "hex float", input: "0x1p-2", wantErr: true},
		{name: "missing integer part", input: ".5", wantErr: true},
		{name: "trailing dot", input: "10.", wantErr: true},
		{name: "explicit plus sign", input: "+10", wantErr: true},
		{name: "not a number", input: "ten dollars", wantErr: true},
		{name: "nan", input: "NaN", wantErr: true},
		{name: "infinity", input: "Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1234.56", FormatAmount(1234.56))
	assert.Equal(t, "10.50", FormatAmount(10.5))
	assert.Equal(t, "0.00", FormatAmount(0))
}
