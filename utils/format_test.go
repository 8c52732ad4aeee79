package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "0 DA"},
		{500, "500 DA"},
		{2500, "2 500 DA"},
		{12500, "12 500 DA"},
		{1250000, "1 250 000 DA"},
		{-3000, "-3 000 DA"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatAmount(tc.amount))
	}
}
