package plot3d

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	testCases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "green", want: color.RGBA{R: 0, G: 128, B: 0, A: 255}},
		{in: " Red ", want: color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{in: "#00ff7f", want: color.RGBA{R: 0, G: 255, B: 127, A: 255}},
		{in: "#abc", want: color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 255}},
		{in: "", wantErr: true},
		{in: "greenish", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				assert.IsType(t, &InvalidInputError{}, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
