package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMapLink(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     string
	}{
		{
			name:     "coordinates embedded in text",
			location: "Near the lake, Lat: 12.9, Lng: 77.6, second gate",
			want:     "https://www.google.com/maps?q=12.9,77.6",
		},
		{
			name:     "bare coordinate pair",
			location: "Lat: 27.7172, Lng: 85.3240",
			want:     "https://www.google.com/maps?q=27.7172,85.3240",
		},
		{
			name:     "negative coordinates",
			location: "Lat: -33.86, Lng: 151.2",
			want:     "https://www.google.com/maps?q=-33.86,151.2",
		},
		{
			name:     "integer coordinates",
			location: "Lat: 12, Lng: 77",
			want:     "https://www.google.com/maps?q=12,77",
		},
		{
			name:     "plain address yields no link",
			location: "Baneshwor, Kathmandu",
			want:     "",
		},
		{
			name:     "empty location",
			location: "",
			want:     "",
		},
		{
			name:     "lat without lng",
			location: "Lat: 12.9, somewhere",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildMapLink(tt.location))
		})
	}
}
