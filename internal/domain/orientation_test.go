package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTransformID_RoundTrip(t *testing.T) {
	for _, o := range Orientations {
		got, ok := FromTransformID(o.TransformID())
		require.True(t, ok, o.String())
		assert.Equal(t, o, got)
	}
}

func TestFromTransformID_90IsLeftUp(t *testing.T) {
	got, ok := FromTransformID("90")
	require.True(t, ok)
	assert.Equal(t, OrientationLeftUp, got)
}

func TestFromTransformID_Unknown(t *testing.T) {
	got, ok := FromTransformID("flipped-90")
	assert.False(t, ok)
	assert.Equal(t, OrientationUnknown, got)
}

func TestFromKeyword_RoundTrip(t *testing.T) {
	for _, o := range Orientations {
		got, ok := FromKeyword(o.Keyword())
		require.True(t, ok, o.String())
		assert.Equal(t, o, got)
	}
}

func TestMatrixArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"-1", "0", "1", "0", "-1", "1", "0", "0", "1"},
		OrientationInverted.Matrix().Args())
	assert.Equal(t,
		[]string{"0", "1", "0", "-1", "0", "1", "0", "0", "1"},
		OrientationRightUp.Matrix().Args())
}

func TestParseBackendKind(t *testing.T) {
	tests := []struct {
		in      string
		want    BackendKind
		wantErr bool
	}{
		{"auto", BackendAuto, false},
		{"sway", BackendSway, false},
		{"x11", BackendX11, false},
		{"wayland", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBackendKind(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownBackendKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "left-up", OrientationLeftUp.String())
	assert.Equal(t, "unknown", OrientationUnknown.String())
}
