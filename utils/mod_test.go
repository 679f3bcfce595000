package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex(nil, 0))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0, Clamp(-3, 0, 20))
	require.Equal(t, 20, Clamp(25, 0, 20))
	require.Equal(t, 7, Clamp(7, 0, 20))
	require.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
}
