package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Physio Rehab", "physio-rehab"},
		{"  Mental Wellness  ", "mental-wellness"},
		{"Detox & Recovery 101", "detox--recovery-101"},
		{"already-slugged", "already-slugged"},
		{"UPPER CASE", "upper-case"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Slugify(tc.title), tc.title)
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("")
	require.NoError(t, err)
	require.Equal(t, DefaultRole, role)

	role, err = ParseRole("therapist")
	require.NoError(t, err)
	require.Equal(t, RoleTherapist, role)

	_, err = ParseRole("superuser")
	require.Error(t, err)
}
