package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/wedding/internal/wedding/domain"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewRSVP(t *testing.T) {
	t.Parallel()

	r, err := domain.NewRSVP("inv-1", domain.Attendance{
		IsAttending:         true,
		AdultsAttending:     1,
		ChildrenAttending:   1,
		DietaryRequirements: ptr("  vegan "),
	}, now)
	require.NoError(t, err)

	require.NotEmpty(t, r.ID)
	require.Equal(t, "inv-1", r.InviteID)
	require.Equal(t, "vegan", *r.DietaryRequirements)
	require.Equal(t, now, r.RespondedAt)
	require.Equal(t, 2, r.Attendance().Headcount())
}

func TestNewRSVP_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inviteID string
		a        domain.Attendance
		msg      string
	}{
		{"missing invite", " ", domain.Attendance{IsAttending: false}, "Invite ID is required"},
		{"negative adults", "i", domain.Attendance{AdultsAttending: -1}, "Attendee counts cannot be negative"},
		{"negative children", "i", domain.Attendance{ChildrenAttending: -1}, "Attendee counts cannot be negative"},
		{"attending nobody", "i", domain.Attendance{IsAttending: true}, "At least one person must be attending"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewRSVP(tt.inviteID, tt.a, now)
			requireValidation(t, err, tt.msg)
		})
	}
}

func TestRSVP_UpdateAttendanceKeepsIdentity(t *testing.T) {
	r, err := domain.NewRSVP("inv-1", domain.Attendance{IsAttending: true, AdultsAttending: 2, DietaryRequirements: ptr("nuts")}, now)
	require.NoError(t, err)
	id, created := r.ID, r.CreatedAt

	later := now.Add(24 * time.Hour)
	require.NoError(t, r.UpdateAttendance(domain.Attendance{IsAttending: false}, later))

	require.Equal(t, id, r.ID)
	require.Equal(t, created, r.CreatedAt)
	require.False(t, r.IsAttending)
	require.Nil(t, r.DietaryRequirements)
	require.Equal(t, later, r.RespondedAt)
	require.Equal(t, later, r.UpdatedAt)
	require.Zero(t, r.Attendance().Headcount())

	requireValidation(t, r.UpdateAttendance(domain.Attendance{IsAttending: true}, later), "At least one person must be attending")
}

func TestDecliningKeepsCounts(t *testing.T) {
	r, err := domain.NewRSVP("inv-1", domain.Attendance{IsAttending: false, AdultsAttending: 2}, now)
	require.NoError(t, err)
	require.Equal(t, 2, r.AdultsAttending)
	require.Zero(t, r.Attendance().Headcount())
}
