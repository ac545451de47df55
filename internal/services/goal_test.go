package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise-backend/internal/dto"
	"github.com/pennywise-app/pennywise-backend/internal/errs"
	"github.com/pennywise-app/pennywise-backend/internal/feed"
	"github.com/pennywise-app/pennywise-backend/internal/models"
	"github.com/pennywise-app/pennywise-backend/pkg/helpers"
)

type stubGoalStore struct {
	added []*models.Goal
	goals []models.Goal

	updatedFields map[string]any
	calls         int
}

func (s *stubGoalStore) Add(_ context.Context, g *models.Goal) (string, error) {
	s.calls++
	s.added = append(s.added, g)
	return "goal-1", nil
}

func (s *stubGoalStore) ListAll(context.Context, string) ([]models.Goal, error) {
	s.calls++
	return s.goals, nil
}

func (s *stubGoalStore) Watch(context.Context, string) *feed.Feed[models.Goal] {
	f, _ := feed.New[models.Goal](func() {})
	return f
}

func (s *stubGoalStore) Update(_ context.Context, _, _ string, fields map[string]any) error {
	s.calls++
	s.updatedFields = fields
	return nil
}

func (s *stubGoalStore) Delete(context.Context, string, string) error {
	s.calls++
	return nil
}

func TestGoalCreateComputesProgress(t *testing.T) {
	store := &stubGoalStore{}
	svc := NewGoalService(store)

	resp, err := svc.Create(helpers.TestCtx(), "user-1", dto.CreateGoalRequest{
		Name:         "Emergency fund",
		TargetAmount: 1000,
		CurrentSaved: 250,
		TargetDate:   "2026-12-31",
		Priority:     models.PriorityHigh,
	})
	require.NoError(t, err)
	require.Len(t, store.added, 1)

	require.Equal(t, "user-1", resp.UserID)
	require.Equal(t, 25.0, resp.Progress)
	require.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), resp.TargetDate)
}

func TestGoalCreateValidation(t *testing.T) {
	valid := dto.CreateGoalRequest{
		Name:         "Trip",
		TargetAmount: 500,
		CurrentSaved: 0,
		TargetDate:   "2026-06-01",
		Priority:     models.PriorityLow,
	}

	tests := []struct {
		name   string
		mutate func(*dto.CreateGoalRequest)
	}{
		{"missing name", func(r *dto.CreateGoalRequest) { r.Name = "" }},
		{"zero target", func(r *dto.CreateGoalRequest) { r.TargetAmount = 0 }},
		{"negative saved", func(r *dto.CreateGoalRequest) { r.CurrentSaved = -1 }},
		{"bad priority", func(r *dto.CreateGoalRequest) { r.Priority = "urgent" }},
		{"missing target date", func(r *dto.CreateGoalRequest) { r.TargetDate = "" }},
		{"bad target date", func(r *dto.CreateGoalRequest) { r.TargetDate = "soon" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubGoalStore{}
			svc := NewGoalService(store)

			req := valid
			tc.mutate(&req)
			_, err := svc.Create(helpers.TestCtx(), "user-1", req)

			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Zero(t, store.calls)
		})
	}
}

func TestGoalListAttachesProgress(t *testing.T) {
	svc := NewGoalService(&stubGoalStore{goals: []models.Goal{
		{ID: "g1", TargetAmount: 200, CurrentSaved: 100},
		{ID: "g2", TargetAmount: 100, CurrentSaved: 300}, // overfunded caps at 100
	}})

	out, err := svc.List(helpers.TestCtx(), "user-1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, 50.0, out[0].Progress)
	require.Equal(t, 100.0, out[1].Progress)
}

func TestGoalUpdateFields(t *testing.T) {
	store := &stubGoalStore{}
	svc := NewGoalService(store)

	err := svc.Update(helpers.TestCtx(), "user-1", "goal-1", dto.UpdateGoalRequest{
		CurrentSaved: helpers.Ptr(600.0),
		Priority:     helpers.Ptr(models.PriorityMedium),
	})
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"currentSaved": 600.0,
		"priority":     models.PriorityMedium,
	}, store.updatedFields)
}

func TestGoalUpdateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateGoalRequest
	}{
		{"empty name", dto.UpdateGoalRequest{Name: helpers.Ptr("")}},
		{"zero target", dto.UpdateGoalRequest{TargetAmount: helpers.Ptr(0.0)}},
		{"negative saved", dto.UpdateGoalRequest{CurrentSaved: helpers.Ptr(-1.0)}},
		{"bad priority", dto.UpdateGoalRequest{Priority: helpers.Ptr("asap")}},
		{"no fields", dto.UpdateGoalRequest{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubGoalStore{}
			svc := NewGoalService(store)

			err := svc.Update(helpers.TestCtx(), "user-1", "goal-1", tc.req)

			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Zero(t, store.calls)
		})
	}
}
