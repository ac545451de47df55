package services

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise-backend/internal/dto"
	"github.com/pennywise-app/pennywise-backend/internal/errs"
	"github.com/pennywise-app/pennywise-backend/internal/feed"
	"github.com/pennywise-app/pennywise-backend/internal/models"
	"github.com/pennywise-app/pennywise-backend/pkg/helpers"
)

type stubInvestmentStore struct {
	added []*models.Investment
	invs  []models.Investment

	updatedFields map[string]any
	calls         int
}

func (s *stubInvestmentStore) Add(_ context.Context, inv *models.Investment) (string, error) {
	s.calls++
	s.added = append(s.added, inv)
	return "inv-1", nil
}

func (s *stubInvestmentStore) ListAll(context.Context, string) ([]models.Investment, error) {
	s.calls++
	return s.invs, nil
}

func (s *stubInvestmentStore) Watch(context.Context, string) *feed.Feed[models.Investment] {
	f, _ := feed.New[models.Investment](func() {})
	return f
}

func (s *stubInvestmentStore) Update(_ context.Context, _, _ string, fields map[string]any) error {
	s.calls++
	s.updatedFields = fields
	return nil
}

func (s *stubInvestmentStore) Delete(context.Context, string, string) error {
	s.calls++
	return nil
}

func TestInvestmentCreateProjections(t *testing.T) {
	store := &stubInvestmentStore{}
	svc := NewInvestmentService(store)

	resp, err := svc.Create(helpers.TestCtx(), "user-1", dto.CreateInvestmentRequest{
		Name:      "FD 2026",
		Type:      "Fixed Deposit",
		Amount:    10000,
		Interest:  10,
		StartDate: "2025-01-15",
		Duration:  helpers.Ptr(12),
	})
	require.NoError(t, err)
	require.Len(t, store.added, 1)

	require.InDelta(t, 11000, resp.ExpectedReturn, 1e-9)
	require.NotNil(t, resp.MaturityDate)
	require.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *resp.MaturityDate)
	require.Equal(t, "text-blue-600 bg-blue-100", resp.TypeColor)
}

func TestInvestmentCreateOpenEnded(t *testing.T) {
	store := &stubInvestmentStore{}
	svc := NewInvestmentService(store)

	for name, duration := range map[string]*int{
		"nil duration":  nil,
		"zero duration": helpers.Ptr(0),
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := svc.Create(helpers.TestCtx(), "user-1", dto.CreateInvestmentRequest{
				Name:      "Gold stash",
				Type:      "Gold",
				Amount:    5000,
				Interest:  8,
				StartDate: "2025-01-01",
				Duration:  duration,
			})
			require.NoError(t, err)

			// Open-ended: no growth projected, no maturity date.
			require.Nil(t, resp.Duration)
			require.Equal(t, 5000.0, resp.ExpectedReturn)
			require.Nil(t, resp.MaturityDate)
		})
	}
}

func TestInvestmentCreateValidation(t *testing.T) {
	valid := dto.CreateInvestmentRequest{
		Name:      "Index fund",
		Type:      "Mutual Fund",
		Amount:    1000,
		Interest:  12,
		StartDate: "2025-02-01",
	}

	tests := []struct {
		name   string
		mutate func(*dto.CreateInvestmentRequest)
	}{
		{"missing name", func(r *dto.CreateInvestmentRequest) { r.Name = "" }},
		{"unknown type", func(r *dto.CreateInvestmentRequest) { r.Type = "Beanie Babies" }},
		{"zero amount", func(r *dto.CreateInvestmentRequest) { r.Amount = 0 }},
		{"negative interest", func(r *dto.CreateInvestmentRequest) { r.Interest = -1 }},
		{"missing start date", func(r *dto.CreateInvestmentRequest) { r.StartDate = "" }},
		{"negative duration", func(r *dto.CreateInvestmentRequest) { r.Duration = helpers.Ptr(-6) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubInvestmentStore{}
			svc := NewInvestmentService(store)

			req := valid
			tc.mutate(&req)
			_, err := svc.Create(helpers.TestCtx(), "user-1", req)

			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Zero(t, store.calls)
		})
	}
}

func TestInvestmentListUnknownTypeColor(t *testing.T) {
	svc := NewInvestmentService(&stubInvestmentStore{invs: []models.Investment{
		{ID: "i1", Type: "Treasury Notes", Amount: 100},
	}})

	out, err := svc.List(helpers.TestCtx(), "user-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "bg-gray-100 text-gray-700", out[0].TypeColor)
}

func TestInvestmentUpdateFields(t *testing.T) {
	store := &stubInvestmentStore{}
	svc := NewInvestmentService(store)

	err := svc.Update(helpers.TestCtx(), "user-1", "inv-1", dto.UpdateInvestmentRequest{
		Amount:   helpers.Ptr(2500.0),
		Interest: helpers.Ptr(9.5),
	})
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"amount":   2500.0,
		"interest": 9.5,
	}, store.updatedFields)
}

func TestInvestmentUpdateOpenEnded(t *testing.T) {
	store := &stubInvestmentStore{}
	svc := NewInvestmentService(store)

	// Zero duration on update clears the stored field, mirroring
	// create, so the record reads as open-ended rather than maturing
	// on its start date.
	err := svc.Update(helpers.TestCtx(), "user-1", "inv-1", dto.UpdateInvestmentRequest{
		Duration: helpers.Ptr(0),
	})
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"duration": firestore.Delete,
	}, store.updatedFields)

	err = svc.Update(helpers.TestCtx(), "user-1", "inv-1", dto.UpdateInvestmentRequest{
		Duration: helpers.Ptr(18),
	})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"duration": 18}, store.updatedFields)
}

func TestInvestmentUpdateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateInvestmentRequest
	}{
		{"empty name", dto.UpdateInvestmentRequest{Name: helpers.Ptr("")}},
		{"unknown type", dto.UpdateInvestmentRequest{Type: helpers.Ptr("Pogs")}},
		{"zero amount", dto.UpdateInvestmentRequest{Amount: helpers.Ptr(0.0)}},
		{"negative interest", dto.UpdateInvestmentRequest{Interest: helpers.Ptr(-2.0)}},
		{"negative duration", dto.UpdateInvestmentRequest{Duration: helpers.Ptr(-1)}},
		{"no fields", dto.UpdateInvestmentRequest{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubInvestmentStore{}
			svc := NewInvestmentService(store)

			err := svc.Update(helpers.TestCtx(), "user-1", "inv-1", tc.req)

			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Zero(t, store.calls)
		})
	}
}
