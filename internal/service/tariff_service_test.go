package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
	"parking_transit/internal/repository/mocks"

	"go.uber.org/mock/gomock"
)

func TestTariffService_SelectAt(t *testing.T) {
	t.Run("derives band and day type from the instant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTariffRepository(ctrl)
		svc := NewTariffService(repo)

		// Saturday 21:30 -> NIGHT / WEEKEND
		at := time.Date(2024, 6, 1, 21, 30, 0, 0, time.UTC)
		want := &domain.Tariff{ID: 7, Rate: 1.5, TimeBand: domain.BandNight, DayType: domain.DayWeekend}
		repo.EXPECT().
			FindForDimensions(gomock.Any(), 1, 2, domain.BandNight, domain.DayWeekend).
			Return(want, nil)

		got, err := svc.SelectAt(context.Background(), 1, 2, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != want.ID {
			t.Errorf("tariff id = %d, want %d", got.ID, want.ID)
		}
	})

	t.Run("repeated calls resolve the same tariff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTariffRepository(ctrl)
		svc := NewTariffService(repo)

		at := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
		want := &domain.Tariff{ID: 3, Rate: 2.0, TimeBand: domain.BandDay, DayType: domain.DayWeekday}
		repo.EXPECT().
			FindForDimensions(gomock.Any(), 1, 1, domain.BandDay, domain.DayWeekday).
			Return(want, nil).
			Times(2)

		for i := 0; i < 2; i++ {
			got, err := svc.SelectAt(context.Background(), 1, 1, at)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != 3 {
				t.Errorf("tariff id = %d, want 3", got.ID)
			}
		}
	})

	t.Run("missing rule is tariff-unavailable, not zero cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTariffRepository(ctrl)
		svc := NewTariffService(repo)

		repo.EXPECT().
			FindForDimensions(gomock.Any(), 1, 1, domain.BandDay, domain.DayWeekend).
			Return(nil, repository.ErrNotFound)

		// Saturday 09:00 with only weekday rules defined
		_, err := svc.SelectAt(context.Background(), 1, 1, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
		if !errors.Is(err, ErrTariffUnavailable) {
			t.Errorf("expected ErrTariffUnavailable, got %v", err)
		}
	})

	t.Run("store failure propagates wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTariffRepository(ctrl)
		svc := NewTariffService(repo)

		storeErr := errors.New("connection reset")
		repo.EXPECT().
			FindForDimensions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, storeErr)

		_, err := svc.SelectAt(context.Background(), 1, 1, time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))
		if !errors.Is(err, storeErr) {
			t.Errorf("expected wrapped store error, got %v", err)
		}
		if errors.Is(err, ErrTariffUnavailable) {
			t.Error("store failure must not be reported as tariff-unavailable")
		}
	})
}
