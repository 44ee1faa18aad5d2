package service

import (
	"context"
	"errors"
	"testing"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
	"parking_transit/internal/repository/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogService_CreateTariff(t *testing.T) {
	dto := domain.TariffDTO{LotID: 1, VehicleTypeID: 1, Rate: 2.0, TimeBand: "DAY", DayType: "WEEKDAY"}

	t.Run("creates after checking lot and vehicle type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lots := mocks.NewMockLotRepository(ctrl)
		gates := mocks.NewMockGateRepository(ctrl)
		types := mocks.NewMockVehicleTypeRepository(ctrl)
		tariffs := mocks.NewMockTariffRepository(ctrl)
		svc := NewCatalogService(lots, gates, types, tariffs)

		lots.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Lot{ID: 1, Capacity: 10}, nil)
		types.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.VehicleType{ID: 1, Name: "car"}, nil)
		tariffs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tf *domain.Tariff) (*domain.Tariff, error) {
				if tf.TimeBand != domain.BandDay || tf.DayType != domain.DayWeekday {
					t.Errorf("unexpected tariff dimensions: %+v", tf)
				}
				tf.ID = 1
				return tf, nil
			})

		tariff, err := svc.CreateTariff(context.Background(), dto)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tariff.ID != 1 {
			t.Errorf("tariff id = %d, want 1", tariff.ID)
		}
	})

	t.Run("duplicate dimensions conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lots := mocks.NewMockLotRepository(ctrl)
		gates := mocks.NewMockGateRepository(ctrl)
		types := mocks.NewMockVehicleTypeRepository(ctrl)
		tariffs := mocks.NewMockTariffRepository(ctrl)
		svc := NewCatalogService(lots, gates, types, tariffs)

		lots.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Lot{ID: 1, Capacity: 10}, nil)
		types.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.VehicleType{ID: 1, Name: "car"}, nil)
		tariffs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repository.ErrDuplicateEntry)

		_, err := svc.CreateTariff(context.Background(), dto)
		if !errors.Is(err, repository.ErrDuplicateEntry) {
			t.Errorf("expected ErrDuplicateEntry, got %v", err)
		}
	})

	t.Run("unknown lot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lots := mocks.NewMockLotRepository(ctrl)
		gates := mocks.NewMockGateRepository(ctrl)
		types := mocks.NewMockVehicleTypeRepository(ctrl)
		tariffs := mocks.NewMockTariffRepository(ctrl)
		svc := NewCatalogService(lots, gates, types, tariffs)

		lots.EXPECT().FindByID(gomock.Any(), 1).Return(nil, repository.ErrNotFound)

		_, err := svc.CreateTariff(context.Background(), dto)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCatalogService_CreateGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	lots := mocks.NewMockLotRepository(ctrl)
	gates := mocks.NewMockGateRepository(ctrl)
	types := mocks.NewMockVehicleTypeRepository(ctrl)
	tariffs := mocks.NewMockTariffRepository(ctrl)
	svc := NewCatalogService(lots, gates, types, tariffs)

	lots.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Lot{ID: 1, Capacity: 10}, nil)
	gates.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *domain.Gate) (*domain.Gate, error) {
			if g.Direction != domain.GateEntry || !g.Bidirectional {
				t.Errorf("unexpected gate shape: %+v", g)
			}
			g.ID = 3
			return g, nil
		})

	gate, err := svc.CreateGate(context.Background(), domain.GateDTO{
		LotID: 1, Name: "North", Direction: "entry", Bidirectional: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gate.ID != 3 {
		t.Errorf("gate id = %d, want 3", gate.ID)
	}
}
