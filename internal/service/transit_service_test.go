package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"parking_transit/internal/domain"
	"parking_transit/internal/repository"
	"parking_transit/internal/repository/mocks"

	"go.uber.org/mock/gomock"
)

type transitFixture struct {
	lots     *mocks.MockLotRepository
	gates    *mocks.MockGateRepository
	vehicles *mocks.MockVehicleRepository
	types    *mocks.MockVehicleTypeRepository
	transits *mocks.MockTransitRepository
	tariffs  *mocks.MockTariffRepository
	svc      *TransitService
}

func newTransitFixture(t *testing.T, now time.Time) *transitFixture {
	ctrl := gomock.NewController(t)
	f := &transitFixture{
		lots:     mocks.NewMockLotRepository(ctrl),
		gates:    mocks.NewMockGateRepository(ctrl),
		vehicles: mocks.NewMockVehicleRepository(ctrl),
		types:    mocks.NewMockVehicleTypeRepository(ctrl),
		transits: mocks.NewMockTransitRepository(ctrl),
		tariffs:  mocks.NewMockTariffRepository(ctrl),
	}
	f.svc = NewTransitService(f.lots, f.gates, f.vehicles, f.types, f.transits, NewTariffService(f.tariffs))
	f.svc.now = func() time.Time { return now }
	return f
}

func TestTransitService_Open(t *testing.T) {
	monday9 := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	entryGate := &domain.Gate{ID: 10, LotID: 1, Direction: domain.GateEntry}
	lot := &domain.Lot{ID: 1, Name: "Central", Capacity: 1}
	car := &domain.Vehicle{ID: 5, Plate: "AB123CD", VehicleTypeID: 1, OwnerUserID: 2}

	t.Run("opens a transit for a known plate", func(t *testing.T) {
		f := newTransitFixture(t, monday9)
		f.gates.EXPECT().FindByID(gomock.Any(), 10).Return(entryGate, nil)
		f.lots.EXPECT().FindByID(gomock.Any(), 1).Return(lot, nil)
		f.vehicles.EXPECT().FindByPlate(gomock.Any(), "AB123CD").Return(car, nil)
		f.transits.EXPECT().
			OpenWithinCapacity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr *domain.Transit) (*domain.Transit, error) {
				if tr.LotID != 1 || tr.VehicleID != 5 || tr.EntryGateID != 10 {
					t.Errorf("unexpected transit shape: %+v", tr)
				}
				if !tr.EntryTime.Equal(monday9) {
					t.Errorf("entry time = %s, want %s", tr.EntryTime, monday9)
				}
				if tr.Reference == "" {
					t.Error("reference must be set at open")
				}
				if !tr.IsOpen() {
					t.Error("new transit must be open")
				}
				tr.ID = 100
				return tr, nil
			})

		transit, err := f.svc.Open(context.Background(), domain.OpenTransitDTO{
			EntryGateID: 10, Plate: "AB123CD", VehicleTypeID: 1, OwnerUserID: 2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if transit.ID != 100 || transit.Status() != domain.TransitOpen {
			t.Errorf("got transit %+v", transit)
		}
	})

	t.Run("creates the vehicle lazily for an unseen plate", func(t *testing.T) {
		f := newTransitFixture(t, monday9)
		f.gates.EXPECT().FindByID(gomock.Any(), 10).Return(entryGate, nil)
		f.lots.EXPECT().FindByID(gomock.Any(), 1).Return(lot, nil)
		f.vehicles.EXPECT().FindByPlate(gomock.Any(), "ZZ999XX").Return(nil, repository.ErrNotFound)
		f.types.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.VehicleType{ID: 1, Name: "car"}, nil)
		f.vehicles.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
				if v.Plate != "ZZ999XX" || v.VehicleTypeID != 1 || v.OwnerUserID != 2 {
					t.Errorf("unexpected vehicle shape: %+v", v)
				}
				v.ID = 6
				return v, nil
			})
		f.transits.EXPECT().
			OpenWithinCapacity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr *domain.Transit) (*domain.Transit, error) {
				tr.ID = 101
				return tr, nil
			})

		transit, err := f.svc.Open(context.Background(), domain.OpenTransitDTO{
			EntryGateID: 10, Plate: "ZZ999XX", VehicleTypeID: 1, OwnerUserID: 2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if transit.VehicleID != 6 {
			t.Errorf("vehicle id = %d, want 6", transit.VehicleID)
		}
	})

	t.Run("full lot rejects with capacity exceeded", func(t *testing.T) {
		f := newTransitFixture(t, monday9)
		f.gates.EXPECT().FindByID(gomock.Any(), 10).Return(entryGate, nil)
		f.lots.EXPECT().FindByID(gomock.Any(), 1).Return(lot, nil)
		f.vehicles.EXPECT().FindByPlate(gomock.Any(), "CD456EF").Return(&domain.Vehicle{ID: 7, Plate: "CD456EF", VehicleTypeID: 1}, nil)
		f.transits.EXPECT().
			OpenWithinCapacity(gomock.Any(), gomock.Any()).
			Return(nil, repository.ErrCapacityExceeded)

		_, err := f.svc.Open(context.Background(), domain.OpenTransitDTO{
			EntryGateID: 10, Plate: "CD456EF", VehicleTypeID: 1, OwnerUserID: 2,
		})
		if !errors.Is(err, repository.ErrCapacityExceeded) {
			t.Errorf("expected ErrCapacityExceeded, got %v", err)
		}
	})

	t.Run("exit-only gate refuses entry", func(t *testing.T) {
		f := newTransitFixture(t, monday9)
		f.gates.EXPECT().FindByID(gomock.Any(), 11).
			Return(&domain.Gate{ID: 11, LotID: 1, Direction: domain.GateExit}, nil)

		_, err := f.svc.Open(context.Background(), domain.OpenTransitDTO{
			EntryGateID: 11, Plate: "AB123CD", VehicleTypeID: 1, OwnerUserID: 2,
		})
		if !errors.Is(err, ErrGateDirection) {
			t.Errorf("expected ErrGateDirection, got %v", err)
		}
	})

	t.Run("unknown entry gate", func(t *testing.T) {
		f := newTransitFixture(t, monday9)
		f.gates.EXPECT().FindByID(gomock.Any(), 99).Return(nil, repository.ErrNotFound)

		_, err := f.svc.Open(context.Background(), domain.OpenTransitDTO{
			EntryGateID: 99, Plate: "AB123CD", VehicleTypeID: 1, OwnerUserID: 2,
		})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestTransitService_Close(t *testing.T) {
	exitGate := &domain.Gate{ID: 20, LotID: 1, Direction: domain.GateExit}
	car := &domain.Vehicle{ID: 5, Plate: "AB123CD", VehicleTypeID: 1}

	openTransit := func(entry time.Time) *domain.Transit {
		return &domain.Transit{ID: 100, LotID: 1, VehicleID: 5, EntryGateID: 10, EntryTime: entry}
	}

	t.Run("closes with the tariff at the exit instant", func(t *testing.T) {
		// Monday 19:00 -> 21:00 crosses the band boundary; exit is NIGHT, so
		// the whole stay bills at the night rate.
		entry := time.Date(2024, 6, 3, 19, 0, 0, 0, time.UTC)
		exit := time.Date(2024, 6, 3, 21, 0, 0, 0, time.UTC)
		nightTariff := &domain.Tariff{ID: 8, LotID: 1, VehicleTypeID: 1, Rate: 3.0,
			TimeBand: domain.BandNight, DayType: domain.DayWeekday}

		f := newTransitFixture(t, exit)
		f.transits.EXPECT().FindByID(gomock.Any(), 100).Return(openTransit(entry), nil)
		f.gates.EXPECT().FindByID(gomock.Any(), 20).Return(exitGate, nil)
		f.vehicles.EXPECT().FindByID(gomock.Any(), 5).Return(car, nil)
		f.tariffs.EXPECT().
			FindForDimensions(gomock.Any(), 1, 1, domain.BandNight, domain.DayWeekday).
			Return(nightTariff, nil)
		f.transits.EXPECT().
			Close(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr *domain.Transit) (*domain.Transit, error) {
				if !tr.ExitTime.Valid || !tr.ExitTime.Time.Equal(exit) {
					t.Errorf("exit time not set: %+v", tr.ExitTime)
				}
				if tr.ExitGateID.Int64 != 20 || tr.TariffID.Int64 != 8 {
					t.Errorf("exit gate/tariff not set: %+v", tr)
				}
				// night rate for both hours, no blending
				if math.Abs(tr.Amount.Float64-6.0) > 1e-9 {
					t.Errorf("amount = %v, want 6.0", tr.Amount.Float64)
				}
				return tr, nil
			})

		closed, err := f.svc.Close(context.Background(), 100, domain.CloseTransitDTO{ExitGateID: 20, ExitTime: exit})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if closed.Status() != domain.TransitClosed {
			t.Errorf("status = %s, want CLOSED", closed.Status())
		}
	})

	t.Run("weekend stay with only weekday tariffs fails", func(t *testing.T) {
		// Saturday 09:00 -> 11:00, no WEEKEND rule defined.
		entry := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		exit := entry.Add(2 * time.Hour)

		f := newTransitFixture(t, exit)
		f.transits.EXPECT().FindByID(gomock.Any(), 100).Return(openTransit(entry), nil)
		f.gates.EXPECT().FindByID(gomock.Any(), 20).Return(exitGate, nil)
		f.vehicles.EXPECT().FindByID(gomock.Any(), 5).Return(car, nil)
		f.tariffs.EXPECT().
			FindForDimensions(gomock.Any(), 1, 1, domain.BandDay, domain.DayWeekend).
			Return(nil, repository.ErrNotFound)

		_, err := f.svc.Close(context.Background(), 100, domain.CloseTransitDTO{ExitGateID: 20, ExitTime: exit})
		if !errors.Is(err, ErrTariffUnavailable) {
			t.Errorf("expected ErrTariffUnavailable, got %v", err)
		}
	})

	t.Run("re-closing a closed transit is an error", func(t *testing.T) {
		entry := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
		closed := openTransit(entry)
		closed.ExitTime.SetValid(entry.Add(time.Hour))

		f := newTransitFixture(t, entry.Add(2*time.Hour))
		f.transits.EXPECT().FindByID(gomock.Any(), 100).Return(closed, nil)

		_, err := f.svc.Close(context.Background(), 100, domain.CloseTransitDTO{ExitGateID: 20})
		if !errors.Is(err, repository.ErrTransitAlreadyClosed) {
			t.Errorf("expected ErrTransitAlreadyClosed, got %v", err)
		}
	})

	t.Run("losing the close race surfaces already-closed", func(t *testing.T) {
		entry := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
		exit := entry.Add(time.Hour)
		dayTariff := &domain.Tariff{ID: 3, Rate: 2.0, TimeBand: domain.BandDay, DayType: domain.DayWeekday}

		f := newTransitFixture(t, exit)
		f.transits.EXPECT().FindByID(gomock.Any(), 100).Return(openTransit(entry), nil)
		f.gates.EXPECT().FindByID(gomock.Any(), 20).Return(exitGate, nil)
		f.vehicles.EXPECT().FindByID(gomock.Any(), 5).Return(car, nil)
		f.tariffs.EXPECT().
			FindForDimensions(gomock.Any(), 1, 1, domain.BandDay, domain.DayWeekday).
			Return(dayTariff, nil)
		f.transits.EXPECT().
			Close(gomock.Any(), gomock.Any()).
			Return(nil, repository.ErrTransitAlreadyClosed)

		_, err := f.svc.Close(context.Background(), 100, domain.CloseTransitDTO{ExitGateID: 20, ExitTime: exit})
		if !errors.Is(err, repository.ErrTransitAlreadyClosed) {
			t.Errorf("expected ErrTransitAlreadyClosed, got %v", err)
		}
	})

	t.Run("exit before entry is rejected before any write", func(t *testing.T) {
		entry := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

		f := newTransitFixture(t, entry)
		f.transits.EXPECT().FindByID(gomock.Any(), 100).Return(openTransit(entry), nil)
		f.gates.EXPECT().FindByID(gomock.Any(), 20).Return(exitGate, nil)

		_, err := f.svc.Close(context.Background(), 100, domain.CloseTransitDTO{
			ExitGateID: 20, ExitTime: entry.Add(-time.Hour),
		})
		if !errors.Is(err, ErrInvalidInterval) {
			t.Errorf("expected ErrInvalidInterval, got %v", err)
		}
	})

	t.Run("exit gate of another lot is rejected", func(t *testing.T) {
		entry := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

		f := newTransitFixture(t, entry.Add(time.Hour))
		f.transits.EXPECT().FindByID(gomock.Any(), 100).Return(openTransit(entry), nil)
		f.gates.EXPECT().FindByID(gomock.Any(), 21).
			Return(&domain.Gate{ID: 21, LotID: 2, Direction: domain.GateExit}, nil)

		_, err := f.svc.Close(context.Background(), 100, domain.CloseTransitDTO{ExitGateID: 21})
		if !errors.Is(err, ErrGateLotMismatch) {
			t.Errorf("expected ErrGateLotMismatch, got %v", err)
		}
	})

	t.Run("unknown transit", func(t *testing.T) {
		f := newTransitFixture(t, time.Now())
		f.transits.EXPECT().FindByID(gomock.Any(), 404).Return(nil, repository.ErrNotFound)

		_, err := f.svc.Close(context.Background(), 404, domain.CloseTransitDTO{ExitGateID: 20})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
