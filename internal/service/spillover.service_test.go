package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"intermarket/internal/domain"
	mock_repository "intermarket/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUniverseRepository struct {
	symbols []string
	err     error
}

func (f fakeUniverseRepository) ActiveSymbols() ([]string, error) {
	return f.symbols, f.err
}

func Test_DetectSpillover(t *testing.T) {
	t.Run("strong sources keep their sign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceSeriesRepository(ctrl)

		handler := &intermarketServiceHandler{
			PriceSeriesRepository: priceRepository,
			WindowDays:            252,
			Threshold:             0.3,
		}

		// B tracks A exactly, C moves exactly opposite
		priceRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "A", 252).
			Return(pricesFromCloses("A", 100, 101, 103.02, 104.0502), nil)
		priceRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "B", 252).
			Return(pricesFromCloses("B", 50, 50.5, 51.51, 52.0251), nil)
		priceRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "C", 252).
			Return(pricesFromCloses("C", 100, 99, 97.02, 96.0498), nil)

		report, err := handler.DetectSpillover(context.Background(), "A", []string{"A", "B", "C"})
		require.NoError(t, err)

		require.Equal(t, "A", report.Symbol)
		require.Equal(t, 2, report.TotalCorrelations)
		require.Equal(t, 2, report.StrongSpillovers)
		require.InDelta(t, 0.0, report.AvgCorrelation, 1e-9)
		require.InDelta(t, 1.0, report.MaxSpillover, 1e-9)

		require.Len(t, report.SpilloverSources, 2)
		require.InDelta(t, 1.0, report.SpilloverSources["B"], 1e-9)
		require.InDelta(t, -1.0, report.SpilloverSources["C"], 1e-9)
	})

	t.Run("volatility spillover is a marked placeholder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceSeriesRepository(ctrl)

		handler := &intermarketServiceHandler{
			PriceSeriesRepository: priceRepository,
			WindowDays:            252,
			Threshold:             0.3,
		}

		priceRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "A", 252).
			Return(pricesFromCloses("A", 100, 101, 103.02, 104.0502), nil)
		priceRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "B", 252).
			Return(pricesFromCloses("B", 50, 50.5, 51.51, 52.0251), nil)

		report, err := handler.DetectSpillover(context.Background(), "A", []string{"A", "B"})
		require.NoError(t, err)
		require.Equal(t, 0.0, report.VolatilitySpillover.VolatilityTransmission)
		require.Equal(t, domain.VolatilitySpilloverNote, report.VolatilitySpillover.Note)
	})

	t.Run("symbol absent from matrix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceSeriesRepository(ctrl)

		handler := &intermarketServiceHandler{
			PriceSeriesRepository: priceRepository,
			WindowDays:            252,
			Threshold:             0.3,
		}

		priceRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "A", 252).
			Return(pricesFromCloses("A", 100, 101, 103.02, 104.0502), nil)
		priceRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "B", 252).
			Return(pricesFromCloses("B", 50, 50.5, 51.51, 52.0251), nil)

		_, err := handler.DetectSpillover(context.Background(), "ZZZ", []string{"A", "B"})

		var insufficientErr InsufficientDataError
		require.True(t, errors.As(err, &insufficientErr))
		require.Equal(t, "ZZZ", insufficientErr.Symbol)
	})

	t.Run("no usable data in universe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceSeriesRepository(ctrl)

		handler := &intermarketServiceHandler{
			PriceSeriesRepository: priceRepository,
			WindowDays:            252,
			Threshold:             0.3,
		}

		priceRepository.EXPECT().
			GetDailyCloses(gomock.Any(), gomock.Any(), 252).
			Return(nil, fmt.Errorf("provider down")).
			Times(2)

		_, err := handler.DetectSpillover(context.Background(), "A", []string{"A", "B"})

		var insufficientErr InsufficientDataError
		require.True(t, errors.As(err, &insufficientErr))
	})

	t.Run("empty universe falls back to active symbols", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceSeriesRepository(ctrl)

		handler := &intermarketServiceHandler{
			PriceSeriesRepository: priceRepository,
			UniverseRepository:    fakeUniverseRepository{symbols: []string{"A", "B"}},
			WindowDays:            252,
			Threshold:             0.3,
		}

		priceRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "A", 252).
			Return(pricesFromCloses("A", 100, 101, 103.02, 104.0502), nil)
		priceRepository.EXPECT().
			GetDailyCloses(gomock.Any(), "B", 252).
			Return(pricesFromCloses("B", 50, 50.5, 51.51, 52.0251), nil)

		report, err := handler.DetectSpillover(context.Background(), "A", nil)
		require.NoError(t, err)
		require.Equal(t, 1, report.TotalCorrelations)
	})

	t.Run("universe repository failure propagates", func(t *testing.T) {
		handler := &intermarketServiceHandler{
			UniverseRepository: fakeUniverseRepository{err: fmt.Errorf("no universe file")},
			WindowDays:         252,
			Threshold:          0.3,
		}

		_, err := handler.DetectSpillover(context.Background(), "A", nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to load default universe")
	})
}
