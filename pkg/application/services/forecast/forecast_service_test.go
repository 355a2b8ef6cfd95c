package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lettaearth/intel/pkg/domain/entities"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func sales(product entities.ProductID, start time.Time, quantities ...entities.Quantity) []entities.SalesRecord {
	records := make([]entities.SalesRecord, len(quantities))
	for i, q := range quantities {
		records[i] = entities.SalesRecord{Date: start.AddDate(0, i, 0), Product: product, Quantity: q}
	}
	return records
}

func TestForecast_TrailingAverageProjectedFlat(t *testing.T) {
	history := sales("Cocoa", month(2025, 1), 999, 80, 90, 100)

	points, err := Forecast(history, DefaultHorizon)
	require.NoError(t, err)
	require.Len(t, points, 3)

	expectedDates := []time.Time{month(2025, 5), month(2025, 6), month(2025, 7)}
	for i, p := range points {
		assert.Equal(t, entities.ProductID("Cocoa"), p.Product)
		assert.Equal(t, entities.Quantity(90), p.ForecastQty)
		assert.True(t, expectedDates[i].Equal(p.Date), "period %d: expected %v, got %v", i, expectedDates[i], p.Date)
	}
}

func TestForecast_TruncatesMean(t *testing.T) {
	points, err := Forecast(sales("Corn", month(2025, 1), 10, 10, 11), 1)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, entities.Quantity(10), points[0].ForecastQty) // 31/3 = 10.33
}

func TestForecast_ShortHistoryUsesAllPoints(t *testing.T) {
	points, err := Forecast(sales("Sugar", month(2025, 11), 40, 61), 2)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, entities.Quantity(50), points[0].ForecastQty)
	assert.True(t, month(2026, 1).Equal(points[0].Date), "year rollover, got %v", points[0].Date)
	assert.True(t, month(2026, 2).Equal(points[1].Date))
}

func TestForecast_UnorderedInputAndMultipleProducts(t *testing.T) {
	history := append(sales("Wheat", month(2025, 1), 30, 60, 90), sales("Barley", month(2025, 2), 9)...)
	// shuffle wheat so the latest month is not last
	history[0], history[2] = history[2], history[0]

	points, err := Forecast(history, 2)
	require.NoError(t, err)
	require.Len(t, points, 4)

	assert.Equal(t, entities.ProductID("Barley"), points[0].Product)
	assert.Equal(t, entities.Quantity(9), points[0].ForecastQty)
	assert.True(t, month(2025, 3).Equal(points[0].Date))

	assert.Equal(t, entities.ProductID("Wheat"), points[2].Product)
	assert.Equal(t, entities.Quantity(60), points[2].ForecastQty)
	assert.True(t, month(2025, 4).Equal(points[2].Date))
}

func TestForecast_HorizonEdges(t *testing.T) {
	history := sales("Cotton", month(2025, 1), 1, 2, 3)

	points, err := Forecast(history, 0)
	require.NoError(t, err)
	assert.Empty(t, points)

	_, err = Forecast(history, -1)
	assert.True(t, errors.Is(err, entities.ErrInvalidParameter))
}

func TestForecast_NoHistory(t *testing.T) {
	_, err := Forecast(nil, 3)
	assert.True(t, errors.Is(err, entities.ErrInsufficientData))

	points, err := Forecast(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestForecast_Pure(t *testing.T) {
	history := sales("Coffee", month(2025, 1), 5, 6, 7, 8)
	snapshot := make([]entities.SalesRecord, len(history))
	copy(snapshot, history)

	first, err := Forecast(history, 3)
	require.NoError(t, err)
	second, err := Forecast(history, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, history)
}
