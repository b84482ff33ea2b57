package queries_test

import (
	"testing"
	"time"

	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderReportQuery_RejectsUnassignedID(t *testing.T) {
	_, err := queries.NewGetOrderReportQuery(kernel.ID{})
	require.ErrorIs(t, err, kernel.ErrIDIsNotAssigned)

	_, err = queries.NewGetOrderQuery(kernel.ID{})
	require.ErrorIs(t, err, kernel.ErrIDIsNotAssigned)
}

func TestQueries_ZeroValueIsNotConstructed(t *testing.T) {
	require.ErrorIs(t, queries.GetAllOrdersQuery{}.Validate(), queries.ErrGetAllOrdersQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetOrderReportQuery{}.Validate(), queries.ErrGetOrderReportQueryIsNotConstructed)
}

func TestBuildReport(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(200 * time.Second)
	pauseEnd := start.Add(90 * time.Second)
	duration := int64(60)
	description := "night shift"

	view := queries.OrderView{
		ID:                 7,
		Name:               "Batch 42",
		Description:        &description,
		StartedAt:          &start,
		FinishedAt:         &end,
		TotalActiveSeconds: 140,
		TotalPauseSeconds:  60,
		Status:             order.Finished,
		Pauses: []queries.PauseView{
			{ID: 1, OrderID: 7, Reason: "lunch", StartedAt: start.Add(30 * time.Second), EndedAt: &pauseEnd, DurationSeconds: &duration},
			{ID: 2, OrderID: 7, Reason: "call", StartedAt: start.Add(150 * time.Second)},
		},
	}

	report := queries.BuildReport(view)

	assert.Equal(t, int64(7), report.ID)
	assert.Equal(t, "Batch 42", report.Name)
	assert.Equal(t, &description, report.Description)
	assert.Equal(t, int64(140), report.TotalActiveSeconds)
	assert.Equal(t, int64(60), report.TotalPauseSeconds)
	require.Len(t, report.Pauses, 2)

	assert.Equal(t, queries.PauseSummary{
		Reason:          "lunch",
		StartedAt:       start.Add(30 * time.Second),
		EndedAt:         &pauseEnd,
		DurationSeconds: &duration,
	}, report.Pauses[0])

	assert.Equal(t, "call", report.Pauses[1].Reason)
	assert.Nil(t, report.Pauses[1].EndedAt)
	assert.Nil(t, report.Pauses[1].DurationSeconds)
}

func TestBuildReport_NoPausesYieldsEmptyList(t *testing.T) {
	report := queries.BuildReport(queries.OrderView{ID: 1, Name: "x"})
	assert.NotNil(t, report.Pauses)
	assert.Empty(t, report.Pauses)
}
