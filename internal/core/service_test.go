package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/rosterdiff/internal/core"
	"github.com/JonMunkholm/rosterdiff/internal/core/rules"
)

func TestService_Diff(t *testing.T) {
	svc := core.NewService(core.ServiceConfig{MaxConcurrent: 2, MaxWait: time.Second})

	res, err := svc.Diff(context.Background(), extranetCSV(jane), operooXLS())
	require.NoError(t, err)

	_, err = uuid.Parse(res.ID)
	assert.NoError(t, err, "diff ID should be a UUID")
	assert.Equal(t, []string{rules.MissingFromOperoo}, res.Report.Names())
	assert.Equal(t, core.LimiterStatus{Active: 0, Available: 2, Capacity: 2}, svc.Status())
}

func TestService_DiffErrorKeepsID(t *testing.T) {
	svc := core.NewService(core.ServiceConfig{})

	res, err := svc.Diff(context.Background(), []byte("nope"), operooXLS())
	require.ErrorIs(t, err, core.ErrInvalidFormat)
	assert.NotEmpty(t, res.ID)
	assert.Nil(t, res.Report)
}

func TestService_CancelledContext(t *testing.T) {
	svc := core.NewService(core.ServiceConfig{MaxConcurrent: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Diff(ctx, extranetCSV(jane), operooXLS(matching(jane)))
	require.Error(t, err)

	require.NoError(t, svc.WaitForDiffs(context.Background()))
	assert.Equal(t, 0, svc.Status().Active)
}
