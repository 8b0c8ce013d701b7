package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sellerops/internal/core/application/usecases/commands"
	"sellerops/internal/jobs"
	"sellerops/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDueSchedulesRunner struct{ mock.Mock }

func (m *MockDueSchedulesRunner) Handle(ctx context.Context, cmd commands.RunDueSchedulesCommand) ([]string, error) {
	args := m.Called(ctx, cmd)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

type MockJobRecorder struct{ mock.Mock }

func (m *MockJobRecorder) ObserveDuration(job string, duration time.Duration) {
	m.Called(job, duration)
}

func (m *MockJobRecorder) IncSuccess(job string) {
	m.Called(job)
}

func (m *MockJobRecorder) IncFailure(job string) {
	m.Called(job)
}

func (m *MockJobRecorder) AddProcessed(job string, n int) {
	m.Called(job, n)
}

func TestScheduledReportJob_RunOnce_RecordsCreatedReports(t *testing.T) {
	runner := &MockDueSchedulesRunner{}
	recorder := &MockJobRecorder{}
	name := jobs.ScheduledReportJobName

	mock.InOrder(
		runner.On("Handle", mock.Anything, mock.AnythingOfType("commands.RunDueSchedulesCommand")).
			Return([]string{"RPT-1", "RPT-2"}, nil).Once(),
		recorder.On("ObserveDuration", name, mock.AnythingOfType("time.Duration")).Once(),
		recorder.On("IncSuccess", name).Once(),
		recorder.On("AddProcessed", name, 2).Once(),
	)

	jobs.NewScheduledReportJob(runner, "", recorder, logger.Nop()).RunOnce(context.Background())

	runner.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestScheduledReportJob_RunOnce_NothingDue_IsSuccess(t *testing.T) {
	runner := &MockDueSchedulesRunner{}
	recorder := &MockJobRecorder{}
	name := jobs.ScheduledReportJobName

	runner.On("Handle", mock.Anything, mock.Anything).Return(nil, commands.ErrNoDueSchedules).Once()
	recorder.On("ObserveDuration", name, mock.Anything).Once()
	recorder.On("IncSuccess", name).Once()

	jobs.NewScheduledReportJob(runner, "", recorder, logger.Nop()).RunOnce(context.Background())

	recorder.AssertExpectations(t)
	recorder.AssertNotCalled(t, "IncFailure", mock.Anything)
	recorder.AssertNotCalled(t, "AddProcessed", mock.Anything, mock.Anything)
}

func TestScheduledReportJob_RunOnce_PartialFailure_CountsFailureAndCreated(t *testing.T) {
	runner := &MockDueSchedulesRunner{}
	recorder := &MockJobRecorder{}
	name := jobs.ScheduledReportJobName

	runner.On("Handle", mock.Anything, mock.Anything).
		Return([]string{"RPT-1"}, errors.New("schedule SCH-2: connection reset")).Once()
	recorder.On("ObserveDuration", name, mock.Anything).Once()
	recorder.On("IncFailure", name).Once()
	recorder.On("AddProcessed", name, 1).Once()

	jobs.NewScheduledReportJob(runner, "", recorder, logger.Nop()).RunOnce(context.Background())

	recorder.AssertExpectations(t)
	recorder.AssertNotCalled(t, "IncSuccess", mock.Anything)
}

func TestScheduledReportJob_Start_InvalidSpec(t *testing.T) {
	job := jobs.NewScheduledReportJob(&MockDueSchedulesRunner{}, "every minute", &MockJobRecorder{}, logger.Nop())

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	runner := &MockDueSchedulesRunner{}
	recorder := &MockJobRecorder{}
	runner.On("Handle", mock.Anything, mock.Anything).Return(nil, commands.ErrNoDueSchedules).Maybe()
	recorder.On("ObserveDuration", mock.Anything, mock.Anything).Maybe()
	recorder.On("IncSuccess", mock.Anything).Maybe()

	manager := jobs.NewJobManager(runner, "@every 1h", recorder, logger.Nop())

	require.NoError(t, manager.StartAll())
	assert.NotPanics(t, manager.StopAll)
}
