package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetMonthlyReport(t *testing.T) {
	updatedAt := time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   string
		setup    func(snapshots *mocks.MockMonthlySnapshotRepository, tenants *mocks.MockTenantRepository)
		validate func(t *testing.T, report *domain.MonthlyReport, err error)
	}{
		{
			name:   "Snapshot encontrado com nome do tenant",
			period: "02-2024",
			setup: func(snapshots *mocks.MockMonthlySnapshotRepository, tenants *mocks.MockTenantRepository) {
				snapshots.EXPECT().GetByTenantAndPeriod(gomock.Any(), "tenant-1", "02-2024").Return(&domain.MonthlySnapshot{
					TenantID:  "tenant-1",
					Period:    "02-2024",
					Summary:   domain.DashboardSummary{TotalClicks: 1050, AverageRoi: 200},
					IsDemo:    true,
					UpdatedAt: updatedAt,
				}, nil)
				tenants.EXPECT().GetByID(gomock.Any(), "tenant-1").Return(&domain.Tenant{ID: "tenant-1", Name: "Loja Centro"}, nil)
			},
			validate: func(t *testing.T, report *domain.MonthlyReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Loja Centro", report.TenantName)
				assert.Equal(t, "02-2024", report.Period)
				assert.Equal(t, int64(1050), report.Summary.TotalClicks)
				assert.True(t, report.IsDemo)
				assert.Equal(t, updatedAt, report.UpdatedAt)
			},
		},
		{
			name:   "Falha ao buscar o tenant não impede o relatório",
			period: "02-2024",
			setup: func(snapshots *mocks.MockMonthlySnapshotRepository, tenants *mocks.MockTenantRepository) {
				snapshots.EXPECT().GetByTenantAndPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.MonthlySnapshot{Period: "02-2024"}, nil)
				tenants.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, report *domain.MonthlyReport, err error) {
				require.NoError(t, err)
				assert.Empty(t, report.TenantName)
			},
		},
		{
			name:   "Snapshot inexistente",
			period: "01-2023",
			setup: func(snapshots *mocks.MockMonthlySnapshotRepository, tenants *mocks.MockTenantRepository) {
				snapshots.EXPECT().GetByTenantAndPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				tenants.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&domain.Tenant{}, nil)
			},
			validate: func(t *testing.T, report *domain.MonthlyReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
				assert.ErrorIs(t, err, domain.ErrNotFound)
			},
		},
		{
			name:   "Período fora do formato - nenhuma consulta",
			period: "2024-02",
			setup:  func(*mocks.MockMonthlySnapshotRepository, *mocks.MockTenantRepository) {},
			validate: func(t *testing.T, report *domain.MonthlyReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
			},
		},
		{
			name:   "Falha no banco",
			period: "02-2024",
			setup: func(snapshots *mocks.MockMonthlySnapshotRepository, tenants *mocks.MockTenantRepository) {
				snapshots.EXPECT().GetByTenantAndPeriod(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
				tenants.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			validate: func(t *testing.T, report *domain.MonthlyReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			snapshots := mocks.NewMockMonthlySnapshotRepository(ctrl)
			tenants := mocks.NewMockTenantRepository(ctrl)
			tt.setup(snapshots, tenants)

			report, err := NewService(snapshots, tenants).GetMonthlyReport(context.Background(), "tenant-1", tt.period)
			tt.validate(t, report, err)
		})
	}
}

func TestService_GetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshots := mocks.NewMockMonthlySnapshotRepository(ctrl)
	snapshots.EXPECT().GetAllPeriods(gomock.Any(), "tenant-1").Return([]string{"11-2023", "02-2024", "01-2024"}, nil)

	periods, err := NewService(snapshots, nil).GetAvailablePeriods(context.Background(), "tenant-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"02-2024", "01-2024", "11-2023"}, periods.Periods)
	assert.Equal(t, []string{"2024", "2023"}, periods.Years)
	assert.Equal(t, []string{"01", "02", "11"}, periods.Months)
}

func TestPeriodFromMonthYear(t *testing.T) {
	tests := []struct {
		month    string
		year     string
		expected string
		wantErr  bool
	}{
		{month: "3", year: "2024", expected: "03-2024"},
		{month: "12", year: "2023", expected: "12-2023"},
		{month: "13", year: "2024", wantErr: true},
		{month: "0", year: "2024", wantErr: true},
		{month: "abc", year: "2024", wantErr: true},
		{month: "3", year: "24", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.month+"/"+tt.year, func(t *testing.T) {
			period, err := PeriodFromMonthYear(tt.month, tt.year)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, period)
		})
	}
}
