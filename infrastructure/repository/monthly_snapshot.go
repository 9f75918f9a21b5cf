package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const (
	monthlySnapshotsTable = "monthly_snapshots ms"
)

type MonthlySnapshotRepository interface {
	GetByTenantAndPeriod(ctx context.Context, tenantID, period string) (*domain.MonthlySnapshot, error)
	SaveOrUpdate(ctx context.Context, snapshot *domain.MonthlySnapshot) error
	SaveBatch(ctx context.Context, snapshots []*domain.MonthlySnapshot) error
	GetAllPeriods(ctx context.Context, tenantID string) ([]string, error)
}

type monthlySnapshotRepository struct {
	conn *postgres.Connection
}

func NewMonthlySnapshotRepository(conn *postgres.Connection) MonthlySnapshotRepository {
	return &monthlySnapshotRepository{
		conn: conn,
	}
}

func (r *monthlySnapshotRepository) GetByTenantAndPeriod(ctx context.Context, tenantID, period string) (*domain.MonthlySnapshot, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.tenant_id, ms.period, ms.summary, ms.growth, ms.is_demo, ms.created_at, ms.updated_at").
		From(monthlySnapshotsTable).
		Where(squirrel.Eq{"ms.tenant_id": tenantID, "ms.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSnapshot(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot mensal: %w", err)
	}

	return snapshot, nil
}

func buildSnapshotUpsert(snapshot *domain.MonthlySnapshot) (string, []interface{}, error) {
	summaryJSON, err := json.Marshal(snapshot.Summary)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar summary para JSON: %w", err)
	}

	growthJSON, err := json.Marshal(snapshot.Growth)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar growth para JSON: %w", err)
	}

	return squirrel.StatementBuilder.
		Insert("monthly_snapshots").
		Columns("id", "tenant_id", "period", "summary", "growth", "is_demo").
		Values(
			snapshot.ID,
			snapshot.TenantID,
			snapshot.Period,
			summaryJSON,
			growthJSON,
			snapshot.IsDemo,
		).
		Suffix(`
			ON CONFLICT (tenant_id, period) DO UPDATE SET
				summary = EXCLUDED.summary,
				growth = EXCLUDED.growth,
				is_demo = EXCLUDED.is_demo,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *monthlySnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.MonthlySnapshot) error {
	return saveSnapshot(ctx, r.conn, snapshot)
}

// SaveBatch grava todos os snapshots na mesma transação
func (r *monthlySnapshotRepository) SaveBatch(ctx context.Context, snapshots []*domain.MonthlySnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, snapshot := range snapshots {
			if err := saveSnapshot(ctx, tx, snapshot); err != nil {
				return err
			}
		}
		return nil
	})
}

func saveSnapshot(ctx context.Context, q postgres.Queryer, snapshot *domain.MonthlySnapshot) error {
	query, args, err := buildSnapshotUpsert(snapshot)
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *monthlySnapshotRepository) GetAllPeriods(ctx context.Context, tenantID string) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT ms.period").
		From(monthlySnapshotsTable).
		Where(squirrel.Eq{"ms.tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func scanSnapshot(row rowScanner) (*domain.MonthlySnapshot, error) {
	snapshot := &domain.MonthlySnapshot{}
	var summaryJSON, growthJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.TenantID,
		&snapshot.Period,
		&summaryJSON,
		&growthJSON,
		&snapshot.IsDemo,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(summaryJSON, &snapshot.Summary); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de summary: %w", err)
	}

	if err := json.Unmarshal(growthJSON, &snapshot.Growth); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de growth: %w", err)
	}

	return snapshot, nil
}
