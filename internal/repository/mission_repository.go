package repository

import (
	"context"
	"fmt"
	"strings"

	"skillbridge/internal/database"
	"skillbridge/internal/domain/mission"

	"github.com/google/uuid"
)

const missionColumns = `id, company_id, title, description, budget, status, required_skills, created_at, updated_at`

type PostgresMissionRepository struct {
	db database.Querier
}

func NewPostgresMissionRepository(db database.Querier) *PostgresMissionRepository {
	return &PostgresMissionRepository{db: db}
}

func (r *PostgresMissionRepository) Create(ctx context.Context, m mission.Mission) (mission.Mission, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.RequiredSkills == nil {
		m.RequiredSkills = []string{}
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO missions (id, company_id, title, description, budget, status, required_skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+missionColumns,
		m.ID, m.CompanyID, m.Title, m.Description, m.Budget, string(m.Status), m.RequiredSkills,
	)
	return scanMission(row)
}

func (r *PostgresMissionRepository) GetByID(ctx context.Context, id uuid.UUID) (mission.Mission, error) {
	return scanMission(r.db.QueryRow(ctx, `SELECT `+missionColumns+` FROM missions WHERE id = $1`, id))
}

func (r *PostgresMissionRepository) List(ctx context.Context, f mission.Filter) ([]mission.Mission, int, error) {
	var conds []string
	var args []any
	if f.CompanyID != nil {
		args = append(args, *f.CompanyID)
		conds = append(conds, fmt.Sprintf("company_id = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM missions`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	q := fmt.Sprintf(`SELECT %s FROM missions%s ORDER BY created_at DESC, id ASC LIMIT $%d OFFSET $%d`,
		missionColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]mission.Mission, 0)
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresMissionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status mission.Status) (mission.Mission, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE missions SET status = $1, updated_at = now() WHERE id = $2 RETURNING `+missionColumns,
		string(status), id,
	)
	return scanMission(row)
}

func scanMission(row database.Row) (mission.Mission, error) {
	var m mission.Mission
	var status string
	if err := row.Scan(&m.ID, &m.CompanyID, &m.Title, &m.Description, &m.Budget, &status, &m.RequiredSkills, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if database.IsNoRows(err) {
			return mission.Mission{}, mission.ErrNotFound
		}
		return mission.Mission{}, err
	}
	m.Status = mission.Status(status)
	return m, nil
}
