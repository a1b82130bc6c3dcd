package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillbridge/internal/database"
	"skillbridge/internal/domain/application"
	"skillbridge/internal/domain/mission"

	"github.com/google/uuid"
)

const applicationColumns = `a.id, a.mission_id, a.freelancer_id, a.company_id, a.proposal, a.proposed_rate, a.estimated_duration, a.status, a.created_at, a.updated_at`

type PostgresApplicationRepository struct {
	db database.Querier
}

func NewPostgresApplicationRepository(db database.Querier) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications AS a (id, mission_id, freelancer_id, company_id, proposal, proposed_rate, estimated_duration, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+applicationColumns,
		a.ID, a.MissionID, a.FreelancerID, a.CompanyID, a.Proposal, a.ProposedRate, a.EstimatedDuration, string(a.Status),
	)
	created, err := scanApplication(row)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return application.Application{}, application.ErrDuplicate
		}
		if database.IsForeignKeyViolation(err) {
			return application.Application{}, mission.ErrNotFound
		}
		if database.IsInvalidValue(err) {
			return application.Application{}, application.ErrInvalid
		}
		return application.Application{}, err
	}
	return created, nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	return scanApplication(r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications a WHERE a.id = $1`, id))
}

func (r *PostgresApplicationRepository) GetDetail(ctx context.Context, id uuid.UUID) (application.Detail, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+`,
		        m.title, m.status, fp.full_name, cp.company_name,
		        rt.id, rt.score, rt.comment, rt.created_at
		 FROM applications a
		 JOIN missions m ON m.id = a.mission_id
		 JOIN freelance_profiles fp ON fp.id = a.freelancer_id
		 JOIN company_profiles cp ON cp.id = a.company_id
		 LEFT JOIN ratings rt ON rt.application_id = a.id
		 WHERE a.id = $1`,
		id,
	)

	var d application.Detail
	var status string
	var (
		ratingID      *uuid.UUID
		ratingScore   *int
		ratingComment *string
		ratedAt       *time.Time
	)
	err := row.Scan(
		&d.ID, &d.MissionID, &d.FreelancerID, &d.CompanyID, &d.Proposal, &d.ProposedRate, &d.EstimatedDuration, &status, &d.CreatedAt, &d.UpdatedAt,
		&d.MissionTitle, &d.MissionStatus, &d.FreelancerName, &d.CompanyName,
		&ratingID, &ratingScore, &ratingComment, &ratedAt,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return application.Detail{}, application.ErrNotFound
		}
		return application.Detail{}, err
	}
	d.Status = application.Status(status)
	if ratingID != nil {
		sum := &application.RatingSummary{ID: *ratingID}
		if ratingScore != nil {
			sum.Score = *ratingScore
		}
		if ratingComment != nil {
			sum.Comment = *ratingComment
		}
		if ratedAt != nil {
			sum.CreatedAt = *ratedAt
		}
		d.Rating = sum
	}
	return d, nil
}

func (r *PostgresApplicationRepository) Update(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications AS a
		 SET proposal = $1, proposed_rate = $2, estimated_duration = $3, status = $4, updated_at = now()
		 WHERE a.id = $5
		 RETURNING `+applicationColumns,
		a.Proposal, a.ProposedRate, a.EstimatedDuration, string(a.Status), a.ID,
	)
	updated, err := scanApplication(row)
	if err != nil && database.IsInvalidValue(err) {
		return application.Application{}, application.ErrInvalid
	}
	return updated, err
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) ExistsForMission(ctx context.Context, missionID, freelancerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE mission_id = $1 AND freelancer_id = $2)`,
		missionID, freelancerID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) List(ctx context.Context, f application.Filter) ([]application.Application, error) {
	where, args := applicationWhere(f)
	return r.query(ctx, `SELECT `+applicationColumns+` FROM applications a`+where+` ORDER BY a.created_at DESC, a.id ASC`, args...)
}

func (r *PostgresApplicationRepository) ListPage(ctx context.Context, f application.Filter, p application.PageRequest) ([]application.Application, int, error) {
	where, args := applicationWhere(f)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM applications a`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	col, ok := p.SortBy.Column()
	if !ok {
		col = "created_at"
	}
	order := "DESC"
	if p.SortOrder == application.SortAsc {
		order = "ASC"
	}

	args = append(args, p.Limit, p.Offset())
	q := fmt.Sprintf(`SELECT %s FROM applications a%s ORDER BY a.%s %s, a.id ASC LIMIT $%d OFFSET $%d`,
		applicationColumns, where, col, order, len(args)-1, len(args))

	items, err := r.query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *PostgresApplicationRepository) query(ctx context.Context, q string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func applicationWhere(f application.Filter) (string, []any) {
	var conds []string
	var args []any
	add := func(expr string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if f.MissionID != nil {
		add("a.mission_id = $%d", *f.MissionID)
	}
	if f.FreelancerID != nil {
		add("a.freelancer_id = $%d", *f.FreelancerID)
	}
	if f.CompanyID != nil {
		add("a.company_id = $%d", *f.CompanyID)
	}
	if f.Status != nil {
		add("a.status = $%d", string(*f.Status))
	}
	if f.MinRate != nil {
		add("a.proposed_rate >= $%d", *f.MinRate)
	}
	if f.MaxRate != nil {
		add("a.proposed_rate <= $%d", *f.MaxRate)
	}
	if f.MinDuration != nil {
		add("a.estimated_duration >= $%d", *f.MinDuration)
	}
	if f.MaxDuration != nil {
		add("a.estimated_duration <= $%d", *f.MaxDuration)
	}
	if f.DateFrom != nil {
		add("a.created_at >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		add("a.created_at <= $%d", *f.DateTo)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	if err := row.Scan(&a.ID, &a.MissionID, &a.FreelancerID, &a.CompanyID, &a.Proposal, &a.ProposedRate, &a.EstimatedDuration, &status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if database.IsNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
