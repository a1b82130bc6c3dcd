package repository

import (
	"context"

	"skillbridge/internal/database"
	"skillbridge/internal/domain/profile"

	"github.com/google/uuid"
)

const (
	freelanceColumns = `id, user_id, full_name, title, bio, hourly_rate, skills, created_at, updated_at`
	companyColumns   = `id, user_id, company_name, description, website, created_at, updated_at`
)

type PostgresProfileRepository struct {
	db database.Querier
}

func NewPostgresProfileRepository(db database.Querier) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) CreateFreelance(ctx context.Context, p profile.FreelanceProfile) (profile.FreelanceProfile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO freelance_profiles (id, user_id, full_name, title, bio, hourly_rate, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+freelanceColumns,
		p.ID, p.UserID, p.FullName, p.Title, p.Bio, p.HourlyRate, p.Skills,
	)
	created, err := scanFreelance(row)
	if err != nil && database.IsUniqueViolation(err) {
		return profile.FreelanceProfile{}, profile.ErrAlreadyExists
	}
	return created, err
}

func (r *PostgresProfileRepository) UpdateFreelance(ctx context.Context, p profile.FreelanceProfile) (profile.FreelanceProfile, error) {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	row := r.db.QueryRow(ctx,
		`UPDATE freelance_profiles
		 SET full_name = $1, title = $2, bio = $3, hourly_rate = $4, skills = $5, updated_at = now()
		 WHERE id = $6
		 RETURNING `+freelanceColumns,
		p.FullName, p.Title, p.Bio, p.HourlyRate, p.Skills, p.ID,
	)
	return scanFreelance(row)
}

func (r *PostgresProfileRepository) GetFreelanceByID(ctx context.Context, id uuid.UUID) (profile.FreelanceProfile, error) {
	return scanFreelance(r.db.QueryRow(ctx, `SELECT `+freelanceColumns+` FROM freelance_profiles WHERE id = $1`, id))
}

func (r *PostgresProfileRepository) GetFreelanceByUserID(ctx context.Context, userID uuid.UUID) (profile.FreelanceProfile, error) {
	return scanFreelance(r.db.QueryRow(ctx, `SELECT `+freelanceColumns+` FROM freelance_profiles WHERE user_id = $1`, userID))
}

func (r *PostgresProfileRepository) CreateCompany(ctx context.Context, p profile.CompanyProfile) (profile.CompanyProfile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO company_profiles (id, user_id, company_name, description, website)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+companyColumns,
		p.ID, p.UserID, p.CompanyName, p.Description, p.Website,
	)
	created, err := scanCompany(row)
	if err != nil && database.IsUniqueViolation(err) {
		return profile.CompanyProfile{}, profile.ErrAlreadyExists
	}
	return created, err
}

func (r *PostgresProfileRepository) UpdateCompany(ctx context.Context, p profile.CompanyProfile) (profile.CompanyProfile, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE company_profiles
		 SET company_name = $1, description = $2, website = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING `+companyColumns,
		p.CompanyName, p.Description, p.Website, p.ID,
	)
	return scanCompany(row)
}

func (r *PostgresProfileRepository) GetCompanyByID(ctx context.Context, id uuid.UUID) (profile.CompanyProfile, error) {
	return scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM company_profiles WHERE id = $1`, id))
}

func (r *PostgresProfileRepository) GetCompanyByUserID(ctx context.Context, userID uuid.UUID) (profile.CompanyProfile, error) {
	return scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM company_profiles WHERE user_id = $1`, userID))
}

func scanFreelance(row database.Row) (profile.FreelanceProfile, error) {
	var p profile.FreelanceProfile
	if err := row.Scan(&p.ID, &p.UserID, &p.FullName, &p.Title, &p.Bio, &p.HourlyRate, &p.Skills, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if database.IsNoRows(err) {
			return profile.FreelanceProfile{}, profile.ErrNotFound
		}
		return profile.FreelanceProfile{}, err
	}
	return p, nil
}

func scanCompany(row database.Row) (profile.CompanyProfile, error) {
	var p profile.CompanyProfile
	if err := row.Scan(&p.ID, &p.UserID, &p.CompanyName, &p.Description, &p.Website, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if database.IsNoRows(err) {
			return profile.CompanyProfile{}, profile.ErrNotFound
		}
		return profile.CompanyProfile{}, err
	}
	return p, nil
}
