package repository

import (
	"context"

	"skillbridge/internal/database"
	"skillbridge/internal/domain/rating"

	"github.com/google/uuid"
)

type PostgresRatingRepository struct {
	db database.Querier
}

func NewPostgresRatingRepository(db database.Querier) *PostgresRatingRepository {
	return &PostgresRatingRepository{db: db}
}

func (r *PostgresRatingRepository) Create(ctx context.Context, rt rating.Rating) (rating.Rating, error) {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO ratings (id, application_id, company_id, freelancer_id, score, comment)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		rt.ID, rt.ApplicationID, rt.CompanyID, rt.FreelancerID, rt.Score, rt.Comment,
	).Scan(&rt.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return rating.Rating{}, rating.ErrAlreadyRated
		}
		return rating.Rating{}, err
	}
	return rt, nil
}

func (r *PostgresRatingRepository) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]rating.Rating, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, application_id, company_id, freelancer_id, score, comment, created_at
		 FROM ratings
		 WHERE freelancer_id = $1
		 ORDER BY created_at DESC`,
		freelancerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]rating.Rating, 0)
	for rows.Next() {
		var rt rating.Rating
		if err := rows.Scan(&rt.ID, &rt.ApplicationID, &rt.CompanyID, &rt.FreelancerID, &rt.Score, &rt.Comment, &rt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
