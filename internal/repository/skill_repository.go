package repository

import (
	"context"
	"strings"

	"skillbridge/internal/database"
	"skillbridge/internal/domain/skill"

	"github.com/google/uuid"
)

type PostgresSkillRepository struct {
	db database.Querier
}

func NewPostgresSkillRepository(db database.Querier) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category, created_at FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, name, category string) (skill.Skill, error) {
	s := skill.Skill{ID: uuid.New(), Name: strings.TrimSpace(name), Category: strings.TrimSpace(category)}
	err := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, name, category) VALUES ($1, $2, $3) RETURNING created_at`,
		s.ID, s.Name, s.Category,
	).Scan(&s.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return skill.Skill{}, skill.ErrAlreadyExists
		}
		return skill.Skill{}, err
	}
	return s, nil
}
