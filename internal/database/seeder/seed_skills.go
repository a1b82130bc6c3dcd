package seeder

import (
	"context"

	"skillbridge/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

var defaultSkills = []struct {
	Name     string
	Category string
}{
	{Name: "Go", Category: "Development"},
	{Name: "JavaScript", Category: "Development"},
	{Name: "TypeScript", Category: "Development"},
	{Name: "React", Category: "Development"},
	{Name: "Node.js", Category: "Development"},
	{Name: "PostgreSQL", Category: "Data"},
	{Name: "Data Analysis", Category: "Data"},
	{Name: "UI/UX Design", Category: "Design"},
	{Name: "Figma", Category: "Design"},
	{Name: "Copywriting", Category: "Writing"},
	{Name: "Technical Writing", Category: "Writing"},
	{Name: "SEO", Category: "Marketing"},
	{Name: "Project Management", Category: "Management"},
	{Name: "Docker", Category: "DevOps"},
	{Name: "AWS", Category: "DevOps"},
}

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, it := range defaultSkills {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
				it.Name,
				it.Category,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
