package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/interatlas/interatlas/internal/app/models"
	appRepos "github.com/interatlas/interatlas/internal/app/repositories"
	"github.com/interatlas/interatlas/internal/pkg/apperrors"
)

// CreateDefaultData creates default departments and courses if they don't
// exist, so a fresh instance has something to register against.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Departments/Courses)...")
	var finalErr error

	defaults := []struct {
		name    string
		courses []string
	}{
		{name: "Computer Science", courses: []string{"AI & ML", "Software Engineering"}},
		{name: "Business", courses: []string{"Accounting", "Marketing"}},
	}

	for _, d := range defaults {
		department := &appModels.Department{Name: d.name, Courses: []string{}}
		err := departmentRepo.Create(ctx, department)
		if err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			lgr.Error().Err(err).Str("department", d.name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			existing, errGet := departmentRepo.GetByName(ctx, d.name)
			if errGet != nil {
				lgr.Error().Err(errGet).Str("department", d.name).Msg("Error resolving existing department")
				finalErr = errors.Join(finalErr, errGet)
				continue
			}
			department = existing
		}

		// Course creation reconciles the department's course-name list.
		for _, courseName := range d.courses {
			course := &appModels.Course{Name: courseName, DepartmentID: department.ID}
			if err := courseRepo.Create(ctx, course); err != nil && !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
				lgr.Error().Err(err).Str("course", courseName).Msg("Error creating default course")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
