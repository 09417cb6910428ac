package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interatlas/interatlas/internal/app/models/dto"
	"github.com/interatlas/interatlas/internal/app/repositories/inmem"
	"github.com/interatlas/interatlas/internal/pkg/apperrors"
	"github.com/interatlas/interatlas/internal/pkg/auth"
)

func newTestAuthService(db *inmem.DB) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "test-issuer",
	})
	validator := NewEnrollmentValidator(
		inmem.NewDepartmentRepository(db),
		inmem.NewCourseRepository(db),
	)
	return NewAuthService(inmem.NewStudentRepository(db), validator, jwtService, zerolog.Nop())
}

func validRegistration() *dto.RegisterStudentRequest {
	return &dto.RegisterStudentRequest{
		Role:       "student",
		Name:       "Jane Doe",
		StudentID:  "S-2024-001",
		Email:      "jane.doe@example.com",
		Phone:      "+905551112233",
		Department: "Computer Science",
		Course:     "AI & ML",
	}
}

func TestRegisterStudent_Success(t *testing.T) {
	db := inmem.Open()
	department := seedDepartmentWithCourse(t, db, "Computer Science", "AI & ML")
	service := newTestAuthService(db)
	ctx := context.Background()

	require.NoError(t, service.RegisterStudent(ctx, validRegistration()))

	stored, err := inmem.NewStudentRepository(db).GetByStudentIDAndEmail(ctx, "S-2024-001", "jane.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, "student", string(stored.Role))
	assert.Equal(t, "Jane Doe", stored.Name)
	assert.Equal(t, department.ID, stored.DepartmentID)
	assert.NotZero(t, stored.CourseID)
}

func TestRegisterStudent_ShapeFirstViolationWins(t *testing.T) {
	db := inmem.Open()
	seedDepartmentWithCourse(t, db, "Computer Science", "AI & ML")
	service := newTestAuthService(db)
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(r *dto.RegisterStudentRequest)
		wantField string
	}{
		{"wrong role", func(r *dto.RegisterStudentRequest) { r.Role = "teacher" }, "role"},
		{"short name", func(r *dto.RegisterStudentRequest) { r.Name = "Jo" }, "name"},
		{"missing student id", func(r *dto.RegisterStudentRequest) { r.StudentID = "  " }, "studentId"},
		{"bad email", func(r *dto.RegisterStudentRequest) { r.Email = "not-an-email" }, "email"},
		{"short phone", func(r *dto.RegisterStudentRequest) { r.Phone = "12345" }, "phone"},
		{"empty department", func(r *dto.RegisterStudentRequest) { r.Department = "" }, "department"},
		{"empty course", func(r *dto.RegisterStudentRequest) { r.Course = "" }, "course"},
		// With several violations, only the earliest field reports.
		{"role beats email", func(r *dto.RegisterStudentRequest) {
			r.Role = "admin"
			r.Email = "broken"
		}, "role"},
		{"name beats phone", func(r *dto.RegisterStudentRequest) {
			r.Name = ""
			r.Phone = "abc"
		}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegistration()
			tt.mutate(req)

			err := service.RegisterStudent(ctx, req)
			require.ErrorIs(t, err, apperrors.ErrShapeInvalid)

			var customErr *apperrors.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, tt.wantField, customErr.Field)
		})
	}
}

// Shape failures report before the store is ever consulted, so a payload
// that is both malformed and referentially wrong reports the shape error.
func TestRegisterStudent_ShapeBeforeReferential(t *testing.T) {
	db := inmem.Open()
	service := newTestAuthService(db)

	req := validRegistration()
	req.Email = "broken"
	req.Department = "No Such Department"

	err := service.RegisterStudent(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrShapeInvalid)
	assert.NotErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestRegisterStudent_UnknownDepartment(t *testing.T) {
	db := inmem.Open()
	seedDepartmentWithCourse(t, db, "Computer Science", "AI & ML")
	service := newTestAuthService(db)

	req := validRegistration()
	req.Department = "Astrology"

	err := service.RegisterStudent(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestRegisterStudent_CourseNotInDepartment(t *testing.T) {
	db := inmem.Open()
	seedDepartmentWithCourse(t, db, "Computer Science", "AI & ML")
	seedDepartmentWithCourse(t, db, "Business", "Accounting")
	service := newTestAuthService(db)

	// The course exists, but under another department.
	req := validRegistration()
	req.Course = "Accounting"

	err := service.RegisterStudent(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotInDepartment)
}

func TestRegisterStudent_Duplicates(t *testing.T) {
	db := inmem.Open()
	seedDepartmentWithCourse(t, db, "Computer Science", "AI & ML")
	service := newTestAuthService(db)
	ctx := context.Background()

	require.NoError(t, service.RegisterStudent(ctx, validRegistration()))

	t.Run("same email different student id", func(t *testing.T) {
		req := validRegistration()
		req.StudentID = "S-2024-999"

		err := service.RegisterStudent(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateStudent)
	})

	t.Run("same student id different email", func(t *testing.T) {
		req := validRegistration()
		req.Email = "other.jane@example.com"

		err := service.RegisterStudent(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateStudent)
	})

	t.Run("exact replay", func(t *testing.T) {
		err := service.RegisterStudent(ctx, validRegistration())
		assert.ErrorIs(t, err, apperrors.ErrDuplicateStudent)
	})

	// No rejected attempt left a record behind.
	exists, err := inmem.NewStudentRepository(db).ExistsByEmailOrStudentID(ctx, "other.jane@example.com", "S-2024-999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLogin_Success(t *testing.T) {
	db := inmem.Open()
	seedDepartmentWithCourse(t, db, "Computer Science", "AI & ML")
	service := newTestAuthService(db)
	ctx := context.Background()

	require.NoError(t, service.RegisterStudent(ctx, validRegistration()))

	resp, err := service.Login(ctx, &dto.LoginRequest{
		StudentID: "S-2024-001",
		Email:     "jane.doe@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

// Both identifying fields must match the same record.
func TestLogin_RequiresBothFieldsToMatch(t *testing.T) {
	db := inmem.Open()
	seedDepartmentWithCourse(t, db, "Computer Science", "AI & ML")
	service := newTestAuthService(db)
	ctx := context.Background()

	require.NoError(t, service.RegisterStudent(ctx, validRegistration()))

	tests := []struct {
		name      string
		studentID string
		email     string
	}{
		{"wrong student id", "S-9999-999", "jane.doe@example.com"},
		{"wrong email", "S-2024-001", "someone.else@example.com"},
		{"both wrong", "S-9999-999", "someone.else@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(ctx, &dto.LoginRequest{StudentID: tt.studentID, Email: tt.email})
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestLogin_StoreUnavailable(t *testing.T) {
	db := inmem.Open()
	service := newTestAuthService(db)
	db.Err = errors.New("connection refused")

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		StudentID: "S-2024-001",
		Email:     "jane.doe@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	db := inmem.Open()
	seedDepartmentWithCourse(t, db, "Computer Science", "AI & ML")
	service := newTestAuthService(db)
	ctx := context.Background()

	require.NoError(t, service.RegisterStudent(ctx, validRegistration()))

	stored, err := inmem.NewStudentRepository(db).GetByStudentIDAndEmail(ctx, "S-2024-001", "jane.doe@example.com")
	require.NoError(t, err)

	profile, err := service.GetProfile(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "Computer Science", profile.DepartmentName)
	assert.Equal(t, "AI & ML", profile.CourseName)

	_, err = service.GetProfile(ctx, 99999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = service.GetProfile(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
