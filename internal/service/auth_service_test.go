package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/rehab-center/clinic-service/internal/config"
	"github.com/rehab-center/clinic-service/internal/domain"
	apperrors "github.com/rehab-center/clinic-service/pkg/util"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.nextID++
	user.ID = fmt.Sprintf("u-%d", f.nextID)
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) ListDoctors(_ context.Context, approved bool) ([]domain.User, error) {
	var out []domain.User
	for _, user := range f.users {
		if user.Role == domain.RoleDoctor && user.IsApproved == approved {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) SetApproved(_ context.Context, id string, approved bool) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user.IsApproved = approved
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(f.users, id)
	return user, nil
}

func newAuthService(repo *fakeUserRepo) *AuthService {
	cfg := config.AuthConfig{
		JWTSecret:         "test-secret",
		AccessTokenTTLHrs: 1,
		BcryptCost:        4,
	}
	return NewAuthService(cfg, repo, NewDoctorCache(nil, 0))
}

func TestSignupDefaultsToApprovedVisitor(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	user, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Sam",
		Email:    "Sam@Example.com",
		Password: "secret12",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleVisitor, user.Role)
	require.True(t, user.IsApproved)
	require.Equal(t, "sam@example.com", user.Email)
}

func TestSignupDoctorStartsUnapproved(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	user, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Dr. Rivera",
		Email:    "rivera@clinic.test",
		Password: "secret12",
		Role:     "doctor",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleDoctor, user.Role)
	require.False(t, user.IsApproved)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Signup(context.Background(), SignupInput{
		Name:     "X",
		Email:    "x@clinic.test",
		Password: "secret12",
		Role:     "superuser",
	})
	require.Error(t, err)
	require.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Name: "A", Email: "dup@clinic.test", Password: "secret12"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupInput{Name: "B", Email: "DUP@clinic.test", Password: "secret12"})
	require.Error(t, err)
	require.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestLoginUnknownEmailUnauthorized(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, _, _, err := svc.Login(context.Background(), "nobody@clinic.test", "whatever")
	require.Error(t, err)
	require.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Name: "Sam", Email: "sam@clinic.test", Password: "secret12"})
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "sam@clinic.test", "wrong")
	require.Error(t, err)
	require.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestLoginUnapprovedDoctorForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Name: "Dr. Rivera", Email: "rivera@clinic.test", Password: "secret12", Role: "doctor"})
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "rivera@clinic.test", "secret12")
	require.Error(t, err)
	require.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestLoginApprovedDoctorGetsDoctorToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	doctor, err := svc.Signup(ctx, SignupInput{Name: "Dr. Rivera", Email: "rivera@clinic.test", Password: "secret12", Role: "doctor"})
	require.NoError(t, err)

	_, err = repo.SetApproved(ctx, doctor.ID, true)
	require.NoError(t, err)

	user, token, _, err := svc.Login(ctx, "rivera@clinic.test", "secret12")
	require.NoError(t, err)
	require.Equal(t, domain.RoleDoctor, user.Role)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, doctor.ID, claims.UserID)
	require.Equal(t, domain.RoleDoctor, claims.Role)
}

func TestApprovedDoctorsListsOnlyApproved(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	ctx := context.Background()

	pending, err := svc.Signup(ctx, SignupInput{Name: "Pending", Email: "pending@clinic.test", Password: "secret12", Role: "doctor"})
	require.NoError(t, err)
	approved, err := svc.Signup(ctx, SignupInput{Name: "Approved", Email: "approved@clinic.test", Password: "secret12", Role: "doctor"})
	require.NoError(t, err)
	_, err = repo.SetApproved(ctx, approved.ID, true)
	require.NoError(t, err)

	doctors, err := svc.ApprovedDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	require.Equal(t, approved.ID, doctors[0].ID)
	require.NotEqual(t, pending.ID, doctors[0].ID)
}
