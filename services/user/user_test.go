package user

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "furytails/database/repository/booking"
	userRepo "furytails/database/repository/user"
	"furytails/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(us ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range us {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, userRepo.ErrNotFound)
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByRole(role string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeUserRepo) Create(u *models.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Update(u *models.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Delete(id string) error      { delete(r.users, id); return nil }
func (r *fakeUserRepo) Count() (int64, error)       { return int64(len(r.users)), nil }

func (r *fakeUserRepo) Watch(ctx context.Context, onChange func()) error {
	<-ctx.Done()
	return ctx.Err()
}

type stubBookingRepo struct {
	bookings []models.Booking
}

func (r *stubBookingRepo) GetByID(id string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}
func (r *stubBookingRepo) GetAll() ([]models.Booking, error) { return r.bookings, nil }
func (r *stubBookingRepo) GetByStatuses(statuses []string) ([]models.Booking, error) {
	return r.bookings, nil
}
func (r *stubBookingRepo) GetByDate(date string) ([]models.Booking, error) { return nil, nil }
func (r *stubBookingRepo) Create(b *models.Booking) error                  { return nil }
func (r *stubBookingRepo) UpdateFields(id string, fields bson.M) error     { return nil }
func (r *stubBookingRepo) AppendAdminNote(id, note string) error           { return nil }
func (r *stubBookingRepo) CountByStatus(status string) (int64, error)      { return 0, nil }
func (r *stubBookingRepo) Watch(ctx context.Context, onChange func()) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestIsAdmin(t *testing.T) {
	repo := newFakeUserRepo(
		&models.User{ID: "staff-1", Role: models.RoleAdmin},
		&models.User{ID: "cust-1", Role: models.RoleUser},
	)
	svc := &DefaultUserService{Repo: repo, Bookings: &stubBookingRepo{}}

	ok, err := svc.IsAdmin("staff-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsAdmin("cust-1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.IsAdmin("nobody")
	assert.ErrorIs(t, err, userRepo.ErrNotFound)
}

func TestListCustomersExcludesStaff(t *testing.T) {
	repo := newFakeUserRepo(
		&models.User{ID: "staff-1", Role: models.RoleAdmin, CreatedAt: time.Now()},
		&models.User{ID: "cust-1", Role: models.RoleUser, CreatedAt: time.Now().Add(-time.Hour)},
		&models.User{ID: "cust-2", Role: models.RoleUser, CreatedAt: time.Now()},
	)
	svc := &DefaultUserService{Repo: repo, Bookings: &stubBookingRepo{}}

	customers, err := svc.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "cust-2", customers[0].ID)
	assert.Equal(t, "cust-1", customers[1].ID)
}

func TestListPetsKeepsNewestSightingPerPet(t *testing.T) {
	bookings := []models.Booking{
		{
			ID:          "b2",
			ServiceType: models.ServiceGrooming,
			Status:      models.StatusApproved,
			PetInformation: models.PetInformation{
				PetName: "Biscuit", PetType: "Dog",
			},
			OwnerInformation: models.OwnerInformation{FirstName: "Dana", LastName: "Cruz"},
		},
		{
			ID:          "b1",
			ServiceType: models.ServiceBoarding,
			Status:      models.StatusCheckedOut,
			PetInformation: models.PetInformation{
				PetName: "Biscuit", PetType: "Dog",
			},
			OwnerInformation: models.OwnerInformation{FirstName: "Dana", LastName: "Cruz"},
		},
		{
			ID:          "b3",
			ServiceType: models.ServiceBoarding,
			Status:      models.StatusPending,
			PetInformation: models.PetInformation{
				PetName: "Mochi", PetType: "Cat",
			},
			OwnerInformation: models.OwnerInformation{FirstName: "Ravi", LastName: "Patel"},
		},
	}
	svc := &DefaultUserService{
		Repo:     newFakeUserRepo(),
		Bookings: &stubBookingRepo{bookings: bookings},
	}

	pets, err := svc.ListPets()
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "b2", pets[0].LastBookingID)
	assert.Equal(t, models.ServiceGrooming, pets[0].LastService)
	assert.Equal(t, "Mochi", pets[1].PetName)
}
