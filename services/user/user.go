package user

import (
	bookingRepo "furytails/database/repository/booking"
	userRepo "furytails/database/repository/user"
	"furytails/models"
)

// UserService serves the customer roster and the admin gate's role check.
type UserService interface {
	// Get retrieves one account.
	Get(id string) (*models.User, error)
	// ListCustomers lists customer accounts, newest first. Staff
	// accounts stay off the roster.
	ListCustomers() ([]models.User, error)
	// IsAdmin reports whether an account may use the admin console.
	IsAdmin(id string) (bool, error)
	// ListPets lists the pets known through bookings, most recent
	// booking per pet.
	ListPets() ([]PetRow, error)
}

// PetRow is one pet on the pets view. Pets have no collection of their
// own; they are derived from the bookings that brought them in.
type PetRow struct {
	PetName       string `json:"petName"`
	PetType       string `json:"petType"`
	PetBreed      string `json:"petBreed"`
	OwnerName     string `json:"ownerName"`
	LastService   string `json:"lastService"`
	LastStatus    string `json:"lastStatus"`
	LastBookingID string `json:"lastBookingId"`
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
}

// Get retrieves one account.
func (s *DefaultUserService) Get(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// ListCustomers lists customer accounts, newest first.
func (s *DefaultUserService) ListCustomers() ([]models.User, error) {
	return s.Repo.GetByRole(models.RoleUser)
}

// IsAdmin reports whether an account may use the admin console.
func (s *DefaultUserService) IsAdmin(id string) (bool, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// ListPets derives the pet roster from bookings, keeping each pet's most
// recent booking. Bookings arrive newest first, so the first sighting of
// a pet wins.
func (s *DefaultUserService) ListPets() ([]PetRow, error) {
	bookings, err := s.Bookings.GetAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var pets []PetRow
	for i := range bookings {
		b := &bookings[i]
		if b.PetInformation.PetName == "" {
			continue
		}
		key := b.OwnerName() + "|" + b.PetInformation.PetName
		if seen[key] {
			continue
		}
		seen[key] = true
		pets = append(pets, PetRow{
			PetName:       b.PetInformation.PetName,
			PetType:       b.PetInformation.PetType,
			PetBreed:      b.PetInformation.PetBreed,
			OwnerName:     b.OwnerName(),
			LastService:   b.ServiceType,
			LastStatus:    b.Status,
			LastBookingID: b.ID,
		})
	}
	return pets, nil
}
