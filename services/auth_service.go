package services

import (
	"errors"
	"strings"
	"time"

	"pizzapalace/entity"
	"pizzapalace/repository"
	"pizzapalace/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService owns the customer profile and the login session.
type AuthService struct {
	userRepo    *repository.UserRepository
	catalogRepo *repository.CatalogRepository
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(repo *repository.UserRepository, catalog *repository.CatalogRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:    repo,
		catalogRepo: catalog,
		jwtSecret:   secret,
		jwtTTL:      ttl,
	}
}

func (s *AuthService) Register(email, password, firstName, lastName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        "customer",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues the session token. A valid token
// is what "logged in" means everywhere else.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// UpdateMeIn uses pointers so absent fields stay untouched.
type UpdateMeIn struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
	Street      *string `json:"street"`
	City        *string `json:"city"`
	Zip         *string `json:"zip"`

	FavoriteSizeID   *uint     `json:"favoriteSizeId"`
	FavoriteToppings *[]uint   `json:"favoriteToppings"`
	Allergies        *[]string `json:"allergies"`
}

// UpdateMe merges the given fields into the profile and re-persists.
func (s *AuthService) UpdateMe(userID uint, in *UpdateMeIn) (*entity.User, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*in.LastName)
	}
	if in.PhoneNumber != nil {
		updates["phone_number"] = strings.TrimSpace(*in.PhoneNumber)
	}
	if in.Street != nil {
		updates["street"] = strings.TrimSpace(*in.Street)
	}
	if in.City != nil {
		updates["city"] = strings.TrimSpace(*in.City)
	}
	if in.Zip != nil {
		updates["zip"] = strings.TrimSpace(*in.Zip)
	}
	if in.FavoriteSizeID != nil {
		if _, err := s.catalogRepo.GetSize(*in.FavoriteSizeID); err != nil {
			return nil, errors.New("favorite size not found")
		}
		updates["favorite_size_id"] = *in.FavoriteSizeID
	}
	if in.FavoriteToppings != nil {
		toppings, err := s.catalogRepo.GetToppingsByIDs(*in.FavoriteToppings)
		if err != nil {
			return nil, err
		}
		if len(toppings) != len(*in.FavoriteToppings) {
			return nil, errors.New("invalid favorite toppings")
		}
		updates["favorite_toppings"] = entity.UintList(*in.FavoriteToppings)
	}
	if in.Allergies != nil {
		updates["allergies"] = entity.StringList(*in.Allergies)
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.userRepo.FindByID(userID)
}
