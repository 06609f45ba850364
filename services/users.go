package services

import (
	"errors"

	"github.com/edasenturkk/term-project-backend/cache"
	"github.com/edasenturkk/term-project-backend/models"
	"github.com/edasenturkk/term-project-backend/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db  *gorm.DB
	agg *RatingAggregator
}

func NewUserService(db *gorm.DB, agg *RatingAggregator) *UserService {
	return &UserService{db: db, agg: agg}
}

func (s *UserService) Register(in models.RegisterInput) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return nil, NewValidationError("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, NewValidationError("invalid email or password")
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) UpdateProfile(userID uint, in models.UpdateProfileInput) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	// The display name is denormalized onto review entries.
	if in.Name != nil {
		if err := s.db.Model(&models.Review{}).Where("user_id = ?", userID).Update("name", user.Name).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *UserService) AdminUpdate(userID uint, in models.AdminUpdateUserInput) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.IsAdmin != nil {
		user.IsAdmin = *in.IsAdmin
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUserResult reports the dependent records a user deletion touched.
type DeleteUserResult struct {
	ReviewsRemoved  int `json:"reviewsRemoved"`
	PlaytimeRemoved int `json:"playtimeRemoved"`
	GamesRecomputed int `json:"gamesRecomputed"`
}

// DeleteUser removes a user together with their review entries and ledger
// rows, then recomputes every affected game before returning. Cleanup is
// synchronous here: success means the aggregates are already consistent.
func (s *UserService) DeleteUser(userID uint) (*DeleteUserResult, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := s.db.Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	var playtimes []models.PlayTime
	if err := s.db.Where("user_id = ?", userID).Find(&playtimes).Error; err != nil {
		return nil, err
	}

	if err := s.db.Where("user_id = ?", userID).Delete(&models.Review{}).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("user_id = ?", userID).Delete(&models.PlayTime{}).Error; err != nil {
		return nil, err
	}

	reviewed, affected := gamesTouchedBy(reviews, playtimes)
	for gameID := range reviewed {
		var count int64
		if err := s.db.Model(&models.Review{}).Where("game_id = ?", gameID).Count(&count).Error; err != nil {
			return nil, err
		}
		if err := s.db.Model(&models.Game{}).Where("id = ?", gameID).Update("num_reviews", count).Error; err != nil {
			return nil, err
		}
	}
	for gameID := range affected {
		if err := s.agg.Recompute(gameID); err != nil {
			utils.Log.WithFields(logrus.Fields{
				"game_id": gameID,
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Rating recompute failed during user deletion")
			return nil, err
		}
		cache.InvalidateReviews(gameID)
	}

	if err := s.db.Delete(user).Error; err != nil {
		return nil, err
	}

	return &DeleteUserResult{
		ReviewsRemoved:  len(reviews),
		PlaytimeRemoved: len(playtimes),
		GamesRecomputed: len(affected),
	}, nil
}

// gamesTouchedBy dedupes a user's review and ledger rows into the set of
// games needing a review count resync and the wider set needing a rating
// recompute. Reviewed games are always a subset of affected.
func gamesTouchedBy(reviews []models.Review, playtimes []models.PlayTime) (reviewed, affected map[uint]bool) {
	reviewed = make(map[uint]bool)
	affected = make(map[uint]bool)
	for _, rv := range reviews {
		reviewed[rv.GameID] = true
		affected[rv.GameID] = true
	}
	for _, pt := range playtimes {
		affected[pt.GameID] = true
	}
	return reviewed, affected
}
