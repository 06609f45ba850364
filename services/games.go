package services

import (
	"errors"

	"github.com/edasenturkk/term-project-backend/cache"
	"github.com/edasenturkk/term-project-backend/models"

	"gorm.io/gorm"
)

type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{db: db}
}

// GameListQuery - optional filters for the catalog listing.
type GameListQuery struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

type GameListResult struct {
	Games    []models.Game `json:"games"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

func (s *GameService) List(q GameListQuery) (*GameListResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}

	query := s.db.Model(&models.Game{}).Preload("Categories")
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if q.Category != "" {
		query = query.Joins("JOIN game_categories gc ON gc.game_id = games.id").
			Joins("JOIN categories c ON c.id = gc.category_id").
			Where("c.name = ?", q.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var games []models.Game
	if err := query.Offset((q.Page - 1) * q.PageSize).Limit(q.PageSize).Find(&games).Error; err != nil {
		return nil, err
	}

	return &GameListResult{Games: games, Total: total, Page: q.Page, PageSize: q.PageSize}, nil
}

// GameDetails - a catalog row enriched with ledger aggregates.
type GameDetails struct {
	models.Game
	TotalMinutes int `json:"totalMinutes"`
	Players      int `json:"players"`
}

func (s *GameService) ListDetailed() ([]GameDetails, error) {
	var games []models.Game
	if err := s.db.Preload("Categories").Find(&games).Error; err != nil {
		return nil, err
	}

	var totals []struct {
		GameID  uint
		Minutes int
		Players int
	}
	if err := s.db.Model(&models.PlayTime{}).
		Select("game_id, SUM(minutes) as minutes, COUNT(*) as players").
		Group("game_id").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	byGame := make(map[uint]struct{ Minutes, Players int }, len(totals))
	for _, t := range totals {
		byGame[t.GameID] = struct{ Minutes, Players int }{t.Minutes, t.Players}
	}

	details := make([]GameDetails, 0, len(games))
	for _, g := range games {
		agg := byGame[g.ID]
		details = append(details, GameDetails{Game: g, TotalMinutes: agg.Minutes, Players: agg.Players})
	}
	return details, nil
}

func (s *GameService) Get(id uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.Preload("Categories").Preload("Reviews").First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *GameService) Create(in models.GameInput) (*models.Game, error) {
	categories, err := s.resolveCategories(in.Categories)
	if err != nil {
		return nil, err
	}

	game := models.Game{
		Name:        in.Name,
		Image:       in.Image,
		Brand:       in.Brand,
		Description: in.Description,
		Categories:  categories,
	}
	if in.DisableRating != nil {
		game.DisableRating = *in.DisableRating
	}
	if in.DisableCommenting != nil {
		game.DisableCommenting = *in.DisableCommenting
	}

	if err := s.db.Create(&game).Error; err != nil {
		return nil, err
	}
	cache.InvalidateGamesList()
	return &game, nil
}

func (s *GameService) Update(id uint, in models.GameInput) (*models.Game, error) {
	game, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	categories, err := s.resolveCategories(in.Categories)
	if err != nil {
		return nil, err
	}

	game.Name = in.Name
	game.Image = in.Image
	game.Brand = in.Brand
	game.Description = in.Description
	if in.DisableRating != nil {
		game.DisableRating = *in.DisableRating
	}
	if in.DisableCommenting != nil {
		game.DisableCommenting = *in.DisableCommenting
	}

	if err := s.db.Save(game).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(game).Association("Categories").Replace(categories); err != nil {
		return nil, err
	}

	cache.InvalidateGame(id)
	cache.InvalidateGamesList()
	return game, nil
}

// DeleteGameResult reports the dependent records a game deletion touched.
type DeleteGameResult struct {
	PlaytimeRemoved int `json:"playtimeRemoved"`
	ReviewsRemoved  int `json:"reviewsRemoved"`
}

// DeleteGame removes a game together with its review entries and every
// user's ledger row for it.
func (s *GameService) DeleteGame(id uint) (*DeleteGameResult, error) {
	game, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	playRes := s.db.Where("game_id = ?", id).Delete(&models.PlayTime{})
	if playRes.Error != nil {
		return nil, playRes.Error
	}
	reviewRes := s.db.Where("game_id = ?", id).Delete(&models.Review{})
	if reviewRes.Error != nil {
		return nil, reviewRes.Error
	}
	if err := s.db.Model(game).Association("Categories").Clear(); err != nil {
		return nil, err
	}
	if err := s.db.Delete(game).Error; err != nil {
		return nil, err
	}

	cache.InvalidateGame(id)
	cache.InvalidateReviews(id)
	cache.InvalidateGamesList()

	return &DeleteGameResult{
		PlaytimeRemoved: int(playRes.RowsAffected),
		ReviewsRemoved:  int(reviewRes.RowsAffected),
	}, nil
}

// resolveCategories maps tag names to category rows, creating unknown tags.
func (s *GameService) resolveCategories(names []string) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		var category models.Category
		err := s.db.Where("name = ?", name).First(&category).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			category = models.Category{Name: name}
			if err := s.db.Create(&category).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Create(name string) (*models.Category, error) {
	if name == "" {
		return nil, NewValidationError("category name is required")
	}
	category := models.Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	cache.InvalidateCategories()
	return &category, nil
}

func (s *CategoryService) Delete(id uint) error {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.db.Delete(&category).Error; err != nil {
		return err
	}
	cache.InvalidateCategories()
	return nil
}
