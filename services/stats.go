package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/edasenturkk/term-project-backend/models"

	"gorm.io/gorm"
)

// PlatformStats - admin-facing totals across the whole catalog.
type PlatformStats struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalGames    int64   `json:"totalGames"`
	TotalReviews  int64   `json:"totalReviews"`
	TotalMinutes  int64   `json:"totalMinutes"`
	AverageRating float64 `json:"averageRating"`
}

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Platform computes the totals with one goroutine per query; the counts
// are independent of each other.
func (s *StatsService) Platform() (*PlatformStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats := &PlatformStats{}
	var wg sync.WaitGroup
	errChan := make(chan error, 5)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
			errChan <- fmt.Errorf("users count: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.db.Model(&models.Game{}).Count(&stats.TotalGames).Error; err != nil {
			errChan <- fmt.Errorf("games count: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.db.Model(&models.Review{}).Count(&stats.TotalReviews).Error; err != nil {
			errChan <- fmt.Errorf("reviews count: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		var sum struct{ Sum int64 }
		if err := s.db.Model(&models.PlayTime{}).
			Select("COALESCE(SUM(minutes), 0) as sum").
			Scan(&sum).Error; err != nil {
			errChan <- fmt.Errorf("playtime sum: %w", err)
			return
		}
		stats.TotalMinutes = sum.Sum
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		var avg struct{ Avg float64 }
		if err := s.db.Model(&models.Game{}).
			Select("COALESCE(AVG(rating), 0) as avg").
			Where("num_reviews > 0").
			Scan(&avg).Error; err != nil {
			errChan <- fmt.Errorf("average rating: %w", err)
			return
		}
		stats.AverageRating = avg.Avg
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
		close(errChan)
	}()

	select {
	case <-done:
		for err := range errChan {
			if err != nil {
				return nil, err
			}
		}
		return stats, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("timeout calculating stats")
	}
}
