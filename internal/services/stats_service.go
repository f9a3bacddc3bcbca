package services

import (
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/models"
	"github.com/KSJEJWI8282/electronic-practice-diary/internal/repository"
)

// StatsService собирает сводную статистику для панелей управления
type StatsService struct {
	userRepo     repository.UserRepository
	regRepo      repository.RegistrationRepository
	diaryRepo    repository.DiaryRepository
	fileRepo     repository.FileRepository
	assignedRepo repository.AssignedTestRepository
	resultRepo   repository.TestResultRepository
}

// NewStatsService создает новый сервис статистики
func NewStatsService(
	userRepo repository.UserRepository,
	regRepo repository.RegistrationRepository,
	diaryRepo repository.DiaryRepository,
	fileRepo repository.FileRepository,
	assignedRepo repository.AssignedTestRepository,
	resultRepo repository.TestResultRepository,
) *StatsService {
	return &StatsService{
		userRepo:     userRepo,
		regRepo:      regRepo,
		diaryRepo:    diaryRepo,
		fileRepo:     fileRepo,
		assignedRepo: assignedRepo,
		resultRepo:   resultRepo,
	}
}

// GetStats получает сводку для панели управления
func (s *StatsService) GetStats() (map[string]interface{}, error) {
	students, err := s.userRepo.ListByRole(models.RoleStudent)
	if err != nil {
		return nil, err
	}

	pending, err := s.regRepo.ListByStatus(models.RegistrationPending)
	if err != nil {
		return nil, err
	}

	unconfirmed, err := s.diaryRepo.CountUnconfirmed()
	if err != nil {
		return nil, err
	}

	pendingFiles, err := s.fileRepo.ListByStatus(models.FilePending)
	if err != nil {
		return nil, err
	}

	tests, err := s.assignedRepo.List()
	if err != nil {
		return nil, err
	}

	results, err := s.resultRepo.List()
	if err != nil {
		return nil, err
	}

	// Доля сдавших среди всех результатов
	passed := 0
	for _, r := range results {
		passingScore := models.DefaultPassingScore
		for _, t := range tests {
			if t.ID == r.TestID && t.PassingScore > 0 {
				passingScore = t.PassingScore
				break
			}
		}
		if r.Percent() >= passingScore {
			passed++
		}
	}

	return map[string]interface{}{
		"total_students":        len(students),
		"pending_registrations": len(pending),
		"unconfirmed_entries":   unconfirmed,
		"pending_files":         len(pendingFiles),
		"assigned_tests":        len(tests),
		"test_results":          len(results),
		"tests_passed":          passed,
	}, nil
}
