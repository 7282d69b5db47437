package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"gorm.io/gorm"
)

var (
	// ErrReportNotFound indicates the report was not found
	ErrReportNotFound = errors.New("report not found")
	// ErrInvalidReportData indicates missing or malformed fields
	ErrInvalidReportData = errors.New("invalid report data")
)

// ReportService manages issue reports from the public website
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportService instance
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// CreateReportInput contains the fields accepted from the public form
type CreateReportInput struct {
	Name          string
	Email         string
	MobileNumber1 string
	MobileNumber2 string
	Subject       string
	Message       string
}

// CreateReport validates and persists a new report
func (s *ReportService) CreateReport(input CreateReportInput) (*models.Report, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidReportData)
	}
	if strings.TrimSpace(input.MobileNumber1) == "" {
		return nil, fmt.Errorf("%w: mobile number is required", ErrInvalidReportData)
	}

	report := &models.Report{
		Name:          strings.TrimSpace(input.Name),
		Email:         strings.TrimSpace(strings.ToLower(input.Email)),
		MobileNumber1: strings.TrimSpace(input.MobileNumber1),
		MobileNumber2: strings.TrimSpace(input.MobileNumber2),
		Subject:       strings.TrimSpace(input.Subject),
		Message:       input.Message,
	}
	if err := s.db.Create(report).Error; err != nil {
		return nil, err
	}

	return report, nil
}

// GetReports retrieves all reports, newest first
func (s *ReportService) GetReports() ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// DeleteReport removes a report
func (s *ReportService) DeleteReport(id uint) error {
	result := s.db.Delete(&models.Report{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}

// CountReports returns the number of reports
func (s *ReportService) CountReports() (int64, error) {
	var count int64
	err := s.db.Model(&models.Report{}).Count(&count).Error
	return count, err
}
