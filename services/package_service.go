package services

import (
	"errors"
	"fmt"
	"strings"

	"tour-backend/models"

	"gorm.io/gorm"
)

// PackageService wraps *gorm.DB for catalog reads. Packages are never
// mutated by this workflow.
type PackageService struct {
	DB *gorm.DB
}

func NewPackageService(db *gorm.DB) *PackageService {
	return &PackageService{DB: db}
}

// ListFilter holds the listing filters. Numeric fields are nil when the
// parameter was absent or non-numeric: ignoring unparseable input is the
// documented policy, not an accident.
type ListFilter struct {
	Category    string
	Destination string
	MaxPrice    *int
}

// SearchFilter holds the advanced search terms. Query matches title OR
// destination OR description; everything else combines with AND.
type SearchFilter struct {
	Query    string
	Category string
	MinPrice *int
	MaxPrice *int
	Duration *int
}

func (s *PackageService) List(f ListFilter) ([]models.Package, error) {
	q := s.DB.Model(&models.Package{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Destination != "" {
		q = q.Where("LOWER(destination) LIKE ?", containsPattern(f.Destination))
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	var packages []models.Package
	if err := q.Order("id ASC").Find(&packages).Error; err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packages, nil
}

// GetByID loads a single package or ErrPackageNotFound.
func (s *PackageService) GetByID(id uint) (models.Package, error) {
	var pkg models.Package
	if err := s.DB.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Package{}, ErrPackageNotFound
		}
		return models.Package{}, fmt.Errorf("fetch package %d: %w", id, err)
	}
	return pkg, nil
}

// GetDetail loads a package with its itineraries (day ascending) and up
// to three similar packages sharing the destination.
func (s *PackageService) GetDetail(id uint) (models.Package, []models.Itinerary, []models.Package, error) {
	pkg, err := s.GetByID(id)
	if err != nil {
		return models.Package{}, nil, nil, err
	}

	var itineraries []models.Itinerary
	if err := s.DB.
		Where("package_id = ?", pkg.ID).
		Order("day ASC").
		Find(&itineraries).Error; err != nil {
		return models.Package{}, nil, nil, fmt.Errorf("fetch itineraries for package %d: %w", id, err)
	}

	var similar []models.Package
	if err := s.DB.
		Where("destination = ? AND id <> ?", pkg.Destination, pkg.ID).
		Limit(3).
		Find(&similar).Error; err != nil {
		return models.Package{}, nil, nil, fmt.Errorf("fetch similar packages for %d: %w", id, err)
	}

	return pkg, itineraries, similar, nil
}

// Search applies the free-text term and the structured filters, returning
// the matches and the total result count.
func (s *PackageService) Search(f SearchFilter) ([]models.Package, int64, error) {
	q := s.DB.Model(&models.Package{})
	if f.Query != "" {
		pattern := containsPattern(f.Query)
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(destination) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Duration != nil {
		q = q.Where("days = ?", *f.Duration)
	}

	var packages []models.Package
	if err := q.Order("id ASC").Find(&packages).Error; err != nil {
		return nil, 0, fmt.Errorf("search packages: %w", err)
	}
	return packages, int64(len(packages)), nil
}

func containsPattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}
