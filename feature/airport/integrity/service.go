package integrity

import (
	"github.com/weglide/flugfeld/feature/airport/integrity/checks"
	"github.com/weglide/flugfeld/feature/airport/models"

	"go.uber.org/zap"
)

// Service runs integrity checks against a loaded snapshot.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// CheckIdentity returns id problems: missing, duplicate or out-of-order ids.
func (s *Service) CheckIdentity(airports []models.Airport) []string {
	return checks.CheckIdentity(airports)
}

// CheckContinents returns records whose continent is missing or inconsistent
// with their country code.
func (s *Service) CheckContinents(airports []models.Airport) []string {
	return checks.CheckContinents(airports)
}

// CheckRegions returns records whose region code is missing, unknown or
// unrefined.
func (s *Service) CheckRegions(airports []models.Airport) []string {
	return checks.CheckRegions(airports)
}

// CheckAll runs every check and logs each problem. It reports whether the
// snapshot is clean.
func (s *Service) CheckAll(airports []models.Airport) bool {
	clean := true
	for _, check := range []struct {
		name string
		run  func([]models.Airport) []string
	}{
		{"identity", checks.CheckIdentity},
		{"continents", checks.CheckContinents},
		{"regions", checks.CheckRegions},
	} {
		problems := check.run(airports)
		if len(problems) == 0 {
			s.logger.Info("check passed", zap.String("check", check.name))
			continue
		}
		clean = false
		for _, problem := range problems {
			s.logger.Warn("check failed", zap.String("check", check.name), zap.String("problem", problem))
		}
	}
	return clean
}
