package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/localnerve/beedb/internal/models"
	"github.com/localnerve/beedb/internal/utils"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	HealthOK          = "ok"
	HealthHealthy     = "healthy"
	HealthUnhealthy   = "unhealthy"
	healthUnreachable = "unreachable"
)

// ComponentHealth is the outcome of one check
type ComponentHealth struct {
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
	Elapsed string `json:"elapsed"`
}

// HealthReport collects every component check. Status is healthy only when all are ok.
type HealthReport struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
}

// Healthy reports whether every component passed
func (r HealthReport) Healthy() bool {
	return r.Status == HealthHealthy
}

// HealthCheck verifies the store answers, the record tables exist, and the API server
// at serverURL serves its metrics endpoint.
func HealthCheck(ctx context.Context, db *gorm.DB, serverURL string) HealthReport {
	report := HealthReport{
		Status:     HealthHealthy,
		Components: make(map[string]ComponentHealth),
	}

	record := func(name string, check func() (string, error)) {
		start := time.Now()
		detail, err := check()
		component := ComponentHealth{Status: HealthOK, Detail: detail, Elapsed: time.Since(start).String()}
		if err != nil {
			report.Status = HealthUnhealthy
			component.Status = healthUnreachable
			component.Detail = err.Error()
			log.Error().Err(err).Str("component", name).Msg("Health check failed")
		}
		report.Components[name] = component
	}

	record("database", func() (string, error) {
		sqlDB, err := db.DB()
		if err != nil {
			return "", err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return "", err
		}
		return db.Dialector.Name(), nil
	})

	record("schema", func() (string, error) {
		var missing []string
		for _, model := range models.All() {
			if !db.WithContext(ctx).Migrator().HasTable(model) {
				missing = append(missing, fmt.Sprintf("%T", model))
			}
		}
		if len(missing) > 0 {
			return "", fmt.Errorf("missing tables for %s", strings.Join(missing, ", "))
		}
		return fmt.Sprintf("%d tables", len(models.All())), nil
	})

	record("server", func() (string, error) {
		code, err := utils.ProbeEndpoint(serverURL, "/metrics", utils.ProbeTimeout)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("metrics answered %d", code), nil
	})

	if report.Healthy() {
		log.Debug().Msg("Health check passed")
	}
	return report
}
