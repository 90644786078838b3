// Package service orchestrates a single home energy analysis: it validates
// the raw request, runs the estimator, the recommendation rules and the
// temperature profile, and assembles the response.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"home_energy_coach/internal/energy/domain"
	"home_energy_coach/internal/energy/transport"
	"home_energy_coach/platform/apperr"
	"home_energy_coach/platform/logger"
	"home_energy_coach/platform/validator"

	playground "github.com/go-playground/validator/v10"
)

const (
	msgInvalidBody = "invalid request body"

	// optimizedShare is the fraction of current usage the optimized
	// scenario keeps in every category.
	optimizedShare = 0.8

	buildingTypeTag = "buildingtype"
)

// Service runs analyses against a fixed set of tables.
type Service struct {
	tables    *domain.Tables
	estimator *domain.Estimator
	val       *validator.Validator
	log       *logger.Logger
	now       func() time.Time
}

// New creates the analysis service and registers the building type rule on
// val.
func New(tables *domain.Tables, val *validator.Validator, log *logger.Logger) (*Service, error) {
	s := &Service{
		tables:    tables,
		estimator: domain.NewEstimator(tables),
		val:       val,
		log:       log,
		now:       time.Now,
	}
	if err := val.RegisterValidation(buildingTypeTag, s.validBuildingType); err != nil {
		return nil, fmt.Errorf("register %s validation: %w", buildingTypeTag, err)
	}
	return s, nil
}

// SetClock replaces the time source used for analysis timestamps.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) validBuildingType(fl playground.FieldLevel) bool {
	_, ok := s.tables.BuildingType(domain.BuildingType(fl.Field().String()))
	return ok
}

// Analyze decodes and validates raw, then computes the analysis.
func (s *Service) Analyze(ctx context.Context, raw []byte) (transport.AnalysisResponse, error) {
	req, err := s.decode(raw)
	if err != nil {
		return transport.AnalysisResponse{}, err
	}

	home := req.HomeProfile()
	current, err := s.estimator.Estimate(home)
	if err != nil {
		if apperr.GetKind(err) == apperr.KindUnknown {
			err = apperr.Wrap(apperr.KindInternal, err).WithOp("analyze")
		}
		return transport.AnalysisResponse{}, err
	}

	recommendations := domain.Recommend(home)
	optimized := current.Scale(optimizedShare)
	savings := domain.Round1(current.Total() - optimized.Total())

	s.log.WithContext(ctx).Analysis(string(home.BuildingType), len(home.Rooms), len(home.Windows), len(recommendations), savings)

	return transport.AnalysisResponse{
		Success:            true,
		CurrentUsage:       current,
		OptimizedUsage:     optimized,
		Recommendations:    recommendations,
		TemperatureProfile: domain.SynthesizeProfile(home),
		PotentialSavings:   savings,
		AnalysisTimestamp:  s.now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *Service) decode(raw []byte) (transport.AnalyzeRequest, error) {
	var req transport.AnalyzeRequest

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return req, apperr.Validation(msgInvalidBody)
	}
	for _, name := range transport.RequiredFields {
		if _, ok := fields[name]; !ok {
			return req, apperr.MissingField(name)
		}
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		return req, apperr.Validation(msgInvalidBody)
	}

	if err := s.val.Struct(req); err != nil {
		fe, ok := validator.FirstFieldError(err)
		if !ok {
			return req, apperr.Wrap(apperr.KindInternal, err).WithOp("validate")
		}
		if fe.Field == transport.FieldBuildingType {
			return req, apperr.Validation(fmt.Sprintf("Invalid building_type: %v", fe.Value))
		}
		return req, apperr.Validation(fmt.Sprintf("invalid %s", fe.Field))
	}
	return req, nil
}
