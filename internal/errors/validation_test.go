package errors_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/terrain-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("seed", "is required")
	ve.AddFieldErrorf("octaves", "must be between %d and %d", 1, 16)

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: octaves: must be between 1 and 16; seed: is required",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("rooms").
		InvalidField("seed", "not an unsigned 32-bit integer")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "rooms: is required")
	s.Assert().Contains(err.Error(), "seed: is invalid: not an unsigned 32-bit integer")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "4", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("rooms", tc.value, vb)
			if tc.shouldErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("octaves", 0, 1, 16, vb)
	s.Assert().Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("octaves", 16, 1, 16, vb)
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateFinite() {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		vb := errors.NewValidationBuilder()
		errors.ValidateFinite("persistence", v, vb)
		s.Assert().Error(vb.Build())
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateFinite("persistence", 0.5, vb)
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("mode", "sepia", []string{"grayscale", "default", "custom"}, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "must be one of: grayscale, default, custom")

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("mode", "custom", []string{"grayscale", "default", "custom"}, vb)
	s.Assert().NoError(vb.Build())
}
