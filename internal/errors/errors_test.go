package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/card-forge/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "description is required",
			expected: "INVALID_ARGUMENT: description is required",
		},
		{
			name:     "generation error",
			code:     errors.CodeGeneration,
			message:  "model returned no JSON",
			expected: "GENERATION_FAILED: model returned no JSON",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.ItemTypeExhausted("no unused type").
		WithMeta("category", "Weapon").
		WithMeta("attempts", 3)

	s.Assert().Equal("Weapon", err.Meta["category"])
	s.Assert().Equal(3, err.Meta["attempts"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to reach image provider")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to reach image provider", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Contains(wrapped.Error(), "connection refused")
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.Generation("empty candidates")
	wrapped := errors.Wrap(baseErr, `creature for "fire dragon"`)

	s.Assert().Equal(errors.CodeGeneration, wrapped.Code)
	s.Assert().Equal(`creature for "fire dragon"`, wrapped.Message)
	s.Assert().True(errors.IsGeneration(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("status 500")
	wrapped := errors.WrapWithCodef(baseErr, errors.CodeImageGeneration, "horde request %s failed", "abc")

	s.Assert().Equal(errors.CodeImageGeneration, wrapped.Code)
	s.Assert().Equal("horde request abc failed", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"Unavailable", func() *errors.Error { return errors.Unavailable("test") }, errors.CodeUnavailable},
		{"Generation", func() *errors.Error { return errors.Generation("test") }, errors.CodeGeneration},
		{"ImageGeneration", func() *errors.Error { return errors.ImageGeneration("test") }, errors.CodeImageGeneration},
		{"ItemTypeExhausted", func() *errors.Error { return errors.ItemTypeExhausted("test") }, errors.CodeItemTypeExhausted},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.ItemTypeExhaustedf("no unused %s type", "Armor")
	s.Assert().Equal(errors.CodeItemTypeExhausted, err.Code)
	s.Assert().Equal("no unused Armor type", err.Message)

	err2 := errors.ImageGenerationf("generation %s faulted", "xyz")
	s.Assert().Equal(errors.CodeImageGeneration, err2.Code)
	s.Assert().Equal("generation xyz faulted", err2.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.Generation("a")
	err2 := errors.Generation("b")
	err3 := errors.ImageGeneration("a")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
	s.Assert().ErrorIs(errors.Wrap(err1, "wrapped"), err2)
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	genErr := errors.Generation("test")
	imgErr := errors.ImageGeneration("test")
	exhausted := errors.Wrap(errors.ItemTypeExhausted("test"), "wrapped")

	s.Assert().True(errors.IsGeneration(genErr))
	s.Assert().False(errors.IsGeneration(imgErr))
	s.Assert().True(errors.IsImageGeneration(imgErr))
	s.Assert().True(errors.IsItemTypeExhausted(exhausted))
	s.Assert().False(errors.IsItemTypeExhausted(genErr))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeNotFound, 404},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeInternal, 500},
		{errors.CodeUnavailable, 503},
		{errors.CodeGeneration, 503},
		{errors.CodeImageGeneration, 502},
		{errors.CodeItemTypeExhausted, 409},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.ItemTypeExhausted("no unused Weapon type").
		WithMeta("category", "Weapon")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.ResourceExhausted, st.Code())
	s.Assert().Equal("no unused Weapon type", st.Message())

	// round trip restores the domain code from details
	back := errors.FromGRPCError(grpcErr)
	s.Assert().Equal(errors.CodeItemTypeExhausted, errors.GetCode(back))
	s.Assert().Equal("Weapon", errors.GetMeta(back)["category"])

	grpcErr2 := status.Error(codes.InvalidArgument, "invalid input")
	err2 := errors.FromGRPCError(grpcErr2)
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(err2))
	var custom *errors.Error
	s.Require().True(errors.As(err2, &custom))
	s.Assert().Equal("invalid input", custom.Message)
}

func (s *ErrorsTestSuite) TestToGRPCErrorPassthrough() {
	s.Assert().Nil(errors.ToGRPCError(nil))

	already := status.Error(codes.Unavailable, "down")
	s.Assert().Equal(already, errors.ToGRPCError(already))

	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("plain")))
	s.Require().True(ok)
	s.Assert().Equal(codes.Internal, st.Code())
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.CodeGeneration, codes.Unavailable},
		{errors.CodeImageGeneration, codes.Unavailable},
		{errors.CodeItemTypeExhausted, codes.ResourceExhausted},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
