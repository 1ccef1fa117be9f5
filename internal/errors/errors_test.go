package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/terrain-api/internal/errors"
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
			message:  "seed is required",
			expected: "INVALID_ARGUMENT: seed is required",
		},
		{
			name:     "internal error",
			code:     errors.CodeInternal,
			message:  "png encode failed",
			expected: "INTERNAL: png encode failed",
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
	err := errors.InvalidArgument("bad mode").
		WithMeta("mode", "sepia").
		WithMeta("request_id", "req_1")

	s.Assert().Equal("sepia", err.Meta["mode"])
	s.Assert().Equal("req_1", err.Meta["request_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("short write")
	wrapped := errors.Wrap(baseErr, "failed to encode terrain image")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to encode terrain image", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.InvalidArgument("unknown noise kind")
	wrapped := errors.Wrapf(baseErr, "failed to build noise field for seed %d", 42)

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal("failed to build noise field for seed 42", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.Internal("boom").WithMeta("stage", "encode")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "encoder unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("encoder unavailable", wrapped.Message)
	s.Assert().Equal("encode", wrapped.Meta["stage"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
	s.Assert().Nil(errors.FromContext(nil))
}

func (s *ErrorsTestSuite) TestFromContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Assert().True(errors.IsCanceled(errors.FromContext(ctx.Err())))

	s.Assert().Equal(errors.CodeDeadlineExceeded,
		errors.GetCode(errors.FromContext(context.DeadlineExceeded)))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.InvalidArgument("a")
	err2 := errors.InvalidArgument("b")
	err3 := errors.Internal("a")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
	s.Assert().True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	invalidErr := errors.InvalidArgument("test")
	wrappedErr := errors.Wrap(invalidErr, "wrapped")

	s.Assert().True(errors.IsInvalidArgument(wrappedErr))
	s.Assert().False(errors.IsInternal(wrappedErr))
	s.Assert().True(errors.IsInternal(fmt.Errorf("plain")))
	s.Assert().True(errors.IsNotFound(errors.NotFound("route")))
	s.Assert().True(errors.IsUnavailable(errors.Unavailable("draining")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("x")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.InvalidArgument("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeOutOfRange, 400},
		{errors.CodeNotFound, 404},
		{errors.CodeCanceled, 408},
		{errors.CodeInternal, 500},
		{errors.CodeUnavailable, 503},
		{errors.CodeDeadlineExceeded, 504},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	grpcErr := errors.ToGRPCError(errors.InvalidArgument("bad seed"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.InvalidArgument, st.Code())
	s.Assert().Equal("bad seed", st.Message())

	converted := errors.FromGRPCError(status.Error(codes.Unavailable, "not serving"))
	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(converted))
	s.Assert().Equal("not serving", errors.GetMessage(converted))

	plain := fmt.Errorf("not a status")
	s.Assert().Equal(codes.Internal, status.Code(errors.ToGRPCError(plain)))
	s.Assert().Nil(errors.ToGRPCError(nil))
}
