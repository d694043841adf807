package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/skilltree-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	err := errors.New(errors.CodeNotFound, "build not found")

	s.Equal("NOT_FOUND: build not found", err.Error())
	s.Equal(errors.CodeNotFound, err.Code)
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("build not found").WithMeta("session_id", "build_1")
	wrapped := errors.Wrap(baseErr, "failed to load build")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("failed to load build", wrapped.Message)
	s.Equal("build_1", errors.GetMeta(wrapped)["session_id"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	wrapped := errors.Wrap(fmt.Errorf("connection refused"), "failed to save build")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.EqualError(wrapped, "INTERNAL: failed to save build: connection refused")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("illegal base64 data at input byte 3")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInvalidArgument, "malformed build token")

	s.Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestIsMatchesByCode() {
	s.True(errors.Is(errors.NotFound("a"), errors.NotFound("b")))
	s.False(errors.Is(errors.NotFound("a"), errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeDataLoss, errors.GetCode(errors.DataLoss("corrupt build")))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.NotFoundf("skill %s not found", "flyswatter").WithMeta("skill_id", "flyswatter")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("skill flyswatter not found", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsNotFound(back))
	s.Equal("flyswatter", errors.GetMeta(back)["skill_id"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlainError() {
	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.CodeDataLoss, codes.DataLoss},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
