package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeInvalidQuantity, "invalid quantity")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidQuantity, err.Code)
	suite.Equal("invalid quantity", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeInsufficientCash, "insufficient cash, max buy: %d", 10)
	suite.NotNil(err)
	suite.Equal(ErrCodeInsufficientCash, err.Code)
	suite.Equal("insufficient cash, max buy: 10", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeQuoteFetchFailed, "failed to fetch quote", cause)
	suite.NotNil(err)
	suite.Equal(ErrCodeQuoteFetchFailed, err.Code)
	suite.Equal("failed to fetch quote", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("connection refused")
	err := Wrapf(ErrCodeHistoryFetchFailed, cause, "failed to fetch history for %s", "AAPL")
	suite.NotNil(err)
	suite.Equal(ErrCodeHistoryFetchFailed, err.Code)
	suite.Equal("failed to fetch history for AAPL", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestErrorString() {
	err := New(ErrCodeSymbolRequired, "symbol is required")
	suite.Equal("[100] symbol is required", err.Error())
}

func (suite *ErrorTestSuite) TestErrorStringWithCause() {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeQuoteFetchFailed, "failed to fetch quote", cause)
	suite.Equal("[200] failed to fetch quote: connection refused", err.Error())
}

func (suite *ErrorTestSuite) TestUnwrap() {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeAccountFetchFailed, "failed to fetch account", cause)
	suite.Equal(cause, errors.Unwrap(err))
	suite.True(errors.Is(err, cause))
}

func (suite *ErrorTestSuite) TestGetCode() {
	err := New(ErrCodeOrderRejected, "order rejected")
	suite.Equal(ErrCodeOrderRejected, GetCode(err))
	suite.Equal(ErrCodeUnknown, GetCode(errors.New("plain error")))
	suite.Equal(ErrCodeUnknown, GetCode(nil))
}

func (suite *ErrorTestSuite) TestGetCodeWrapped() {
	inner := New(ErrCodeOrderRejected, "order rejected")
	outer := fmt.Errorf("submit failed: %w", inner)
	suite.Equal(ErrCodeOrderRejected, GetCode(outer))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeSubmissionInFlight, "submission already in flight")
	suite.True(HasCode(err, ErrCodeSubmissionInFlight))
	suite.False(HasCode(err, ErrCodeOrderRejected))
}

func (suite *ErrorTestSuite) TestBackendError() {
	err := NewBackendError(400, "insufficient funds")
	suite.Equal("insufficient funds", err.Error())
	suite.True(IsBackendError(err))
	suite.Equal("insufficient funds", BackendDetail(err))
}

func (suite *ErrorTestSuite) TestBackendErrorNoDetail() {
	err := NewBackendError(502, "")
	suite.Equal("backend returned status 502", err.Error())
	suite.Equal("", BackendDetail(err))
}

func (suite *ErrorTestSuite) TestBackendErrorWrapped() {
	inner := NewBackendError(400, "market closed")
	outer := Wrap(ErrCodeOrderRejected, "order rejected", inner)
	suite.True(IsBackendError(outer))
	suite.Equal("market closed", BackendDetail(outer))
}

func (suite *ErrorTestSuite) TestIsNotBackendError() {
	suite.False(IsBackendError(errors.New("plain error")))
	suite.Equal("", BackendDetail(errors.New("plain error")))
}
