package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	netErr := NetworkError("yahoo.GetRates", context.DeadlineExceeded)
	require.ErrorIs(t, netErr, ErrNetwork)
	require.ErrorIs(t, netErr, context.DeadlineExceeded)
	require.NotErrorIs(t, netErr, ErrParse)
	require.True(t, IsRetryable(netErr))

	parseErr := ParseError("yahoo.GetHistoricalRates", errors.New("bad date"))
	require.ErrorIs(t, parseErr, ErrParse)
	require.False(t, IsRetryable(parseErr))
	require.Contains(t, parseErr.Error(), "bad date")

	ni := NotImplemented("random.GetLatestRate")
	require.ErrorIs(t, ni, ErrNotImplemented)
	require.False(t, IsRetryable(ni))
	require.Equal(t, "random.GetLatestRate: provider operation not implemented", ni.Error())

	require.False(t, IsRetryable(errors.New("load pairs: connection refused")))
}
