package historygen_test

import (
	"context"
	"testing"

	"github.com/jepsenhq/chronos/anomaly"
	"github.com/jepsenhq/chronos/checker"
	"github.com/jepsenhq/chronos/historygen"
	"github.com/jepsenhq/chronos/model"
	"github.com/stretchr/testify/require"
)

func TestS1DetectsG0(t *testing.T) {
	h := historygen.S1()
	r, err := checker.Transactional(context.Background(), h, checker.Options{})
	require.NoError(t, err)
	require.Equal(t, checker.Invalid, r.Valid)
	require.NotEmpty(t, r.Anomalies)
}

func TestS2DetectsG1a(t *testing.T) {
	h := historygen.S2()
	r, err := checker.Transactional(context.Background(), h, checker.Options{})
	require.NoError(t, err)
	require.Equal(t, checker.Invalid, r.Valid)
	found := false
	for _, w := range r.Anomalies {
		if w.Kind == anomaly.G1a {
			found = true
		}
	}
	require.True(t, found)
}

func TestS3DetectsG1c(t *testing.T) {
	h := historygen.S3()
	r, err := checker.Transactional(context.Background(), h, checker.Options{})
	require.NoError(t, err)
	require.Equal(t, checker.Invalid, r.Valid)
}

func TestS4LinearizesCleanly(t *testing.T) {
	r, err := checker.Linearizable(context.Background(), historygen.S4(), checker.Options{Model: model.CASRegister{}})
	require.NoError(t, err)
	require.Equal(t, checker.Valid, r.Valid)
	require.Nil(t, r.Counterexample)
}

func TestS5RejectsStaleRead(t *testing.T) {
	r, err := checker.Linearizable(context.Background(), historygen.S5(), checker.Options{Model: model.CASRegister{}})
	require.NoError(t, err)
	require.Equal(t, checker.Invalid, r.Valid)
	require.NotNil(t, r.Counterexample)
}

func TestS6DetectsInternalViolation(t *testing.T) {
	h := historygen.S6()
	witnesses := anomaly.DetectInternal(h)
	require.NotEmpty(t, witnesses)
	require.Equal(t, anomaly.Internal, witnesses[0].Kind)
}

func TestRandomCASRegisterRequiresSeed(t *testing.T) {
	_, err := historygen.Build(nil, historygen.RandomCASRegister("x", 20, 3))
	require.ErrorIs(t, err, historygen.ErrNoSeed)
}

func TestRandomCASRegisterIsLinearizableByConstruction(t *testing.T) {
	h, err := historygen.Build([]historygen.Option{historygen.WithSeed(42)}, historygen.RandomCASRegister("x", 24, 3))
	require.NoError(t, err)
	require.Equal(t, 48, h.Len()) // each of the 24 logical ops contributes an invoke and a completion

	r, err := checker.Linearizable(context.Background(), h, checker.Options{Model: model.CASRegister{}})
	require.NoError(t, err)
	require.Equal(t, checker.Valid, r.Valid, "expected a linearization, got counterexample: %+v", r.Counterexample)
}

func TestRandomCASRegisterIsDeterministic(t *testing.T) {
	opts := []historygen.Option{historygen.WithSeed(7)}
	h1, err := historygen.Build(opts, historygen.RandomCASRegister("x", 16, 2))
	require.NoError(t, err)
	h2, err := historygen.Build(opts, historygen.RandomCASRegister("x", 16, 2))
	require.NoError(t, err)
	require.Equal(t, h1.All(), h2.All())
}

func TestBuildRejectsNilConstructor(t *testing.T) {
	_, err := historygen.Build(nil, nil)
	require.ErrorIs(t, err, historygen.ErrNilConstructor)
}
