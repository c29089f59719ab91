package op_test

import (
	"testing"

	"github.com/jepsenhq/chronos/op"
	"github.com/stretchr/testify/require"
)

func TestTypeValidate(t *testing.T) {
	require.NoError(t, op.Ok.Validate())
	require.NoError(t, op.Invoke.Validate())
	require.Error(t, op.Type("bogus").Validate())
}

func TestProcessNemesis(t *testing.T) {
	require.True(t, op.Nemesis.IsNemesis())
	require.Equal(t, "nemesis", op.Nemesis.String())

	c := op.ClientProcess(3)
	require.False(t, c.IsNemesis())
	require.Equal(t, "3", c.String())
	require.NoError(t, c.Validate())

	bad := op.ClientProcess(-1)
	require.Error(t, bad.Validate())
}

func TestOperationValidate(t *testing.T) {
	o := op.Operation{Index: 0, Process: op.ClientProcess(0), Type: op.Ok, F: "read", Value: op.Scalar(1)}
	require.NoError(t, o.Validate())

	bad := o
	bad.Index = -1
	require.Error(t, bad.Validate())

	bad2 := o
	bad2.Type = "bogus"
	require.Error(t, bad2.Validate())
}

func TestMicroOpString(t *testing.T) {
	require.Equal(t, "r(x)=?", op.Read("x").String())
	require.Equal(t, "append(x,1)", op.Append("x", 1).String())
	require.Equal(t, "cas(x,1,2)", op.CAS("x", 1, 2).String())
}
