package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fibCalc/internal/domain"
)

// run выполняет команду на свежем дереве и возвращает stdout и stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "memo по умолчанию", args: []string{"compute", "10"}, want: "F(10) = 89\n"},
		{name: "plain", args: []string{"compute", "9", "--strategy", "plain"}, want: "F(9) = 55\n"},
		{name: "ноль", args: []string{"compute", "0", "-s", "plain"}, want: "F(0) = 1\n"},
		{name: "последняя позиция", args: []string{"compute", "92"}, want: "F(92) = 12200160415121876738\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCompute_Errors(t *testing.T) {
	_, stderr, err := run(t, "compute", "--", "-1")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, stderr, "Position must be non-negative")

	_, _, err = run(t, "compute", "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, _, err = run(t, "compute", "5", "--strategy", "binet")
	assert.ErrorIs(t, err, domain.ErrUnknownStrategy)

	_, _, err = run(t, "compute", "36", "--strategy", "plain")
	assert.ErrorIs(t, err, domain.ErrPositionTooLarge)

	_, _, err = run(t, "compute", "93")
	assert.ErrorIs(t, err, domain.ErrPositionTooLarge)

	_, _, err = run(t, "compute")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, _, err := run(t, "compare", "20")

	require.NoError(t, err)
	assert.Contains(t, out, "STRATEGY")
	assert.Contains(t, out, "memo")
	assert.Contains(t, out, "plain")
	assert.Contains(t, out, "10946")
	assert.Contains(t, out, "speedup:")
}

func TestCompare_Errors(t *testing.T) {
	_, _, err := run(t, "compare", "--", "-2")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, _, err = run(t, "compare", "40")
	assert.ErrorIs(t, err, domain.ErrPositionTooLarge)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "fibonacci dev (commit: unknown, built: unknown)\n", out)
}
