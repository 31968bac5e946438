package fibonacci

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fibCalc/internal/domain"
)

// первые десять членов в нумерации F(0) = F(1) = 1
var firstTen = []uint64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}

func TestValidatePosition_Negative(t *testing.T) {
	called := false
	f := ValidatePosition(func(position int) (uint64, error) {
		called = true
		return 42, nil
	})

	v, err := f(-1)

	require.Error(t, err)
	assert.Zero(t, v)
	assert.False(t, called, "обёрнутая функция не должна вызываться")
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	assert.Equal(t, "Position must be non-negative", err.Error())

	var posErr *domain.InvalidPositionError
	require.ErrorAs(t, err, &posErr)
	assert.Equal(t, -1, posErr.Position)
}

func TestValidatePosition_PassThrough(t *testing.T) {
	sentinel := errors.New("boom")
	f := ValidatePosition(func(position int) (string, error) {
		if position == 7 {
			return "", sentinel
		}
		return "ok", nil
	})

	got, err := f(0)
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	_, err = f(7)
	assert.ErrorIs(t, err, sentinel, "ошибка f возвращается без изменений")
}

func TestRecurrence_BaseCases(t *testing.T) {
	never := func(int) (uint64, error) {
		t.Fatal("recurse не должен вызываться для базовых случаев")
		return 0, nil
	}
	for _, p := range []int{0, 1} {
		v, err := Recurrence(p, never)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), v)
	}
}

func TestRecurrence_Delegates(t *testing.T) {
	var asked []int
	recurse := func(position int) (uint64, error) {
		asked = append(asked, position)
		return uint64(position * 10), nil
	}

	v, err := Recurrence(5, recurse)

	require.NoError(t, err)
	assert.Equal(t, uint64(40+30), v)
	assert.Equal(t, []int{4, 3}, asked)
}

func TestRecurrence_PropagatesError(t *testing.T) {
	sentinel := errors.New("sub-problem failed")
	_, err := Recurrence(3, func(int) (uint64, error) { return 0, sentinel })
	assert.ErrorIs(t, err, sentinel)
}

func TestStrategies_FirstTerms(t *testing.T) {
	plain, memo := NewPlain(), NewMemo()
	for position, want := range firstTen {
		p, err := plain.Compute(position)
		require.NoError(t, err)
		m, err := memo.Compute(position)
		require.NoError(t, err)

		assert.Equal(t, want, p, "plain F(%d)", position)
		assert.Equal(t, want, m, "memo F(%d)", position)
	}
}

func TestStrategies_Agree(t *testing.T) {
	plain, memo := NewPlain(), NewMemo()
	for position := 0; position <= 25; position++ {
		p, err := plain.Compute(position)
		require.NoError(t, err)
		m, err := memo.Compute(position)
		require.NoError(t, err)
		assert.Equal(t, p, m, "позиция %d", position)
	}
}

func TestStrategies_RejectNegative(t *testing.T) {
	for _, s := range []Strategy{NewPlain(), NewMemo()} {
		t.Run(s.Name(), func(t *testing.T) {
			for _, position := range []int{-1, -2, -100} {
				_, err := s.Compute(position)
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
				assert.Contains(t, err.Error(), "non-negative")
			}
		})
	}
}

func TestMemo_NegativeLeavesCacheEmpty(t *testing.T) {
	memo := NewMemo()
	_, err := memo.Compute(-5)
	require.Error(t, err)
	assert.Zero(t, memo.Len())
}

func TestMemo_Idempotent(t *testing.T) {
	memo := NewMemo()
	first, err := memo.Compute(40)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := memo.Compute(40)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, 41, memo.Len(), "повторные вызовы не добавляют записей")
}

func TestMemo_CacheCoversDescent(t *testing.T) {
	memo := NewMemo()
	_, err := memo.Compute(20)
	require.NoError(t, err)

	assert.Equal(t, 21, memo.Len())
	for position := 0; position <= 20; position++ {
		v, ok := memo.Cached(position)
		require.True(t, ok, "позиция %d должна быть в кэше", position)
		want, err := NewPlain().Compute(position)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, ok := memo.Cached(21)
	assert.False(t, ok)

	positions := memo.Positions()
	assert.Len(t, positions, 21)
	assert.Equal(t, 0, positions[0])
	assert.Equal(t, 20, positions[20])
}

func TestMemo_CacheGrowsMonotonically(t *testing.T) {
	memo := NewMemo()
	_, err := memo.Compute(10)
	require.NoError(t, err)
	assert.Equal(t, 11, memo.Len())

	_, err = memo.Compute(5)
	require.NoError(t, err)
	assert.Equal(t, 11, memo.Len(), "меньшая позиция уже в кэше")

	_, err = memo.Compute(15)
	require.NoError(t, err)
	assert.Equal(t, 16, memo.Len())
}

func TestMemo_MaxPosition(t *testing.T) {
	memo := NewMemo()
	v, err := memo.Compute(MaxPosition)
	require.NoError(t, err)
	assert.Equal(t, uint64(12200160415121876738), v)
}

// Счётчик вызовов строится так же, как Plain: рекурсия через саму себя без кэша.
func TestPlain_ExponentialCalls(t *testing.T) {
	calls := 0
	var counted Func
	counted = func(position int) (uint64, error) {
		calls++
		return Recurrence(position, counted)
	}

	_, err := counted(20)
	require.NoError(t, err)

	// число вызовов для позиции n равно 2*F(n) - 1
	assert.Equal(t, 2*10946-1, calls)
}

func TestMemo_LinearCalls(t *testing.T) {
	memo := NewMemo()
	calls := 0
	memo.recurse = func(position int) (uint64, error) {
		calls++
		return memo.Compute(position)
	}

	v, err := memo.Compute(30)
	require.NoError(t, err)
	assert.Equal(t, uint64(1346269), v)
	// каждая позиция 2..30 считается один раз и делает два подвызова
	assert.Equal(t, 2*29, calls)

	calls = 0
	_, err = memo.Compute(30)
	require.NoError(t, err)
	assert.Zero(t, calls, "повторный вызов берётся из кэша")
}

func TestStrategies_Lookup(t *testing.T) {
	s := NewStrategies()

	plain, err := s.Lookup("plain")
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyPlain, plain.Name())

	memo, err := s.Lookup("memo")
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyMemo, memo.Name())

	_, err = s.Lookup("binet")
	assert.ErrorIs(t, err, domain.ErrUnknownStrategy)
}

func TestMemoFasterThanPlain(t *testing.T) {
	if testing.Short() {
		t.Skip("замер производительности пропускается в short режиме")
	}
	const position = 30

	memo, plain := NewMemo(), NewPlain()

	start := time.Now()
	memoValue, err := memo.Compute(position)
	memoTime := time.Since(start)
	require.NoError(t, err)

	start = time.Now()
	plainValue, err := plain.Compute(position)
	plainTime := time.Since(start)
	require.NoError(t, err)

	assert.Equal(t, uint64(1346269), memoValue)
	assert.Equal(t, plainValue, memoValue)
	assert.LessOrEqual(t, memoTime*10, plainTime,
		"memo (%s) должен быть минимум в 10 раз быстрее plain (%s)", memoTime, plainTime)
	t.Logf("position %d: memo %s, plain %s", position, memoTime, plainTime)
}
