package summary_test

import (
	"context"
	"math"
	"slices"
	"testing"

	"go.llib.dev/algokit/internal/summary"
	"go.llib.dev/algokit/pkg/logger"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func TestOf(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		values = testcase.Let(s, func(t *testcase.T) []float64 {
			return []float64{11, 0.5, -97.23, -23.11, 48.78, 22.96, -77}
		})
	)
	act := func(t *testcase.T) (summary.Summary, error) {
		return summary.Of(context.Background(), values.Get(t))
	}

	s.Then("the extremes are found", func(t *testcase.T) {
		got, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, 7, got.Count)
		assert.Equal(t, -97.23, got.Min)
		assert.Equal(t, 48.78, got.Max)
	})

	s.Then("the median is the middle value", func(t *testcase.T) {
		got, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, 0.5, got.Median)
	})

	s.Then("sum and mean agree", func(t *testcase.T) {
		got, err := act(t)
		assert.NoError(t, err)
		assert.True(t, math.Abs(got.Sum-(-114.1)) < 1e-9)
		assert.True(t, math.Abs(got.Mean-got.Sum/7) < 1e-9)
	})

	s.Then("the input is left untouched", func(t *testcase.T) {
		og := slices.Clone(values.Get(t))
		_, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, og, values.Get(t))
	})

	s.When("values are ranking points", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []float64 {
			return []float64{8445, 7480, 6220, 5300, 5285}
		})

		s.Then("the smallest gap is between the two closest values", func(t *testcase.T) {
			got, err := act(t)
			assert.NoError(t, err)
			assert.NotNil(t, got.MinGap)
			assert.Equal(t, 15.0, *got.MinGap)
		})
	})

	s.When("every value is the same", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []float64 {
			return slices.Repeat([]float64{42}, t.Random.IntBetween(2, 16))
		})

		s.Then("there is no spread", func(t *testcase.T) {
			got, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, 42.0, got.Mean)
			assert.Equal(t, 0.0, got.StdDev)
			assert.Equal(t, 0.0, *got.MinGap)
		})
	})

	s.When("there is a single value", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []float64 {
			return []float64{t.Random.Float64()}
		})

		s.Then("it is every statistic", func(t *testcase.T) {
			got, err := act(t)
			assert.NoError(t, err)
			v := values.Get(t)[0]
			assert.Equal(t, 1, got.Count)
			assert.Equal(t, v, got.Min)
			assert.Equal(t, v, got.Max)
			assert.Equal(t, v, got.Median)
			assert.Equal(t, 0.0, got.StdDev)
			assert.Nil(t, got.MinGap)
		})
	})

	s.When("there are no values", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []float64 { return nil })

		s.Then("ErrEmpty is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, summary.ErrEmpty)
		})
	})

	s.When("the values overflow float64 when summed", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []float64 { return []float64{1e308, 1e308} })

		s.Then("ErrNotFinite is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, summary.ErrNotFinite)
		})
	})

	s.When("a value is not finite", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []float64 {
			return []float64{1, random.Pick(t.Random, math.NaN(), math.Inf(1), math.Inf(-1)), 3}
		})

		s.Then("ErrNotFinite is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, summary.ErrNotFinite)
			assert.Contain(t, err.Error(), "values[1]")
		})
	})

	s.Test("min and max bound the median", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(1, 128), func() float64 {
			return float64(t.Random.IntBetween(-1000, 1000))
		})
		got, err := summary.Of(context.Background(), vs)
		assert.NoError(t, err)
		assert.True(t, got.Min <= got.Median && got.Median <= got.Max)
		assert.True(t, got.Min <= got.Mean && got.Mean <= got.Max)
	})
}

func TestOf_logging(t *testing.T) {
	buf := logger.Stub(t)
	_, err := summary.Of(context.Background(), []float64{1, 2, 3})
	assert.NoError(t, err)
	assert.Contain(t, buf.String(), "summary computed")
}

func TestSummary_Round(t *testing.T) {
	gap := 0.123456
	s := summary.Summary{Count: 2, Min: 1.005, Max: 2.71828, Mean: 1.86164, MinGap: &gap}

	assert.Equal(t, s, s.Round(-1))

	got := s.Round(2)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 2.72, got.Max)
	assert.Equal(t, 1.86, got.Mean)
	assert.Equal(t, 0.12, *got.MinGap)
	assert.Equal(t, 0.123456, gap, "original is not modified")
}
