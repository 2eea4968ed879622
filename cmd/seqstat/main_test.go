package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
	"go.llib.dev/algokit/internal/summary"
	"go.llib.dev/algokit/pkg/logger"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func Test_run(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		logs   = testcase.Let(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
		stdin  = testcase.LetValue(s, "8445 7480 6220 5300 5285")
		stdout = testcase.Let(s, func(t *testcase.T) *bytes.Buffer { return &bytes.Buffer{} })
		args   = testcase.Let(s, func(t *testcase.T) []string { return nil })
	)
	s.Before(func(t *testcase.T) {
		testcase.UnsetEnv(t, "SEQSTAT_PRECISION")
		testcase.UnsetEnv(t, "SEQSTAT_STRICT")
		logger.Stub(t)
	})
	act := func(t *testcase.T) int {
		return run(context.Background(), strings.NewReader(stdin.Get(t)), stdout.Get(t), logs.Get(t), args.Get(t))
	}
	output := func(t *testcase.T) summary.Summary {
		var out summary.Summary
		assert.NoError(t, json.Unmarshal(stdout.Get(t).Bytes(), &out))
		return out
	}

	s.Then("the summary is written as JSON", func(t *testcase.T) {
		assert.Equal(t, exitOK, act(t))
		out := output(t)
		assert.Equal(t, 5, out.Count)
		assert.Equal(t, 5285.0, out.Min)
		assert.Equal(t, 8445.0, out.Max)
		assert.Equal(t, 6220.0, out.Median)
		assert.NotNil(t, out.MinGap)
		assert.Equal(t, 15.0, *out.MinGap)
	})

	s.Then("every log line carries the same run id", func(t *testcase.T) {
		act(t)
		var runIDs []string
		dec := json.NewDecoder(logs.Get(t))
		for dec.More() {
			var entry map[string]any
			assert.NoError(t, dec.Decode(&entry))
			runIDs = append(runIDs, entry["run_id"].(string))
		}
		assert.NotEmpty(t, runIDs)
		for _, id := range runIDs {
			assert.Equal(t, runIDs[0], id)
		}
		_, err := uuid.FromString(runIDs[0])
		assert.NoError(t, err)
	})

	s.When("precision is given", func(s *testcase.Spec) {
		stdin.LetValue(s, "1 2 2")
		args.Let(s, func(t *testcase.T) []string { return []string{"-precision", "2"} })

		s.Then("values are rounded", func(t *testcase.T) {
			assert.Equal(t, exitOK, act(t))
			assert.Equal(t, 1.67, output(t).Mean)
		})
	})

	s.When("precision comes from the environment", func(s *testcase.Spec) {
		stdin.LetValue(s, "1 2 2")
		s.Before(func(t *testcase.T) {
			testcase.SetEnv(t, "SEQSTAT_PRECISION", "1")
		})

		s.Then("values are rounded", func(t *testcase.T) {
			assert.Equal(t, exitOK, act(t))
			assert.Equal(t, 1.7, output(t).Mean)
		})

		s.And("the flag is given too", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string { return []string{"-precision", "3"} })

			s.Then("the flag wins", func(t *testcase.T) {
				assert.Equal(t, exitOK, act(t))
				assert.Equal(t, 1.667, output(t).Mean)
			})
		})
	})

	s.When("the environment holds an invalid precision", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			testcase.SetEnv(t, "SEQSTAT_PRECISION", "two")
		})

		s.Then("it fails with a usage error", func(t *testcase.T) {
			assert.Equal(t, exitUsage, act(t))
			assert.Contain(t, logs.Get(t).String(), "invalid configuration")
		})
	})

	s.When("an unknown flag is given", func(s *testcase.Spec) {
		args.Let(s, func(t *testcase.T) []string { return []string{"-verbose"} })

		s.Then("it fails with a usage error", func(t *testcase.T) {
			assert.Equal(t, exitUsage, act(t))
			assert.Empty(t, stdout.Get(t).String())
		})
	})

	s.When("the input has a malformed token", func(s *testcase.Spec) {
		stdin.LetValue(s, "1.5 2.5 3.5 four 5")

		s.Then("numbers before it are summarised", func(t *testcase.T) {
			assert.Equal(t, exitOK, act(t))
			out := output(t)
			assert.Equal(t, 3, out.Count)
			assert.Equal(t, 7.5, out.Sum)
			assert.Contain(t, logs.Get(t).String(), `"level":"warn"`)
		})

		s.And("strict mode is on", func(s *testcase.Spec) {
			args.Let(s, func(t *testcase.T) []string { return []string{"-strict"} })

			s.Then("it fails", func(t *testcase.T) {
				assert.Equal(t, exitFail, act(t))
				assert.Empty(t, stdout.Get(t).String())
			})
		})
	})

	s.When("the input has a non-finite token", func(s *testcase.Spec) {
		stdin.LetValue(s, "1 NaN 3")

		s.Then("numbers before it are summarised", func(t *testcase.T) {
			assert.Equal(t, exitOK, act(t))
			out := output(t)
			assert.Equal(t, 1, out.Count)
			assert.Equal(t, 1.0, out.Sum)
			assert.Contain(t, logs.Get(t).String(), "NaN")
		})
	})

	s.When("the sum of the input overflows float64", func(s *testcase.Spec) {
		stdin.LetValue(s, "1e308 1e308")

		s.Then("it fails without writing a partial summary", func(t *testcase.T) {
			assert.Equal(t, exitFail, act(t))
			assert.Empty(t, stdout.Get(t).String())
			assert.Contain(t, logs.Get(t).String(), "float64")
		})
	})

	s.Then("nothing but the summary is written to stdout", func(t *testcase.T) {
		assert.Equal(t, exitOK, act(t))
		assert.Equal(t, 1, strings.Count(stdout.Get(t).String(), "\n"))
		assert.Contain(t, logs.Get(t).String(), "summary written")
	})

	s.When("there are no numbers", func(s *testcase.Spec) {
		stdin.LetValue(s, "  \n")

		s.Then("it fails", func(t *testcase.T) {
			assert.Equal(t, exitFail, act(t))
			assert.Empty(t, stdout.Get(t).String())
			assert.Contain(t, logs.Get(t).String(), "no numbers")
		})
	})
}

func Test_run_atpScenario(t *testing.T) {
	logger.Stub(t)
	testcase.UnsetEnv(t, "SEQSTAT_PRECISION")
	testcase.UnsetEnv(t, "SEQSTAT_STRICT")
	var out bytes.Buffer
	code := run(context.Background(), strings.NewReader("5285 5300\n6220\t7480 8445"), &out, io.Discard, []string{"-precision", "0"})
	require.Equal(t, exitOK, code)
	require.Contains(t, out.String(), `"min_gap":15`)
}
