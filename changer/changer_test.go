// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changer

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreedy(t *testing.T) {
	tests := []struct {
		name      string
		amount    int
		coins     []int
		want      Breakdown
		total     int
		remaining int
		success   bool
	}{
		{"us coins", 63, []int{1, 5, 10, 25}, Breakdown{25: 2, 10: 1, 1: 3}, 6, 0, true},
		{"non-canonical system", 6, []int{1, 3, 4}, Breakdown{4: 1, 1: 2}, 3, 0, true},
		{"leftover", 11, []int{5, 2}, Breakdown{5: 2}, 2, 1, false},
		{"zero amount", 0, []int{1, 5}, Breakdown{}, 0, 0, true},
		{"coin larger than amount", 3, []int{10, 1}, Breakdown{1: 3}, 3, 0, true},
		{"exact single coin", 25, []int{25, 10}, Breakdown{25: 1}, 1, 0, true},
		{"unsorted input", 93, []int{100, 1, 25, 50, 5, 10}, Breakdown{50: 1, 25: 1, 10: 1, 5: 1, 1: 3}, 7, 0, true},
		{"duplicates", 10, []int{5, 5, 1}, Breakdown{5: 2}, 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Greedy(tt.amount, tt.coins)

			if diff := cmp.Diff(tt.want, res.Breakdown); diff != "" {
				t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.total, res.TotalCoins)
			assert.Equal(t, tt.remaining, res.Remaining)
			assert.Equal(t, tt.success, res.Success)
			assert.Equal(t, AlgorithmGreedy, res.Algorithm)
		})
	}
}

func TestGreedy_Messages(t *testing.T) {
	assert.Equal(t, "Successfully made change using 6 coins", Greedy(63, []int{1, 5, 10, 25}).Message)
	assert.Equal(t, "Cannot make exact change. Remaining: 1", Greedy(11, []int{5, 2}).Message)
}

func TestGreedy_DoesNotMutateInput(t *testing.T) {
	coins := []int{1, 5, 10, 25}
	Greedy(63, coins)
	assert.Equal(t, []int{1, 5, 10, 25}, coins)
}

func TestDynamic(t *testing.T) {
	tests := []struct {
		name    string
		amount  int
		coins   []int
		want    Breakdown
		total   int
		success bool
	}{
		{"us coins", 63, []int{1, 5, 10, 25}, Breakdown{25: 2, 10: 1, 1: 3}, 6, true},
		{"beats greedy", 6, []int{1, 3, 4}, Breakdown{3: 2}, 2, true},
		{"even coins odd amount", 11, []int{6, 4}, Breakdown{}, -1, false},
		{"greedy leftover dp exact", 11, []int{5, 2}, Breakdown{5: 1, 2: 3}, 4, true},
		{"infeasible small", 7, []int{3, 5}, Breakdown{}, -1, false},
		{"zero amount", 0, []int{1, 5}, Breakdown{}, 0, true},
		{"rupee coins", 15, []int{1, 2, 5, 10, 20, 50, 100}, Breakdown{10: 1, 5: 1}, 2, true},
		{"greedy fails dp succeeds", 6, []int{5, 2}, Breakdown{2: 3}, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Dynamic(tt.amount, tt.coins)

			if diff := cmp.Diff(tt.want, res.Breakdown); diff != "" {
				t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.total, res.TotalCoins)
			assert.Equal(t, tt.success, res.Success)
			assert.Equal(t, AlgorithmDynamic, res.Algorithm)
		})
	}
}

func TestDynamic_Infeasible(t *testing.T) {
	res := Dynamic(11, []int{6, 4})

	assert.False(t, res.Success)
	assert.Equal(t, -1, res.TotalCoins)
	assert.Empty(t, res.Breakdown)
	assert.Equal(t, 11, res.Remaining)
	assert.Equal(t, MsgInfeasible, res.Message)
}

func TestDynamic_TieBreakFollowsInputOrder(t *testing.T) {
	// 4 = 1+3 = 2+2; both use two coins.
	first := Dynamic(4, []int{1, 2, 3})
	second := Dynamic(4, []int{2, 1, 3})

	assert.Equal(t, Breakdown{1: 1, 3: 1}, first.Breakdown)
	assert.Equal(t, Breakdown{2: 2}, second.Breakdown)
	assert.Equal(t, first.TotalCoins, second.TotalCoins)
}

func TestDynamic_UnitCoin(t *testing.T) {
	for amount := 0; amount <= 50; amount++ {
		res := Dynamic(amount, []int{1})
		require.True(t, res.Success, "amount %d", amount)
		assert.Equal(t, amount, res.TotalCoins)
	}
}

func TestSolverProperties(t *testing.T) {
	coinSets := [][]int{
		{1, 5, 10, 25},
		{1, 3, 4},
		{5, 2},
		{3, 7, 11},
		{1, 2, 5, 10, 20, 50, 100, 500, 2000},
		{9, 6, 1},
	}

	for _, coins := range coinSets {
		for amount := 0; amount <= 150; amount++ {
			g := Greedy(amount, coins)
			d := Dynamic(amount, coins)

			if g.Success && d.Success {
				require.LessOrEqual(t, d.TotalCoins, g.TotalCoins, "coins %v amount %d", coins, amount)
			}
			if g.Success {
				require.Equal(t, amount, g.Breakdown.Value(), "greedy coins %v amount %d", coins, amount)
			} else {
				require.Equal(t, amount, g.Breakdown.Value()+g.Remaining)
			}
			if d.Success {
				require.Equal(t, amount, d.Breakdown.Value(), "dynamic coins %v amount %d", coins, amount)
				require.Equal(t, d.TotalCoins, d.Breakdown.Total())
			}
		}
	}
}

func TestCompare(t *testing.T) {
	t.Run("greedy optimal", func(t *testing.T) {
		c := Compare(63, []int{1, 5, 10, 25})

		assert.True(t, c.Summary.GreedyIsOptimal)
		require.NotNil(t, c.Summary.Difference)
		assert.Equal(t, 0, *c.Summary.Difference)
		assert.Equal(t, RecommendEquivalent, c.Summary.Recommendation)
		assert.Equal(t, 63, c.Amount)
		assert.Equal(t, []int{1, 5, 10, 25}, c.Coins)
	})

	t.Run("greedy suboptimal", func(t *testing.T) {
		c := Compare(6, []int{1, 3, 4})

		assert.False(t, c.Summary.GreedyIsOptimal)
		require.NotNil(t, c.Summary.Difference)
		assert.Equal(t, 1, *c.Summary.Difference)
		assert.Equal(t, RecommendDynamic, c.Summary.Recommendation)
		assert.Equal(t, 3, c.Greedy.TotalCoins)
		assert.Equal(t, 2, c.Dynamic.TotalCoins)
	})

	t.Run("greedy failed", func(t *testing.T) {
		c := Compare(6, []int{5, 2})

		assert.False(t, c.Summary.GreedyIsOptimal)
		assert.Nil(t, c.Summary.Difference)
		assert.Equal(t, RecommendGreedyFailed, c.Summary.Recommendation)
	})

	t.Run("greedy leftover", func(t *testing.T) {
		c := Compare(11, []int{5, 2})

		assert.False(t, c.Greedy.Success)
		assert.Equal(t, 1, c.Greedy.Remaining)
		assert.True(t, c.Dynamic.Success)
		assert.Equal(t, Breakdown{5: 1, 2: 3}, c.Dynamic.Breakdown)
		assert.Nil(t, c.Summary.Difference)
		assert.Equal(t, RecommendGreedyFailed, c.Summary.Recommendation)
	})

	t.Run("both failed", func(t *testing.T) {
		c := Compare(11, []int{6, 4})

		assert.False(t, c.Greedy.Success)
		assert.Equal(t, 2, c.Greedy.TotalCoins)
		assert.False(t, c.Dynamic.Success)
		assert.Equal(t, -1, c.Dynamic.TotalCoins)
		assert.False(t, c.Summary.GreedyIsOptimal)
		assert.Nil(t, c.Summary.Difference)
		assert.Equal(t, RecommendDynamic, c.Summary.Recommendation)
	})

	t.Run("both failed equal counts", func(t *testing.T) {
		// Greedy uses zero coins, which still exceeds the -1 of a failed dynamic run
		c := Compare(1, []int{2})

		assert.False(t, c.Greedy.Success)
		assert.False(t, c.Dynamic.Success)
		assert.Equal(t, RecommendDynamic, c.Summary.Recommendation)
	})
}

func TestSolve_Validation(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		coins  []int
		want   string
	}{
		{"negative amount", -1, []int{1}, MsgInvalidAmount},
		{"nil coins", 10, nil, MsgCoinsNotArray},
		{"empty coins", 10, []int{}, MsgCoinsNotArray},
		{"only invalid coins", 10, []int{0, -5}, MsgNoValidCoins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Solve(tt.amount, tt.coins, ModeDynamic)

			require.NotNil(t, out.Err)
			assert.Equal(t, tt.want, out.Err.Message)
			assert.Nil(t, out.Result)
			assert.Nil(t, out.Comparison)
			assert.False(t, out.Success())
		})
	}
}

func TestSolve_DropsInvalidCoins(t *testing.T) {
	out := Solve(6, []int{0, 3, -1}, ModeDynamic)

	require.NotNil(t, out.Result)
	assert.Equal(t, Breakdown{3: 2}, out.Result.Breakdown)
}

func TestSolve_Modes(t *testing.T) {
	tests := []struct {
		mode string
		want Algorithm
	}{
		{"greedy", AlgorithmGreedy},
		{"GREEDY", AlgorithmGreedy},
		{"dynamic", AlgorithmDynamic},
		{"dp", AlgorithmDynamic},
		{"", AlgorithmDynamic},
		{"simulated-annealing", AlgorithmDynamic},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			out := Solve(6, []int{1, 3, 4}, ParseMode(tt.mode))
			require.NotNil(t, out.Result)
			assert.Equal(t, tt.want, out.Result.Algorithm)
		})
	}

	for _, mode := range []string{"both", "compare", "Compare"} {
		out := Solve(6, []int{1, 3, 4}, ParseMode(mode))
		require.NotNil(t, out.Comparison, mode)
	}
}

func TestDecodeInput(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		coins     string
		wantAmt   int
		wantCoins []int
		wantErr   error
	}{
		{"plain", `63`, `[1,5,10,25]`, 63, []int{1, 5, 10, 25}, nil},
		{"integral float", `5.0`, `[1]`, 5, []int{1}, nil},
		{"mixed coins", `10`, `[1, 2.5, "x", null, -4, 0, 5]`, 10, []int{1, 5}, nil},
		{"fractional amount", `5.5`, `[1]`, 0, nil, ErrInvalidAmount},
		{"string amount", `"5"`, `[1]`, 0, nil, ErrInvalidAmount},
		{"negative amount", `-3`, `[1]`, 0, nil, ErrInvalidAmount},
		{"missing amount", ``, `[1]`, 0, nil, ErrInvalidAmount},
		{"null amount", `null`, `[1]`, 0, nil, ErrInvalidAmount},
		{"empty coins", `5`, `[]`, 0, nil, ErrCoinsNotArray},
		{"coins not array", `5`, `"1,2,5"`, 0, nil, ErrCoinsNotArray},
		{"missing coins", `5`, ``, 0, nil, ErrCoinsNotArray},
		{"no valid coins", `5`, `[0, -1, 1.5]`, 0, nil, ErrNoValidCoins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amt, coins, err := DecodeInput(json.RawMessage(tt.amount), json.RawMessage(tt.coins))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmt, amt)
			assert.Equal(t, tt.wantCoins, coins)
		})
	}
}

func TestOutcome_JSON(t *testing.T) {
	out := Solve(0, []int{1, 5}, ModeDynamic)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": true,
		"totalCoins": 0,
		"breakdown": {},
		"remaining": 0,
		"algorithm": "dynamic",
		"message": "Optimal solution found using 0 coins"
	}`, string(data))

	data, err = json.Marshal(Solve(-1, []int{1}, ModeDynamic))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false, "message": "Amount must be a non-negative integer"}`, string(data))

	data, err = json.Marshal(Solve(11, []int{5, 2}, ModeBoth))
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	summary := decoded["comparison"].(map[string]any)
	assert.Nil(t, summary["difference"])
	assert.Equal(t, false, summary["greedyIsOptimal"])
}

func TestOutcome_RoundTrip(t *testing.T) {
	for _, want := range []Outcome{
		Solve(6, []int{1, 3, 4}, ModeBoth),
		Solve(6, []int{1, 3, 4}, ModeGreedy),
		Solve(6, nil, ModeGreedy),
	} {
		data, err := json.Marshal(want)
		require.NoError(t, err)

		var got Outcome
		require.NoError(t, json.Unmarshal(data, &got))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestSolve_Idempotent(t *testing.T) {
	first, err := json.Marshal(Solve(93, []int{1, 5, 10, 25, 50, 100}, ModeBoth))
	require.NoError(t, err)
	second, err := json.Marshal(Solve(93, []int{1, 5, 10, 25, 50, 100}, ModeBoth))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSolve_Concurrent(t *testing.T) {
	want := Compare(99, []int{1, 3, 4, 9})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := Compare(99, []int{1, 3, 4, 9})
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestBreakdown_String(t *testing.T) {
	assert.Equal(t, "2×25 + 1×10 + 3×1", Breakdown{25: 2, 10: 1, 1: 3}.String())
	assert.Equal(t, "None", Breakdown{}.String())
}

func TestParseDenominations(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"1, 5, 10, 25", []int{1, 5, 10, 25}},
		{"25,10,5,1", []int{1, 5, 10, 25}},
		{"10, abc, -3, 0, 25c, 1", []int{1, 10, 25}},
		{"", []int{}},
		{" , ,", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDenominations(tt.in))
		})
	}

	assert.Equal(t, "1,5,10", FormatDenominations([]int{1, 5, 10}))
}

func TestNewSeries(t *testing.T) {
	s, err := NewSeries(6, []int{1, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, s.Amounts)
	assert.Equal(t, []int{1, 2, 1, 1, 2, 3}, s.Greedy)
	assert.Equal(t, []int{1, 2, 1, 1, 2, 2}, s.Dynamic)
	assert.Equal(t, []int{6}, s.Suboptimal())
}

func TestNewSeries_Infeasible(t *testing.T) {
	s, err := NewSeries(6, []int{5, 2})
	require.NoError(t, err)

	assert.Equal(t, []int{-1, 1, -1, 2, 1, 3}, s.Dynamic)
	assert.Equal(t, []int{1, 0, 1, 0, 0, 1}, s.GreedyRemaining)
	assert.Equal(t, []int{6}, s.Suboptimal())
}

func TestNewSeries_MatchesSolvers(t *testing.T) {
	coins := []int{9, 6, 1}
	s, err := NewSeries(60, coins)
	require.NoError(t, err)

	for i, amount := range s.Amounts {
		assert.Equal(t, Dynamic(amount, coins).TotalCoins, s.Dynamic[i], "amount %d", amount)
		assert.Equal(t, Greedy(amount, coins).TotalCoins, s.Greedy[i], "amount %d", amount)
	}
}

func TestNewSeries_InvalidInput(t *testing.T) {
	_, err := NewSeries(-1, []int{1})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewSeries(10, []int{0})
	assert.ErrorIs(t, err, ErrNoValidCoins)
}
