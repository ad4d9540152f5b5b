/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package exposure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveReferenceValues(t *testing.T) {
	testCases := []struct {
		name string
		p    float64
		k    float64
		want float64
	}{
		{
			name: "even odds at the published HCV rate",
			p:    0.5,
			k:    0.02434,
			want: 28.477698461789043,
		},
		{
			name: "near-certainty",
			p:    0.9999999999999999,
			k:    0.02434,
			want: 1509.3180184748192,
		},
		{
			name: "95% at rate 0.1",
			p:    0.95,
			k:    0.1,
			want: 29.957322735539908,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Solve(tc.p, tc.k)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestSolveZeroProbability(t *testing.T) {
	for _, k := range []float64{0.001, 0.02434, 1, 100} {
		got, err := Solve(0, k)
		require.NoError(t, err)
		assert.Zero(t, got, "k=%v", k)
	}
}

func TestSolveMonotonic(t *testing.T) {
	// Strictly increasing in p for fixed k.
	prev := -1.0
	for _, p := range []float64{0, 0.1, 0.5, 0.9, 0.99, 0.999999} {
		got, err := Solve(p, 0.02434)
		require.NoError(t, err)
		assert.Greater(t, got, prev, "p=%v", p)
		prev = got
	}

	// Strictly decreasing in k for fixed p.
	prev = math.Inf(1)
	for _, k := range []float64{0.001, 0.01, 0.1, 1, 10} {
		got, err := Solve(0.5, k)
		require.NoError(t, err)
		assert.Less(t, got, prev, "k=%v", k)
		prev = got
	}
}

func TestSolveProbabilityRoundTrip(t *testing.T) {
	for _, p := range []float64{0, 0.01, 0.25, 0.5, 0.9, 0.999} {
		for _, k := range []float64{0.001, 0.02434, 0.5, 3} {
			n, err := Solve(p, k)
			require.NoError(t, err)
			got, err := Probability(n, k)
			require.NoError(t, err)
			assert.InDelta(t, p, got, 1e-12, "p=%v k=%v", p, k)
		}
	}
}

func TestProbability(t *testing.T) {
	got, err := Probability(0, 0.02434)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = Probability(28.477698461789043, 0.02434)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-12)

	// Saturation stays pinned inside [0, 1] at extreme counts.
	got, err = Probability(1e9, 5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestSolveCount(t *testing.T) {
	// 28.478 fractional exposures round up to 29.
	count, err := SolveCount(0.5, 0.02434)
	require.NoError(t, err)
	assert.Equal(t, 29, count)

	count, err = SolveCount(0, 0.02434)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// count is the smallest whole number of exposures meeting the target.
	for _, p := range []float64{0.1, 0.5, 0.8, 0.95} {
		for _, k := range []float64{0.02434, 0.5, 2} {
			count, err := SolveCount(p, k)
			require.NoError(t, err)
			reached, err := Probability(float64(count), k)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, reached, p, "p=%v k=%v", p, k)
			if count > 0 {
				under, err := Probability(float64(count-1), k)
				require.NoError(t, err)
				assert.Less(t, under, p, "p=%v k=%v", p, k)
			}
		}
	}
}

func TestSolveInvalidInputs(t *testing.T) {
	testCases := []struct {
		name    string
		p       float64
		k       float64
		wantErr error
	}{
		{name: "p exactly one", p: 1, k: 0.02434, wantErr: ErrProbabilityOutOfRange},
		{name: "p above one", p: 1.5, k: 0.02434, wantErr: ErrProbabilityOutOfRange},
		{name: "negative p", p: -0.1, k: 0.02434, wantErr: ErrProbabilityOutOfRange},
		{name: "NaN p", p: math.NaN(), k: 0.02434, wantErr: ErrProbabilityOutOfRange},
		{name: "zero rate", p: 0.5, k: 0, wantErr: ErrNonPositiveRate},
		{name: "negative rate", p: 0.5, k: -0.01, wantErr: ErrNonPositiveRate},
		{name: "infinite rate", p: 0.5, k: math.Inf(1), wantErr: ErrNonPositiveRate},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Solve(tc.p, tc.k)
			assert.ErrorIs(t, err, tc.wantErr)

			_, err = SolveCount(tc.p, tc.k)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err := Probability(-1, 0.5)
	assert.ErrorIs(t, err, ErrNegativeExposures)
	_, err = Probability(10, -0.5)
	assert.ErrorIs(t, err, ErrNonPositiveRate)
}
