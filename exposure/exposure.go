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

// Package exposure works with the exponential saturation model
//
//	P(n) = 1 - exp(-k*n)
//
// for the cumulative probability of infection after n independent exposures,
// each carrying a per-exposure hazard rate k. Solve inverts the model to the
// exposure count reaching a target probability; Probability evaluates the
// forward model; SolveCount rounds the inversion up to a whole number of
// exposures.
package exposure

import (
	"errors"
	"fmt"
	"math"

	"github.com/eduardgrebe/weusten-residual-risk/common"
)

var (
	ErrProbabilityOutOfRange = errors.New("probability must be in [0, 1)")
	ErrNonPositiveRate       = errors.New("rate constant must be a positive finite number")
	ErrNegativeExposures     = errors.New("exposure count cannot be negative")
)

// Solve returns the exposure count n at which the cumulative infection
// probability reaches p, given per-exposure rate k:
//
//	n = -ln(1-p) / k
//
// The result is generally fractional; callers wanting a whole number of
// exposures guaranteeing at least probability p should use SolveCount.
// p must lie in [0, 1): at p = 1 the model saturates only in the limit and
// has no finite solution. Solve(0, k) is 0 for any valid k.
func Solve(p, k float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p >= 1 {
		return 0, fmt.Errorf("%w: got %v", ErrProbabilityOutOfRange, p)
	}
	if err := validateRate(k); err != nil {
		return 0, err
	}
	return -math.Log(1-p) / k, nil
}

// Probability evaluates the forward model 1 - exp(-k*n) for a (possibly
// fractional) exposure count n and per-exposure rate k. The result is pinned
// to [0, 1] against round-off at the extremes.
func Probability(n, k float64) (float64, error) {
	if math.IsNaN(n) || n < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrNegativeExposures, n)
	}
	if err := validateRate(k); err != nil {
		return 0, err
	}
	return common.Clamp(1-math.Exp(-k*n), 0, 1), nil
}

// SolveCount returns the smallest whole number of exposures whose cumulative
// probability is at least p.
func SolveCount(p, k float64) (int, error) {
	n, err := Solve(p, k)
	if err != nil {
		return 0, err
	}
	count := int(math.Ceil(n))
	// Round-off in the log/exp round trip can leave the ceiling one short
	// when n lands exactly on an integer.
	if 1-math.Exp(-k*float64(count)) < p {
		count++
	}
	return count, nil
}

func validateRate(k float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
		return fmt.Errorf("%w: got %v", ErrNonPositiveRate, k)
	}
	return nil
}
