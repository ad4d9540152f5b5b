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

// Package windowperiod estimates the infectious window period of a
// transfusion-transmissible infection from lookback-investigation data.
//
// The window period is the span during which an infection is transmissible
// but not yet detectable by screening. The estimator takes the interdonation
// intervals of repeat donors whose index donation was confirmed positive,
// the number of confirmed transmission events among the recipients of their
// prior donations, and two diagnostic-delay offsets that shift each raw
// interval to the biologically plausible infectious interval:
//
//   - the negative delay widens the interval by how early the prior
//     negative test could have missed a fresh infection, and
//   - the positive delay narrows it by how late the index positive test
//     was able to detect it.
//
// Each donor contributes a competing-exposure rate proportional to the
// reciprocal of their adjusted interval. Under a Poisson model where the
// expected number of transmissions equals the window period times the summed
// reciprocal exposure, the maximum-likelihood point estimate is the observed
// count divided by that sum, and the confidence interval follows from the
// exact chi-square interval for a Poisson rate.
//
// All inputs and results share the time unit of the intervals, conventionally
// days.
package windowperiod

import (
	"errors"
	"fmt"
	"math"

	"github.com/eduardgrebe/weusten-residual-risk/common"
	"github.com/eduardgrebe/weusten-residual-risk/internal/poissonbounds"
)

// DefaultAlpha is the significance level used by the package-level Estimate,
// giving a two-sided 95% confidence interval.
const DefaultAlpha = 0.05

var (
	ErrNoIntervals           = errors.New("at least one interdonation interval is required")
	ErrNegativeTransmissions = errors.New("transmission count cannot be negative")
	ErrInvalidAlpha          = errors.New("alpha must be strictly between 0 and 1")
	ErrInvalidInterval       = errors.New("interdonation interval must be a positive finite number")
	ErrInvalidDelay          = errors.New("diagnostic delay must be a finite number")
	ErrNonPositiveAdjusted   = errors.New("adjusted interval must be strictly positive")
)

// Result is a window-period estimate with its two-sided confidence bounds,
// in the time unit of the input intervals.
type Result struct {
	Estimate   float64
	LowerBound float64
	UpperBound float64
}

// Estimator computes window-period estimates at a fixed significance level.
// The zero value is not usable; construct with NewEstimator or
// NewEstimatorWithQuantile. An Estimator is immutable and safe for
// concurrent use.
type Estimator struct {
	alpha    float64
	quantile poissonbounds.QuantileFunc
}

// NewEstimator creates an Estimator producing two-sided 1-alpha confidence
// intervals with the default chi-square quantile backend.
func NewEstimator(alpha float64) (*Estimator, error) {
	return NewEstimatorWithQuantile(alpha, nil)
}

// NewEstimatorWithQuantile creates an Estimator with an explicit chi-square
// quantile function. A nil quantile selects the default backend. Supplying
// the quantile is mainly useful for testing the estimator against a stub.
func NewEstimatorWithQuantile(alpha float64, quantile poissonbounds.QuantileFunc) (*Estimator, error) {
	if !(alpha > 0 && alpha < 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidAlpha, alpha)
	}
	return &Estimator{alpha: alpha, quantile: quantile}, nil
}

// Estimate returns the window-period point estimate and confidence interval
// for a cohort.
//
// transmissions is the number of confirmed transmission events among the
// cohort's prior-donation recipients. intervals holds one raw interdonation
// interval per donor; order is irrelevant. negativeDelay and positiveDelay
// are the uniform diagnostic-delay offsets applied to every interval.
//
// Every adjusted interval (interval + negativeDelay - positiveDelay) must be
// strictly positive; a zero or negative adjusted interval has no
// interpretation as an exposure time and is rejected, naming the offending
// donor index. For well-formed inputs,
// LowerBound <= Estimate <= UpperBound, and LowerBound is exactly 0 when
// transmissions is 0.
func (e *Estimator) Estimate(transmissions int, intervals []float64, negativeDelay, positiveDelay float64) (Result, error) {
	if transmissions < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrNegativeTransmissions, transmissions)
	}
	if len(intervals) == 0 {
		return Result{}, ErrNoIntervals
	}
	if math.IsNaN(negativeDelay) || math.IsInf(negativeDelay, 0) {
		return Result{}, fmt.Errorf("%w: negative delay is %v", ErrInvalidDelay, negativeDelay)
	}
	if math.IsNaN(positiveDelay) || math.IsInf(positiveDelay, 0) {
		return Result{}, fmt.Errorf("%w: positive delay is %v", ErrInvalidDelay, positiveDelay)
	}

	adjusted := make([]float64, len(intervals))
	for i, x := range intervals {
		if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
			return Result{}, fmt.Errorf("%w: interval %d is %v", ErrInvalidInterval, i, x)
		}
		a := x + negativeDelay - positiveDelay
		if a <= 0 {
			return Result{}, fmt.Errorf("%w: interval %d adjusts to %v", ErrNonPositiveAdjusted, i, a)
		}
		adjusted[i] = a
	}

	exposure := common.SumReciprocals(adjusted)
	lower, upper, err := poissonbounds.RateInterval(int64(transmissions), e.alpha, e.quantile)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Estimate:   float64(transmissions) / exposure,
		LowerBound: lower / exposure,
		UpperBound: upper / exposure,
	}, nil
}

// Estimate computes a window-period estimate with a 95% confidence interval.
// See Estimator.Estimate for the parameter contract.
func Estimate(transmissions int, intervals []float64, negativeDelay, positiveDelay float64) (Result, error) {
	e, err := NewEstimator(DefaultAlpha)
	if err != nil {
		return Result{}, err
	}
	return e.Estimate(transmissions, intervals, negativeDelay, positiveDelay)
}
