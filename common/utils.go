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

// Package common holds small numeric helpers shared by the estimator packages.
package common

import (
	"golang.org/x/exp/constraints"
)

// SumReciprocals returns the sum of 1/x over xs.
// Callers must ensure every element is nonzero.
func SumReciprocals[F constraints.Float](xs []F) F {
	var sum F
	for _, x := range xs {
		sum += 1 / x
	}
	return sum
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp[F constraints.Float](v, lo, hi F) F {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
