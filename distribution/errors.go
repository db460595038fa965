/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package distribution

import (
	"github.com/kparrigan/mathnet-numerics/control"
	"github.com/kparrigan/mathnet-numerics/internal"
	"github.com/pkg/errors"
)

// ErrInvalidParameter is returned when checking is enabled and
// lower > upper.
var ErrInvalidParameter = internal.InvalidParameter

// ErrInvalidArgument is returned when a nil random source is given.
var ErrInvalidArgument = internal.InvalidArgument

// IsValidParameterSet reports whether lower and upper describe a
// non-empty interval.
func IsValidParameterSet(lower, upper int) bool {
	return lower <= upper
}

func validate(c *control.Settings, lower, upper int) error {
	if c.CheckParameters() && !IsValidParameterSet(lower, upper) {
		return errors.WithStack(ErrInvalidParameter)
	}
	return nil
}
