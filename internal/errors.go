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

package internal

import (
	"errors"
	"fmt"
)

var invalidStr = "invalid"

// InvalidParameter is returned when a pair of distribution bounds
// does not describe a non-empty interval.
var InvalidParameter = errors.New(fmt.Sprintf("%s distribution parameters", invalidStr))

// InvalidArgument is returned when a required argument is missing.
var InvalidArgument = errors.New(fmt.Sprintf("%s argument", invalidStr))
