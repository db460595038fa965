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

// Package control holds settings shared by the distributions.
//
// The only setting is the switch that decides whether distribution
// parameters are checked when they are set. Settings can be passed
// to a distribution explicitly; otherwise Default is consulted.
package control

// Settings configures parameter validation.
type Settings struct {
	// CheckDistributionParameters enables the lower <= upper check
	// on construction, on bound setters and in the static samplers.
	CheckDistributionParameters bool
}

// Default is the process-wide settings instance read by every
// validating call that is not given explicit settings.
var Default = NewSettings()

// NewSettings returns settings with parameter checking enabled.
func NewSettings() *Settings {
	return &Settings{
		CheckDistributionParameters: true,
	}
}

// CheckParameters reports whether parameters should be validated.
// A nil receiver behaves like NewSettings.
func (s *Settings) CheckParameters() bool {
	if s == nil {
		return true
	}
	return s.CheckDistributionParameters
}
