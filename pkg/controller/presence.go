/*
 * Copyright 2026 Lancer Robotics.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package controller

// missedScanThreshold is the number of consecutive enumeration scans a
// tracked controller may go unobserved before it is declared absent
// (~6s at the 2s scan interval).
const missedScanThreshold = 3

type presenceState int

const (
	statePresent presenceState = iota
	stateTentative
	stateAbsent
)

// presence is the per-controller debounce state machine. Transient
// enumeration flakiness moves the controller to tentative; only
// missedScanThreshold consecutive misses make it absent. Any successful
// observation returns it to present with the miss count reset.
type presence struct {
	state  presenceState
	misses int
}

// observe records a successful enumeration of the controller.
func (p *presence) observe() {
	p.state = statePresent
	p.misses = 0
}

// miss records a failed enumeration scan and reports whether the controller
// has crossed the absence threshold.
func (p *presence) miss() bool {
	p.misses++
	if p.misses >= missedScanThreshold {
		p.state = stateAbsent
		return true
	}

	p.state = stateTentative

	return false
}
