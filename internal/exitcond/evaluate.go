// SPDX-License-Identifier: GPL-3.0-or-later

package exitcond

import "fmt"

// ContractError reports a violation of the one-probe-per-call contract:
// between two Update calls exactly one outcome may have been added.
type ContractError struct {
	DeltaSuccess int64
	DeltaFailure int64
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("exit condition: expected exactly one new outcome per update, got %d success(es) and %d failure(s)", e.DeltaSuccess, e.DeltaFailure)
}

// Update advances the condition with the probe loop's cumulative
// transmitted/received totals. It must be called once after every completed
// probe; a call with unchanged totals is a no-op. The returned bool reports
// whether the condition is satisfied and stays true once it is.
func (c *Condition) Update(transmitted, received int64) (bool, error) {
	deltaSuccess := received - c.lastReceived
	deltaFailure := transmitted - c.lastTransmitted - deltaSuccess

	if deltaSuccess == 0 && deltaFailure == 0 {
		return c.met, nil
	}
	if deltaSuccess < 0 || deltaFailure < 0 || deltaSuccess+deltaFailure != 1 {
		return c.met, &ContractError{DeltaSuccess: deltaSuccess, DeltaFailure: deltaFailure}
	}

	success := deltaSuccess == 1

	c.lastTransmitted = transmitted
	c.lastReceived = received

	if c.Report.ShowMap {
		c.rmap.record(success)
	}

	var satisfied bool
	switch c.Location {
	case Sequence:
		if success == (c.Counting == CountSuccess) {
			c.streak++
		} else {
			c.streak = 0
		}
		satisfied = c.streak == c.Expect
	default:
		if c.Counting == CountFailure {
			satisfied = c.Failures() >= c.Expect
		} else {
			satisfied = c.lastReceived >= c.Expect
		}
	}

	if satisfied && !c.met {
		c.met = true
		if c.status == StatusArmedUnmet {
			c.status = StatusArmedMet
		}
	}

	return c.met, nil
}
