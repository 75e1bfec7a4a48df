// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an ErrConfiguration-wrapped error via builderErrorf
// when its precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: <name> must be ≥ <min>, got <got>: builder: invalid configuration".
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrConfiguration, "%s must be ≥ %d, got %d", name, min, got)
	}

	return nil
}

// validateEven ensures that 'got' is an even number.
// Used by FatTree, whose pods split every switch's ports in half.
//
// Complexity: O(1) time and space.
func validateEven(method, name string, got int) error {
	if got%2 != 0 {
		return builderErrorf(method, ErrConfiguration, "%s must be even, got %d", name, got)
	}

	return nil
}

// validatePortBudget checks the Jellyfish feasibility rules:
//   - the total budget numSwitches·numPorts covers numServers;
//   - ceil(numServers/numSwitches) servers fit on a single switch.
//
// Complexity: O(1) time and space.
func validatePortBudget(method string, numServers, numSwitches, numPorts int) error {
	if numServers > numSwitches*numPorts {
		return builderErrorf(method, ErrConfiguration,
			"%d servers exceed the port budget %d×%d", numServers, numSwitches, numPorts)
	}
	if per := serversPerSwitch(numServers, numSwitches); per > numPorts {
		return builderErrorf(method, ErrConfiguration,
			"%d servers per switch exceed %d ports", per, numPorts)
	}

	return nil
}

// serversPerSwitch returns ceil(numServers / numSwitches). numSwitches ≥ 1.
func serversPerSwitch(numServers, numSwitches int) int {
	return (numServers + numSwitches - 1) / numSwitches
}
