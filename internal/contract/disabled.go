//go:build contracts_off

package contract

const enabled = false
