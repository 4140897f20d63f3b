// Package suppress discards selected errors within a scope.
package suppress
