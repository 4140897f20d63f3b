// Package seq provides lazy sequence helpers built on iter.Seq.
//
// Map and Filter are lazy and never evaluate more elements than the consumer
// asks for, so they compose with infinite sources such as Count. Take and Nth
// consume a sequence; Flatten turns arbitrarily nested slices into one level.
package seq
