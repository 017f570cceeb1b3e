// SPDX-License-Identifier: MIT
// Package: brocs/builder
//
// impl_wheel.go - Wheel(rim): the wheel W_{rim+1}.
//
// Contract:
//   • rim ≥ 3 (else ErrTooFewVertices).
//   • Hub idFn(0) joined to every rim vertex idFn(1..rim); rim vertices form
//     a cycle in index order.
//
// An odd rim needs four colors, an even rim three; rim = 3 is K_4.
//
// Complexity: O(rim).

package builder

import "github.com/katalvlaran/brocs/core"

const methodWheel = "Wheel"

// Wheel returns a Constructor for a wheel whose rim has rim vertices.
func Wheel(rim int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rim < minWheelRim {
			return tooFew(methodWheel, "rim", rim, minWheelRim)
		}
		ids, err := addVertices(g, cfg, methodWheel, 0, rim+1)
		if err != nil {
			return err
		}
		hub, ring := ids[centerIndex], ids[1:]
		for i, v := range ring {
			if err = addEdge(g, methodWheel, hub, v); err != nil {
				return err
			}
			if err = addEdge(g, methodWheel, v, ring[(i+1)%rim]); err != nil {
				return err
			}
		}

		return nil
	}
}
