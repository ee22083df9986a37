// This example triangulates a single 3D point from two calibrated cameras
// using DLT and midpoint, then refines a perturbed initial guess with a few
// rounds of refinement, logging each step's result.
package main

import (
	"go.uber.org/zap"

	"github.com/scottlawsonbc/sfmtri/internal/fixtures"
	"github.com/scottlawsonbc/sfmtri/triangulate"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	scenario := fixtures.TwoCamerasAxisAligned()
	solver := &triangulate.Solver{Log: sugar}

	alphaMin := fixtures.DefaultAlphaMin.Radians()
	tau := triangulate.UniformThresholds(len(scenario.Centers), fixtures.DefaultTau)

	dlt := solver.DLT(scenario.Poses(), scenario.Bearings(), fixtures.DefaultTau, alphaMin, fixtures.DefaultDMin)
	sugar.Infow("dlt result", "accepted", dlt.Accepted, "point", dlt.Point)

	mid := solver.Midpoint(scenario.Centers, scenario.BearingsWorld, tau, alphaMin, fixtures.DefaultDMin)
	sugar.Infow("midpoint result", "accepted", mid.Accepted, "point", mid.Point)

	x0 := fixtures.RefinementInitialGuess()
	refined := solver.Refine(scenario.Centers, scenario.BearingsWorld, x0, 10)
	sugar.Infow("refinement result", "initial", x0, "refined", refined, "truth", scenario.Truth)
}
