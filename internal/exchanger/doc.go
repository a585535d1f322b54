// Package exchanger computes the steady-state performance of a
// liquid-to-air crossflow heat exchanger with both streams unmixed.
//
// The calculation is an explicit [Pipeline] of five stages run in their
// physical dependency order: [FlowStage] converts the rotameter reading
// to a hot-side mass flow, [EnergyStage] forms the duty and the cold-side
// flow from the energy balance, [CapacityStage] builds the capacity rates
// and both capacity ratios, [EffectivenessStage] forms q_actual, q_max
// and the effectiveness, and [NTUStage] inverts the crossflow
// effectiveness correlation for NTU and states UA. Each stage receives a
// [thermo.State] by value and returns an augmented copy; a stage failure
// is wrapped in a [thermo.StageError] naming the stage.
//
// # Example
//
//	p := exchanger.NewDefault()
//	res, err := p.Run(thermo.Defaults())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("NTU = %.3f  UA = %.2f W/K\n", res.State.NTU, res.State.UA)
//
// # Thread Safety
//
// A Pipeline carries solver diagnostics between stages and is not safe
// for concurrent use. [Batch] evaluates many operating points in
// parallel by giving each worker its own Pipeline.
package exchanger
