// Package screenmatch locates UI elements inside screen captures by
// multi-scale image template matching and provides polling primitives
// (wait-for-appearance, wait-for-disappearance) built on top of the search
// pipeline.
//
// The core pipeline expands a template into a set of scaled variants,
// evaluates each scale concurrently with normalized cross-correlation over
// the captured frame, merges the candidates with non-maximum suppression and
// returns ranked results in absolute screen coordinates.
//
//	tmpl, err := template.Load("button.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//	engine := screenmatch.New()
//	res, err := engine.FindOnScreen(tmpl, config.DefaultConfig().WithConfidence(0.9))
package screenmatch
