package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
)

// MSE returns the sum of squared errors Σ (prediction_i - target_i)**2 as a
// single node spanning the prediction sub-graph.
//
// The result is not divided by the number of samples. Returns a *ShapeError
// when the slices differ in length and ErrEmptyBatch when both are empty.
//
// Example:
//
//	preds := make([]autodiff.Value, len(xs))
//	for i, x := range xs {
//	    out, _ := model.Predict(x)
//	    preds[i] = out[0]
//	}
//	loss, err := nn.MSEFloats(ys, preds)
//	loss.Backward()
func MSE(target, prediction []autodiff.Value) (autodiff.Value, error) {
	if len(target) != len(prediction) {
		return autodiff.Value{}, shapeError("mse", len(prediction), len(target))
	}
	if len(prediction) == 0 {
		return autodiff.Value{}, errors.WithStack(ErrEmptyBatch)
	}

	terms := make([]autodiff.Value, len(prediction))
	for i, p := range prediction {
		terms[i] = p.Sub(target[i]).Pow(2)
	}
	return autodiff.Sum(terms).SetLabel("loss"), nil
}

// MSEFloats lifts target to leaves labelled "ys" in the predictions' graph
// and returns MSE.
func MSEFloats(target []float64, prediction []autodiff.Value) (autodiff.Value, error) {
	if len(target) != len(prediction) {
		return autodiff.Value{}, shapeError("mse", len(prediction), len(target))
	}
	if len(prediction) == 0 {
		return autodiff.Value{}, errors.WithStack(ErrEmptyBatch)
	}

	g := prediction[0].Graph()
	ys := make([]autodiff.Value, len(target))
	for i, y := range target {
		ys[i] = g.LeafLabeled(y, "ys")
	}
	return MSE(ys, prediction)
}
