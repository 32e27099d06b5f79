package mnvplot

import (
	"math"

	"github.com/pkg/errors"
)

// ExposureName is the record holding a file's accumulated protons on target.
const ExposureName = "POTUsed"

// ExposureRatio returns the factor that scales MC to the data exposure.
func ExposureRatio(data, mc float64) (float64, error) {
	if mc <= 0 || math.IsNaN(mc) || math.IsInf(mc, 0) {
		return 0, errors.Errorf("invalid MC exposure %v", mc)
	}
	if data < 0 || math.IsNaN(data) || math.IsInf(data, 0) {
		return 0, errors.Errorf("invalid data exposure %v", data)
	}
	return data / mc, nil
}

// ReadExposureRatio reads ExposureName from both stores and returns
// data/MC.
func ReadExposureRatio(data, mc Store) (float64, error) {
	mcPOT, err := mc.Exposure(ExposureName)
	if err != nil {
		return 0, err
	}
	dataPOT, err := data.Exposure(ExposureName)
	if err != nil {
		return 0, err
	}
	return ExposureRatio(dataPOT, mcPOT)
}

// ScaleAll scales every histogram in place.
func ScaleAll(hists []*Hist, f float64) {
	for _, h := range hists {
		h.Scale(f)
	}
}

// AddMissingBandsWithCV gives target every error band of template that it
// lacks. Each new universe is a copy of target's current central value, so
// the band contributes no uncertainty but is never silently absent from
// later totals.
func AddMissingBandsWithCV(target, template *Hist) error {
	if target.Len() != template.Len() {
		return errors.Wrapf(ErrBinning, "%s has %d bins but band template %s has %d",
			target.Name, target.Len(), template.Name, template.Len())
	}
	for _, b := range template.bands {
		if target.Band(b.Name) != nil {
			continue
		}
		universes := make([][]float64, len(b.Universes))
		for i := range universes {
			universes[i] = target.SumW
		}
		if err := target.AddBand(b.Name, universes); err != nil {
			return err
		}
	}
	return nil
}
