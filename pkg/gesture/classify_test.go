package gesture

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garik-/gpscore/pkg/model"
)

func pts(values ...int) []model.BendPoint {
	out := make([]model.BendPoint, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		out = append(out, model.BendPoint{Offset: values[i], Value: values[i+1]})
	}
	return out
}

func TestClassifyBend(t *testing.T) {
	tests := []struct {
		name      string
		points    []model.BendPoint
		continued bool
		want      model.BendType
		wantPts   []model.BendPoint
	}{
		{"empty", nil, false, model.BendNone, nil},
		{"flat zero", pts(0, 0, 60, 0), false, model.BendNone, pts(0, 0, 60, 0)},
		{"full bend", pts(0, 0, 60, 4), false, model.BendBend, pts(0, 0, 60, 4)},
		{"quick bend", pts(0, 0, 15, 4), false, model.BendBend, pts(0, 0, 15, 4)},
		{"bend with middles", pts(0, 0, 5, 2, 10, 2, 15, 4), false, model.BendBend, pts(0, 0, 15, 4)},
		{"bend release", pts(0, 0, 10, 4, 20, 4, 30, 0), false, model.BendBendRelease, pts(0, 0, 10, 4, 20, 4, 30, 0)},
		{"bend partial release", pts(0, 0, 9, 8, 20, 8, 31, 4), false, model.BendBendRelease, pts(0, 0, 9, 8, 20, 8, 31, 4)},
		{"bend release same offset", pts(0, 0, 30, 12, 30, 12, 60, 6), false, model.BendBendRelease, pts(0, 0, 30, 12, 30, 12, 60, 6)},
		{"prebend", pts(0, 4, 60, 4), false, model.BendPrebend, pts(0, 4, 60, 4)},
		{"hold", pts(0, 4, 60, 4), true, model.BendHold, pts(0, 4, 60, 4)},
		{"prebend bend", pts(0, 4, 15, 6), false, model.BendPrebendBend, pts(0, 4, 15, 6)},
		{"continued bend", pts(0, 4, 15, 8), true, model.BendBend, pts(0, 4, 15, 8)},
		{"prebend release", pts(0, 4, 15, 0), false, model.BendPrebendRelease, pts(0, 4, 15, 0)},
		{"prebend partial release", pts(0, 8, 14, 4), false, model.BendPrebendRelease, pts(0, 8, 14, 4)},
		{"release", pts(0, 4, 15, 0), true, model.BendRelease, pts(0, 4, 15, 0)},
		{"partial release", pts(0, 8, 15, 4), true, model.BendRelease, pts(0, 8, 15, 4)},
		{"dip below endpoints", pts(0, 4, 20, 0, 40, 0, 60, 4), false, model.BendCustom, pts(0, 4, 20, 0, 40, 0, 60, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotPts := ClassifyBend(tt.points, tt.continued)
			assert.Equal(t, tt.want, got)
			if diff := cmp.Diff(tt.wantPts, gotPts); diff != "" {
				t.Errorf("points mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyWhammy(t *testing.T) {
	tests := []struct {
		name      string
		points    []model.BendPoint
		continued bool
		want      model.WhammyType
		wantPts   []model.BendPoint
	}{
		{"empty", nil, false, model.WhammyNone, nil},
		{"dive", pts(0, 0, 45, -4), false, model.WhammyDive, pts(0, 0, 45, -4)},
		{"dive with hold", pts(0, 0, 30, -4, 30, -4, 60, -4), false, model.WhammyDive, pts(0, 0, 30, -4, 30, -4, 60, -4)},
		{"predive dive", pts(0, -4, 60, -16), false, model.WhammyPrediveDive, pts(0, -4, 60, -16)},
		{"predive return", pts(0, -4, 30, 0), false, model.WhammyPrediveDive, pts(0, -4, 30, 0)},
		{"continued return", pts(0, -12, 45, 0), true, model.WhammyDive, pts(0, -12, 45, 0)},
		{"continued dive", pts(0, -4, 46, -12), true, model.WhammyDive, pts(0, -4, 46, -12)},
		{"continued rise", pts(0, -12, 44, 8), true, model.WhammyDive, pts(0, -12, 44, 8)},
		{"dip", pts(0, 0, 15, -16, 30, 0), false, model.WhammyDip, pts(0, 0, 15, -16, 30, 0)},
		{"dip with hold", pts(0, 0, 14, -12, 31, -12, 53, 0), false, model.WhammyDip, pts(0, 0, 14, -12, 31, -12, 53, 0)},
		{"dip single turn", pts(0, 0, 15, -16, 15, -16, 30, 0), false, model.WhammyDip, pts(0, 0, 15, -16, 30, 0)},
		{"dip upwards", pts(0, 8, 15, 12, 30, 0), true, model.WhammyDip, pts(0, 8, 15, 12, 30, 0)},
		{"predive", pts(0, -8, 60, -8), false, model.WhammyPredive, pts(0, -8, 60, -8)},
		{"hold", pts(0, -4, 60, -4), true, model.WhammyHold, pts(0, -4, 60, -4)},
		{"hold with middles", pts(0, -4, 20, -4, 40, -4, 60, -4), true, model.WhammyHold, pts(0, -4, 60, -4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotPts := ClassifyWhammy(tt.points, tt.continued)
			assert.Equal(t, tt.want, got)
			if diff := cmp.Diff(tt.wantPts, gotPts); diff != "" {
				t.Errorf("points mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	lists := [][]model.BendPoint{
		pts(0, 0, 5, 2, 10, 2, 15, 4),
		pts(0, 0, 15, -16, 15, -16, 30, 0),
		pts(0, 4, 20, 4, 40, 4, 60, 4),
	}
	for _, points := range lists {
		for _, continued := range []bool{false, true} {
			bt, bp := ClassifyBend(points, continued)
			bt2, bp2 := ClassifyBend(points, continued)
			assert.Equal(t, bt, bt2)
			assert.Equal(t, bp, bp2)

			// classifying the kept points again is stable
			bt3, _ := ClassifyBend(bp, continued)
			assert.Equal(t, bt, bt3)

			wt, wp := ClassifyWhammy(points, continued)
			wt3, _ := ClassifyWhammy(wp, continued)
			assert.Equal(t, wt, wt3)
		}
	}
}

func TestClassify_DoesNotAliasInput(t *testing.T) {
	in := pts(0, 0, 15, -16, 15, -16, 30, 0)
	_, out := ClassifyWhammy(in, false)
	out[0].Value = 99

	assert.Equal(t, pts(0, 0, 15, -16, 15, -16, 30, 0), in)
}

func TestIsContinued(t *testing.T) {
	assert.True(t, IsContinued(pts(0, 0, 15, 4), pts(0, 4, 60, 4)))
	assert.False(t, IsContinued(pts(0, 0, 15, 4), pts(0, 0, 15, 4)))
	assert.False(t, IsContinued(pts(0, 4, 15, 0), pts(0, 0, 15, 4)))
	assert.False(t, IsContinued(nil, pts(0, 4, 60, 4)))
	assert.False(t, IsContinued(pts(0, 0, 15, 4), nil))
	assert.True(t, IsContinued(pts(0, 0, 45, -4), pts(0, -4, 60, -4)))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(nil, GP7Limits))
	require.NoError(t, Validate(pts(0, 0, 60, 4), GP7Limits))
	require.NoError(t, Validate(pts(0, 0, 30, 12, 30, 12, 60, 6), GP7Limits))

	tests := map[string][]model.BendPoint{
		"single point":     pts(0, 4),
		"too many points":  pts(0, 0, 10, 1, 20, 2, 30, 3, 40, 4),
		"offsets decrease": pts(0, 0, 30, 4, 20, 4, 60, 0),
		"offset too large": pts(0, 0, 61, 4),
		"negative offset":  pts(-1, 0, 60, 4),
	}
	for name, points := range tests {
		t.Run(name, func(t *testing.T) {
			err := Validate(points, GP7Limits)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPoints))
		})
	}
}
