package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadPackageBuildsVariants(t *testing.T) {
	swim, err := ReadPackage("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)
	require.Equal(t, Swimming{Reading: Reading{Action: 720, Duration: 1, Weight: 80}, LengthPool: 25, CountPool: 40}, swim)

	run, err := ReadPackage("RUN", []float64{15000, 1, 75})
	require.NoError(t, err)
	require.Equal(t, Running{Reading: Reading{Action: 15000, Duration: 1, Weight: 75}}, run)

	walk, err := ReadPackage("WLK", []float64{9000, 1, 75, 180})
	require.NoError(t, err)
	require.Equal(t, SportsWalking{Reading: Reading{Action: 9000, Duration: 1, Weight: 75}, Height: 180}, walk)
}

func TestReadPackageUnknownType(t *testing.T) {
	for _, tag := range []string{"XYZ", "", "run", "SWIM"} {
		_, err := ReadPackage(tag, []float64{1, 2, 3})
		require.ErrorIs(t, err, ErrUnknownWorkoutType, tag)
	}
}

func TestReadPackageArity(t *testing.T) {
	cases := map[string][]float64{
		"SWM": {720, 1, 80, 25},
		"RUN": {15000, 1, 75, 180},
		"WLK": {9000, 1, 75},
	}
	for tag, data := range cases {
		_, err := ReadPackage(tag, data)
		require.ErrorIs(t, err, ErrArgument, tag)
	}

	_, err := ReadPackage("RUN", nil)
	require.ErrorIs(t, err, ErrArgument)
}

func TestReadPackageRejectsFractionalCounts(t *testing.T) {
	_, err := ReadPackage("RUN", []float64{150.5, 1, 75})
	require.ErrorIs(t, err, ErrArgument)

	_, err = ReadPackage("SWM", []float64{720, 1, 80, 25, 40.2})
	require.ErrorIs(t, err, ErrArgument)

	_, err = ReadPackage("WLK", []float64{math.NaN(), 1, 75, 180})
	require.ErrorIs(t, err, ErrArgument)
}
