package domain

import (
	"fmt"
	"math"
)

// Workout type tags accepted by ReadPackage.
const (
	WorkoutSwimming = "SWM"
	WorkoutRunning  = "RUN"
	WorkoutWalking  = "WLK"
)

// ReadPackage builds the Training for a sensor package. Values are unpacked
// positionally: action, duration, weight, then height (WLK) or
// length_pool, count_pool (SWM).
func ReadPackage(workoutType string, data []float64) (Training, error) {
	switch workoutType {
	case WorkoutSwimming:
		r, err := readingFrom(workoutType, data, 5)
		if err != nil {
			return nil, err
		}
		countPool, err := integral(workoutType, "count_pool", data[4])
		if err != nil {
			return nil, err
		}
		return Swimming{Reading: r, LengthPool: data[3], CountPool: countPool}, nil
	case WorkoutRunning:
		r, err := readingFrom(workoutType, data, 3)
		if err != nil {
			return nil, err
		}
		return Running{Reading: r}, nil
	case WorkoutWalking:
		r, err := readingFrom(workoutType, data, 4)
		if err != nil {
			return nil, err
		}
		return SportsWalking{Reading: r, Height: data[3]}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, workoutType)
	}
}

func readingFrom(workoutType string, data []float64, arity int) (Reading, error) {
	if len(data) != arity {
		return Reading{}, fmt.Errorf("%w: %s expects %d values, got %d", ErrArgument, workoutType, arity, len(data))
	}
	action, err := integral(workoutType, "action", data[0])
	if err != nil {
		return Reading{}, err
	}
	return Reading{Action: action, Duration: data[1], Weight: data[2]}, nil
}

func integral(workoutType, field string, value float64) (int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, fmt.Errorf("%w: %s %s must be an integer, got %v", ErrArgument, workoutType, field, value)
	}
	if value > math.MaxInt32 || value < math.MinInt32 {
		return 0, fmt.Errorf("%w: %s %s out of range: %v", ErrArgument, workoutType, field, value)
	}
	return int(value), nil
}
