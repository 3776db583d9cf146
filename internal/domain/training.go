// Package domain computes workout statistics from raw sensor readings.
package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownWorkoutType is returned when a package carries a tag outside SWM, RUN and WLK.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrArgument indicates the sensor values do not fit the workout's fields.
	ErrArgument = errors.New("invalid workout arguments")
	// ErrDivisionByZero is returned when a formula divides by a zero duration or height.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOutOfRange is returned when a statistic overflows to an infinite or NaN value.
	ErrOutOfRange = errors.New("result out of range")
)

const (
	mInKm  = 1000
	minInH = 60

	lenStep         = 0.65
	swimmingLenStep = 1.38

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Training is a workout whose statistics can be computed.
// The set of implementations is closed: Running, SportsWalking and Swimming.
type Training interface {
	// TrainingType is the label printed in the summary.
	TrainingType() string
	// Distance returns the covered distance in km.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() (float64, error)
	// Calories returns the spent kilocalories.
	Calories() (float64, error)

	reading() Reading
	spentCalories(meanSpeed float64) (float64, error)
}

// Reading holds the sensor values shared by every workout.
type Reading struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

func (r Reading) distance(step float64) float64 {
	return float64(r.Action) * step / mInKm
}

func (r Reading) speed(distance float64) (float64, error) {
	if r.Duration == 0 {
		return 0, fmt.Errorf("mean speed: zero duration: %w", ErrDivisionByZero)
	}
	return finite("mean speed", distance/r.Duration)
}

func finite(name string, value float64) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%s: %v: %w", name, value, ErrOutOfRange)
	}
	return value, nil
}

// floorDiv rounds a/b towards negative infinity from the exact remainder,
// so a quotient like 169/0.1 that rounds up to 1690 still floors to 1689.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}

// Running is a run measured in steps.
type Running struct {
	Reading
}

// TrainingType implements Training.
func (Running) TrainingType() string { return "Running" }

// Distance implements Training.
func (r Running) Distance() float64 { return r.distance(lenStep) }

// MeanSpeed implements Training.
func (r Running) MeanSpeed() (float64, error) { return r.speed(r.Distance()) }

// Calories implements Training.
func (r Running) Calories() (float64, error) { return caloriesOf(r) }

func (r Running) reading() Reading { return r.Reading }

func (r Running) spentCalories(meanSpeed float64) (float64, error) {
	return (runningCaloriesMeanSpeedMultiplier*meanSpeed - runningCaloriesMeanSpeedShift) *
		r.Weight / mInKm * r.Duration * minInH, nil
}

// SportsWalking is a walk measured in steps; Height is in cm.
type SportsWalking struct {
	Reading
	Height float64
}

// TrainingType implements Training.
func (SportsWalking) TrainingType() string { return "SportsWalking" }

// Distance implements Training.
func (w SportsWalking) Distance() float64 { return w.distance(lenStep) }

// MeanSpeed implements Training.
func (w SportsWalking) MeanSpeed() (float64, error) { return w.speed(w.Distance()) }

// Calories implements Training.
func (w SportsWalking) Calories() (float64, error) { return caloriesOf(w) }

func (w SportsWalking) reading() Reading { return w.Reading }

// The squared speed is floor-divided by the height.
// TODO: confirm with the formula owner whether speed²/height should be a plain division.
func (w SportsWalking) spentCalories(meanSpeed float64) (float64, error) {
	if w.Height == 0 {
		return 0, fmt.Errorf("walking calories: zero height: %w", ErrDivisionByZero)
	}
	speedByHeight := floorDiv(meanSpeed*meanSpeed, w.Height)
	return (walkingCaloriesWeightMultiplier*w.Weight +
		speedByHeight*walkingSpeedHeightMultiplier*w.Weight) * w.Duration * minInH, nil
}

// Swimming is a pool session measured in strokes; LengthPool is in meters.
type Swimming struct {
	Reading
	LengthPool float64
	CountPool  int
}

// TrainingType implements Training.
func (Swimming) TrainingType() string { return "Swimming" }

// Distance implements Training.
func (s Swimming) Distance() float64 { return s.distance(swimmingLenStep) }

// MeanSpeed derives the speed from the pool geometry and ignores Action.
func (s Swimming) MeanSpeed() (float64, error) {
	return s.speed(s.LengthPool * float64(s.CountPool) / mInKm)
}

// Calories implements Training.
func (s Swimming) Calories() (float64, error) { return caloriesOf(s) }

func (s Swimming) reading() Reading { return s.Reading }

func (s Swimming) spentCalories(meanSpeed float64) (float64, error) {
	return (meanSpeed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight, nil
}

func caloriesOf(t Training) (float64, error) {
	speed, err := t.MeanSpeed()
	if err != nil {
		return 0, err
	}
	calories, err := t.spentCalories(speed)
	if err != nil {
		return 0, err
	}
	return finite("calories", calories)
}

// ShowTrainingInfo computes distance, mean speed and calories once each and bundles them.
func ShowTrainingInfo(t Training) (InfoMessage, error) {
	speed, err := t.MeanSpeed()
	if err != nil {
		return InfoMessage{}, err
	}
	calories, err := t.spentCalories(speed)
	if err != nil {
		return InfoMessage{}, err
	}
	if calories, err = finite("calories", calories); err != nil {
		return InfoMessage{}, err
	}
	distance, err := finite("distance", t.Distance())
	if err != nil {
		return InfoMessage{}, err
	}
	return InfoMessage{
		TrainingType: t.TrainingType(),
		Duration:     t.reading().Duration,
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}, nil
}
