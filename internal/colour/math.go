package colour

import "math"

// Matrix is a 3x3 row-major matrix.
type Matrix [3][3]float64

// MatrixMultiply multiplies the row vector by the matrix, treating each matrix
// row as the coefficients of one output component.
func MatrixMultiply(row [3]float64, m Matrix) [3]float64 {
	return [3]float64{
		row[0]*m[0][0] + row[1]*m[0][1] + row[2]*m[0][2],
		row[0]*m[1][0] + row[1]*m[1][1] + row[2]*m[1][2],
		row[0]*m[2][0] + row[1]*m[2][1] + row[2]*m[2][2],
	}
}

// Signum returns -1, 0 or 1 according to the sign of x.
func Signum(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x == 0:
		return 0
	default:
		return 1
	}
}

// Lerp linearly interpolates between start and stop.
func Lerp(start, stop, amount float64) float64 {
	return (1.0-amount)*start + amount*stop
}

// ClampInt clamps v to [lo, hi].
func ClampInt(lo, hi, v int) int {
	return min(max(v, lo), hi)
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(lo, hi, v float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// SanitizeDegreesInt wraps degrees into [0, 360).
func SanitizeDegreesInt(degrees int) int {
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

// SanitizeDegreesFloat wraps degrees into [0, 360).
func SanitizeDegreesFloat(degrees float64) float64 {
	degrees = math.Mod(degrees, 360.0)
	if degrees < 0 {
		degrees += 360.0
	}
	return degrees
}

// RotationDirection returns 1 if the shortest rotation from one hue to the
// other is counter-clockwise (increasing), -1 otherwise.
func RotationDirection(from, to float64) float64 {
	if SanitizeDegreesFloat(to-from) <= 180.0 {
		return 1.0
	}
	return -1.0
}

// DifferenceDegrees returns the angular distance between two hues, 0-180.
func DifferenceDegrees(a, b float64) float64 {
	return 180.0 - math.Abs(math.Abs(a-b)-180.0)
}

// RoundHalfUp rounds half values toward positive infinity.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
