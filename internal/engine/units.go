package engine

// HeightCm converts an imperial height in feet and inches to centimeters.
func HeightCm(feet, inches float64) float64 {
	return (feet*12 + inches) * 2.54
}

// WeightKg converts pounds to kilograms.
func WeightKg(pounds float64) float64 {
	return pounds * 0.45359237
}
