package model

// Compose merges two apples: colors are joined with a hyphen, and the result
// is large only when both inputs are medium.
func Compose(a, b Apple) Apple {
	size := "extra large"
	if a.Size == "medium" && b.Size == "medium" {
		size = "large"
	}

	return Apple{
		Color: a.Color + "-" + b.Color,
		Size:  size,
	}
}
