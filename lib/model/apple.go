package model

import "fmt"

type Apple struct {
	Color string
	Size  string
}

func New() Apple {
	return Apple{
		Color: "red",
		Size:  "medium",
	}
}

func (a Apple) Describe() string {
	return fmt.Sprintf("This is a %v %v apple.", a.Size, a.Color)
}
