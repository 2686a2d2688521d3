package model_test

import (
	"testing"

	"github.com/bloomberg/go-testgroup"

	"github.com/orchardkit/orchard/lib/model"
)

func TestCompose(t *testing.T) {
	testgroup.RunInParallel(t, &ComposeTests{})
}

type ComposeTests struct {
}

func (g *ComposeTests) ConcatenatesColorsWithHyphen(t *testgroup.T) {
	c := model.Compose(
		model.Apple{Color: "red", Size: "medium"},
		model.Apple{Color: "green", Size: "medium"},
	)

	t.Equal("red-green", c.Color)
}

func (g *ComposeTests) TwoMediumsMakeLarge(t *testgroup.T) {
	c := model.Compose(
		model.Apple{Color: "red", Size: "medium"},
		model.Apple{Color: "green", Size: "medium"},
	)

	t.Equal("large", c.Size)
}

func (g *ComposeTests) AnyOtherSizeMakesExtraLarge(t *testgroup.T) {
	pairs := [][2]string{
		{"small", "medium"},
		{"medium", "small"},
		{"small", "big"},
		{"", ""},
		{"Medium", "medium"},
	}

	for _, p := range pairs {
		c := model.Compose(
			model.Apple{Color: "red", Size: p[0]},
			model.Apple{Color: "green", Size: p[1]},
		)

		t.Equal("extra large", c.Size)
	}
}

func (g *ComposeTests) KeepsInputsUntouched(t *testgroup.T) {
	a := model.Apple{Color: "red", Size: "small"}
	b := model.Apple{Color: "green", Size: "medium"}

	c := model.Compose(a, b)

	t.Equal(model.Apple{Color: "red-green", Size: "extra large"}, c)
	t.Equal(model.Apple{Color: "red", Size: "small"}, a)
	t.Equal(model.Apple{Color: "green", Size: "medium"}, b)
}

func (g *ComposeTests) Defaults(t *testgroup.T) {
	c := model.Compose(model.New(), model.New())

	t.Equal(model.Apple{Color: "red-red", Size: "large"}, c)
}
