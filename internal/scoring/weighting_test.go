package scoring_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/e-dsin/maturity-sub005/internal/scoring"
)

func TestContribution(t *testing.T) {
	Convey("Given the weighting model", t, func() {
		Convey("Then contribution is value times weight over the whole domain", func() {
			for v := 1; v <= 5; v++ {
				for w := 1; w <= 10; w++ {
					c, err := scoring.Contribution(v, w)
					So(err, ShouldBeNil)
					So(c, ShouldEqual, v*w)
				}
			}
		})

		Convey("Then contribution is monotonic in both arguments", func() {
			prev := 0
			for v := 1; v <= 5; v++ {
				c, err := scoring.Contribution(v, 3)
				So(err, ShouldBeNil)
				So(c, ShouldBeGreaterThanOrEqualTo, prev)
				prev = c
			}

			prev = 0
			for w := 1; w <= 20; w++ {
				c, err := scoring.Contribution(4, w)
				So(err, ShouldBeNil)
				So(c, ShouldBeGreaterThanOrEqualTo, prev)
				prev = c
			}
		})

		Convey("When the value is outside the ordinal scale", func() {
			for _, v := range []int{0, -1, 6, 100} {
				_, err := scoring.Contribution(v, 3)
				So(errors.Is(err, scoring.ErrInvalidAnswerValue), ShouldBeTrue)
			}
		})

		Convey("When the weight is not positive", func() {
			for _, w := range []int{0, -5} {
				_, err := scoring.Contribution(3, w)
				So(errors.Is(err, scoring.ErrInvalidWeight), ShouldBeTrue)
			}
		})

		Convey("Then the maximum contribution assumes the best answer", func() {
			max, err := scoring.MaxContribution(7)
			So(err, ShouldBeNil)
			So(max, ShouldEqual, 35)
		})
	})
}
