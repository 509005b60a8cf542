package service

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/e-dsin/maturity-sub005/internal/access"
)

func TestFilterToBson(t *testing.T) {
	Convey("Given the query filter seam", t, func() {
		Convey("Then a global filter matches everything", func() {
			m := filterToBson(access.DataFilter{Global: true})
			So(m, ShouldResemble, bson.M{})
		})

		Convey("Then an enterprise filter restricts by enterprise only", func() {
			m := filterToBson(access.DataFilter{EnterpriseID: "ent-42"})
			So(m, ShouldResemble, bson.M{"enterpriseId": "ent-42"})
		})

		Convey("Then a personal filter restricts by enterprise and actor", func() {
			m := filterToBson(access.DataFilter{EnterpriseID: "ent-42", ActorID: "user-3"})
			So(m, ShouldResemble, bson.M{"enterpriseId": "ent-42", "actorId": "user-3"})
		})
	})
}
