package service

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/e-dsin/maturity-sub005/internal/access"
)

// filterToBson translates the engine's data filter into a mongo query
// filter. This is the single seam between the access decision and
// query construction: the engine computes visibility, the services
// apply it here, and nothing else narrows or widens result sets.
func filterToBson(f access.DataFilter) bson.M {
	if f.Global {
		return bson.M{}
	}
	m := bson.M{"enterpriseId": f.EnterpriseID}
	if f.ActorID != "" {
		m["actorId"] = f.ActorID
	}
	return m
}
