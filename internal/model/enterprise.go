package model

import "time"

// Enterprise is an organization whose applications are evaluated.
type Enterprise struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Secteur   string    `json:"secteur,omitempty" bson:"secteur,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Application is an evaluated entity owned by an enterprise.
type Application struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	EnterpriseID string    `json:"enterpriseId" bson:"enterpriseId"`
	Name         string    `json:"name" bson:"name"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
