package domain

import "go.mongodb.org/mongo-driver/bson"

// Document is a schema-free record as stored in and returned from a collection.
type Document = bson.M

const (
	FieldID                 = "_id"
	FieldServiceImage       = "serviceImage"
	FieldServiceName        = "serviceName"
	FieldServiceDescription = "serviceDescription"
	FieldServiceArea        = "serviceArea"
	FieldServicePrice       = "servicePrice"
	FieldServiceOwnerEmail  = "userEmail"
)

// ServiceUpdate carries the five fields a service edit overwrites. Values are
// kept as decoded from JSON; an absent field is written as null.
type ServiceUpdate struct {
	Image       any
	Name        any
	Description any
	Area        any
	Price       any
}

// ServiceUpdateFromDocument picks the five fields by their exact names.
// Other keys, including differently cased ones, are ignored.
func ServiceUpdateFromDocument(doc Document) ServiceUpdate {
	return ServiceUpdate{
		Image:       doc[FieldServiceImage],
		Name:        doc[FieldServiceName],
		Description: doc[FieldServiceDescription],
		Area:        doc[FieldServiceArea],
		Price:       doc[FieldServicePrice],
	}
}

func (u ServiceUpdate) Fields() bson.M {
	return bson.M{
		FieldServiceImage:       u.Image,
		FieldServiceName:        u.Name,
		FieldServiceDescription: u.Description,
		FieldServiceArea:        u.Area,
		FieldServicePrice:       u.Price,
	}
}

// ServiceFilter selects services by owner; an empty OwnerEmail matches all.
type ServiceFilter struct {
	OwnerEmail string
}
