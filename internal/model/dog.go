package model

// Dog represents a dog in the database. Breed and SpecialNeeds are optional;
// an empty string means not set.
type Dog struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Breed        string `json:"breed,omitempty"`
	Age          int64  `json:"age"`
	Size         string `json:"size"`
	SpecialNeeds string `json:"special_needs,omitempty"`
	OwnerID      int64  `json:"owner_id"`
}

// CreateDogRequest represents a dog creation request. The owner is always
// taken from the authenticated caller, never from the body.
type CreateDogRequest struct {
	Name         string `json:"name"`
	Breed        string `json:"breed"`
	Age          int64  `json:"age"`
	Size         string `json:"size"`
	SpecialNeeds string `json:"special_needs"`
}

// UpdateDogRequest represents a partial dog update. Pointer fields distinguish
// "absent, keep the stored value" (nil) from an explicit new value.
type UpdateDogRequest struct {
	Name         *string `json:"name"`
	Breed        *string `json:"breed"`
	Age          *int64  `json:"age"`
	Size         *string `json:"size"`
	SpecialNeeds *string `json:"special_needs"`
}
