package entity

import (
	"encoding/json"
	"time"
)

// Favorite links a profile to a product it likes. (profileID, productID) is its identity.
type Favorite struct {
	profileID int64
	productID int64
	date      time.Time
}

// NewFavorite builds a validated favorite. date accepts the same values as ParseDate.
func NewFavorite(profileID, productID int64, date any) (*Favorite, error) {
	f := &Favorite{}
	if err := f.SetProfileID(profileID); err != nil {
		return nil, err
	}
	if err := f.SetProductID(productID); err != nil {
		return nil, err
	}
	if err := f.SetDate(date); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *Favorite) ProfileID() int64 { return f.profileID }
func (f *Favorite) ProductID() int64 { return f.productID }
func (f *Favorite) Date() time.Time  { return f.date }

func (f *Favorite) SetProfileID(profileID int64) error {
	v, err := validateForeignID("favorite profile id", profileID)
	if err != nil {
		return err
	}
	f.profileID = v

	return nil
}

func (f *Favorite) SetProductID(productID int64) error {
	v, err := validateForeignID("favorite product id", productID)
	if err != nil {
		return err
	}
	f.productID = v

	return nil
}

func (f *Favorite) SetDate(date any) error {
	v, err := ParseDate("favorite date", date)
	if err != nil {
		return err
	}
	f.date = v

	return nil
}

type favoriteJSON struct {
	FavoriteProfileID int64 `json:"favoriteProfileId"`
	FavoriteProductID int64 `json:"favoriteProductId"`
	FavoriteDate      int64 `json:"favoriteDate"`
}

func (f *Favorite) MarshalJSON() ([]byte, error) {
	return json.Marshal(favoriteJSON{
		FavoriteProfileID: f.profileID,
		FavoriteProductID: f.productID,
		FavoriteDate:      millis(f.date),
	})
}
