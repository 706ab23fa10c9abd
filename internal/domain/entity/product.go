package entity

import (
	"encoding/json"
	"time"
)

// Product is an item listed by a profile.
type Product struct {
	id          *int64    // Store-assigned key, nil until inserted.
	profileID   int64     // Owner of the listing.
	description string    // Listing text, at most 1000 runes.
	price       float64   // Strictly positive.
	postDate    time.Time // When the product was posted.
}

// NewProduct builds a validated product. postDate accepts the same values as ParseDate.
func NewProduct(id *int64, profileID int64, description string, price float64, postDate any) (*Product, error) {
	p := &Product{}
	if err := p.SetID(id); err != nil {
		return nil, err
	}
	if err := p.SetProfileID(profileID); err != nil {
		return nil, err
	}
	if err := p.SetDescription(description); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetPostDate(postDate); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) ID() *int64 {
	if p.id == nil {
		return nil
	}
	v := *p.id

	return &v
}

// IDValue returns the id or zero when not persisted.
func (p *Product) IDValue() int64 {
	if p.id == nil {
		return 0
	}

	return *p.id
}

func (p *Product) ProfileID() int64    { return p.profileID }
func (p *Product) Description() string { return p.description }
func (p *Product) Price() float64      { return p.price }
func (p *Product) PostDate() time.Time { return p.postDate }

func (p *Product) SetID(id *int64) error {
	v, err := validateID("product id", p.id, id)
	if err != nil {
		return err
	}
	p.id = v

	return nil
}

func (p *Product) SetProfileID(profileID int64) error {
	v, err := validateForeignID("product profile id", profileID)
	if err != nil {
		return err
	}
	p.profileID = v

	return nil
}

func (p *Product) SetDescription(description string) error {
	v, err := sanitizeText("product description", description, MaxDescriptionLength)
	if err != nil {
		return err
	}
	p.description = v

	return nil
}

func (p *Product) SetPrice(price float64) error {
	v, err := validatePrice("product price", price)
	if err != nil {
		return err
	}
	p.price = v

	return nil
}

func (p *Product) SetPostDate(postDate any) error {
	v, err := ParseDate("product post date", postDate)
	if err != nil {
		return err
	}
	p.postDate = v

	return nil
}

type productJSON struct {
	ProductID          *int64  `json:"productId"`
	ProductProfileID   int64   `json:"productProfileId"`
	ProductDescription string  `json:"productDescription"`
	ProductPrice       float64 `json:"productPrice"`
	ProductPostDate    int64   `json:"productPostDate"`
}

func (p *Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ProductID:          p.id,
		ProductProfileID:   p.profileID,
		ProductDescription: p.description,
		ProductPrice:       p.price,
		ProductPostDate:    millis(p.postDate),
	})
}
